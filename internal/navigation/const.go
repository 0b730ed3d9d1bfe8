package navigation

// Hot-loop tolerances shared by the shape intersectors. These are numerical
// guards against ill-conditioned geometry (a ray running parallel to a
// plane or along a cylinder's axis), not physics tolerances — those live
// in Config.
const (
	planeParallelEps    = 1e-9
	cylinderAxialEps    = 1e-12
	lineParallelTol     = 1e-5
	coneDegenerateEps   = 1e-12
	radialDegenerateEps = 1e-12
)
