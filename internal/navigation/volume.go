package navigation

// AcceleratorKind tags which spatial index a volume's AcceleratorLink
// points into.
type AcceleratorKind int

const (
	// AccelBruteForce is an unordered list of every surface in the volume,
	// searched by visiting all of them. Used for volumes with few enough
	// surfaces that a grid would be pure overhead.
	AccelBruteForce AcceleratorKind = iota
	// AccelCyl2Grid indexes surfaces by (r*phi, z) on a cylinder.
	AccelCyl2Grid
	// AccelDiscGrid indexes surfaces by (r, phi) on a disc.
	AccelDiscGrid
)

// AcceleratorLink points a volume at one of the navigator's accelerator
// stores: Kind selects which store, Index selects the entry within it.
type AcceleratorLink struct {
	Kind  AcceleratorKind
	Index int
}

// Volume is a navigable region of the detector. Its surfaces (portals and
// modules alike) are reached only through its Accelerator; the navigator
// never walks a volume's surfaces directly.
type Volume struct {
	Index       int
	Accelerator AcceleratorLink

	// CenterTransform and GridRadius are only meaningful for grid
	// accelerators: they place the grid's own frame (the cylinder a cyl2
	// grid wraps, or the plane a disc grid lies in) so a global ray
	// position can be projected into the grid's 2D coordinate space
	// before searching it.
	CenterTransform int
	GridRadius      Real
}
