package navigation

// Shape tags the surface geometry a Mask bounds. Dispatch on Shape is the
// single switch that both the neighbourhood visitor (to pick an
// intersector) and Mask.IsInside (to pick a bounds check) go through.
// Adding a shape means adding one tag, one bounds case, and one
// intersector function.
type Shape int

const (
	ShapePlane Shape = iota
	ShapeCylinder
	ShapeCylinderPortal
	ShapeLine
	ShapeCone
)

// Mask bounds a surface's local extent. Only the fields relevant to Shape
// are meaningful; this is the tagged-variant-over-shape-kinds the
// navigator's generic dispatch relies on.
type Mask struct {
	Shape Shape

	// Plane: axis-aligned rectangle, half-extents in local (x, y).
	HalfX, HalfY Real

	// Cylinder / CylinderPortal: radius and half-length along the axis.
	Radius Real
	HalfZ  Real

	// Line: half-length along the wire and a local radius (the "tube"
	// tolerance around the wire), analogous to a straw tube.
	HalfLength Real
	TubeRadius Real

	// Cone: opening half-angle (radians) and half-length along the axis.
	ConeAngle Real
}

// IsInside reports whether a local 2D coordinate lies within the mask,
// widened by tol on every bound except a cone's apex end (local z = 0).
func (m Mask) IsInside(local Point2, tol Real) bool {
	switch m.Shape {
	case ShapePlane:
		return local.U >= -(m.HalfX+tol) && local.U <= m.HalfX+tol &&
			local.V >= -(m.HalfY+tol) && local.V <= m.HalfY+tol
	case ShapeCylinder, ShapeCylinderPortal:
		// local.U is the arc length r*phi, local.V is z along the axis.
		return local.V >= -(m.HalfZ+tol) && local.V <= m.HalfZ+tol
	case ShapeLine:
		// local.U is the transverse distance to the wire, local.V the
		// coordinate along it.
		return local.U <= m.TubeRadius+tol &&
			local.V >= -(m.HalfLength+tol) && local.V <= m.HalfLength+tol
	case ShapeCone:
		return local.V >= 0 && local.V <= m.HalfZ+tol
	default:
		return false
	}
}
