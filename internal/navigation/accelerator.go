package navigation

import "math"

// AcceleratorStore holds every volume's spatial index, keyed by
// AcceleratorKind and the per-kind index a Volume's AcceleratorLink
// carries. Brute-force lists and grids live in separate slices so that a
// volume with a handful of surfaces pays nothing for the grid machinery.
type AcceleratorStore struct {
	BruteForce [][]int // surface indices, unordered
	Cyl2       []*Grid
	Disc       []*Grid
}

// Candidates resolves an AcceleratorLink into the surface indices worth
// testing near local point p. For a brute-force volume this is every
// surface it owns; for a grid volume it is the neighbourhood Grid.Search
// reports around p, sized by win (see Config.SearchWindow).
func (s *AcceleratorStore) Candidates(link AcceleratorLink, p Point2, win SearchWindow, maxCandidates int) []int {
	switch link.Kind {
	case AccelBruteForce:
		return s.BruteForce[link.Index]
	case AccelCyl2Grid:
		return s.Cyl2[link.Index].Search(p, win, maxCandidates)
	case AccelDiscGrid:
		return s.Disc[link.Index].Search(p, win, maxCandidates)
	default:
		return nil
	}
}

// GeometryStore is the full set of geometry data a navigator runs over:
// every volume, every surface, their transforms and masks, and the
// accelerators that index them. A detector.Detector builds one of these
// once and shares it (read-only) across every concurrent propagation.
type GeometryStore struct {
	Volumes      []Volume
	Surfaces     []Surface
	Transforms   []Transform3
	Masks        []Mask
	Accelerators AcceleratorStore
}

// Intersect dispatches a candidate surface to the intersector matching its
// mask's Shape, writing the result in place. Portal and generic cylinders
// use different intersectors (closest root only vs. both roots) even
// though they share a mask shape family, which is why ShapeCylinderPortal
// is its own tag rather than a flag on ShapeCylinder.
func (g *GeometryStore) Intersect(r *Record, ray Ray, surfaceIdx int, maskTol, overstepTol Real) {
	sf := g.Surfaces[surfaceIdx]
	mask := g.Masks[sf.Mask]
	trf := g.Transforms[sf.Transform]

	switch mask.Shape {
	case ShapePlane:
		UpdatePlane(r, ray, mask, trf, sf, maskTol, overstepTol)
	case ShapeCylinderPortal:
		UpdateCylinderPortal(r, ray, mask, trf, sf, maskTol, overstepTol)
	case ShapeCylinder:
		// A generic cylinder re-intersect must recompute the same root
		// the cached record already stood for (r.Root, preserved from
		// whichever of the two calls in Visit first produced it), not
		// whichever root happens to be nearest right now.
		root := r.Root
		localPos := trf.ToLocal(ray.Pos)
		localDir := trf.ToLocalDir(ray.Dir)
		t0, t1, ok := cylinderRoots(localPos, localDir, mask.Radius)
		if !ok {
			r.Status = StatusMissed
			r.Barcode = sf.Barcode
			r.Root = root
			return
		}
		path := t0
		if root == 1 {
			path = t1
		}
		cylinderRecordAt(r, ray, mask, trf, sf, maskTol, overstepTol, path, root)
	case ShapeLine:
		UpdateLine(r, ray, mask, trf, sf, maskTol, overstepTol)
	case ShapeCone:
		UpdateCone(r, ray, mask, trf, sf, maskTol, overstepTol)
	}
}

// ProjectLocal maps the ray's current position into a volume's grid
// coordinate space. For a brute-force volume it returns the zero Point2,
// which Candidates ignores.
func (g *GeometryStore) ProjectLocal(vol Volume, ray Ray) Point2 {
	switch vol.Accelerator.Kind {
	case AccelCyl2Grid:
		trf := g.Transforms[vol.CenterTransform]
		local := trf.ToLocal(ray.Pos)
		phi := math.Atan2(local.Y, local.X)
		return Point2{U: vol.GridRadius * phi, V: local.Z}
	case AccelDiscGrid:
		trf := g.Transforms[vol.CenterTransform]
		local := trf.ToLocal(ray.Pos)
		return Point2{U: math.Hypot(local.X, local.Y), V: math.Atan2(local.Y, local.X)}
	default:
		return Point2{}
	}
}

// Visit resolves a volume's candidates near the ray's current position and
// intersects every one, calling fn with each resulting Record. This is the
// single place the navigator goes through to turn "a volume and a ray"
// into intersection records, regardless of which accelerator or mask shape
// backs any particular surface.
//
// A generic (non-portal) cylinder is special-cased here rather than routed
// through Intersect: it is the one shape whose intersector can produce two
// independent forward candidates from a single surface, and Intersect's
// signature (a single in-place Record) only has room for one.
func (g *GeometryStore) Visit(vol Volume, ray Ray, maskTol, overstepTol Real, win SearchWindow, maxCandidates int, fn func(Record)) {
	p := g.ProjectLocal(vol, ray)
	for _, idx := range g.Accelerators.Candidates(vol.Accelerator, p, win, maxCandidates) {
		sf := g.Surfaces[idx]
		if g.Masks[sf.Mask].Shape == ShapeCylinder {
			for _, r := range IntersectCylinder(ray, g.Masks[sf.Mask], g.Transforms[sf.Transform], sf, maskTol, overstepTol) {
				fn(r)
			}
			continue
		}
		var r Record
		g.Intersect(&r, ray, idx, maskTol, overstepTol)
		fn(r)
	}
}
