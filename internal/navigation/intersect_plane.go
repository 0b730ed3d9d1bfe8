package navigation

import "math"

// IntersectPlane solves for the path length where ray crosses the plane
// whose normal is trf.Z and whose origin is trf.Translation, then checks
// the crossing against mask (a ShapePlane rectangle).
func IntersectPlane(ray Ray, mask Mask, trf Transform3, sf Surface, maskTol, overstepTol Real) Record {
	var r Record
	UpdatePlane(&r, ray, mask, trf, sf, maskTol, overstepTol)
	return r
}

// UpdatePlane writes the plane intersection into an existing Record,
// letting a caller reuse one allocation across repeated candidate updates.
func UpdatePlane(r *Record, ray Ray, mask Mask, trf Transform3, sf Surface, maskTol, overstepTol Real) {
	denom := ray.Dir.Dot(trf.Z)
	r.Barcode = sf.Barcode
	r.VolumeLink = sf.NavLink

	if math.Abs(denom) < planeParallelEps {
		r.Status = StatusMissed
		return
	}

	toOrigin := trf.Translation.Sub(ray.Pos)
	path := toOrigin.Dot(trf.Z) / denom

	local := trf.ToLocal(ray.At(path))
	r.Path = path
	r.Local = Point2{U: local.X, V: local.Y}
	r.Direction = classifyDirection(path, overstepTol)
	r.CosIncidence = math.Abs(denom)

	if mask.IsInside(r.Local, maskTol) {
		r.Status = StatusInside
	} else {
		r.Status = StatusOutside
	}
}
