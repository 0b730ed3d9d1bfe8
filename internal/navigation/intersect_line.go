package navigation

import "math"

// IntersectLine finds the path length at which ray makes its closest
// approach to the wire along trf.Z, and checks that approach against mask
// (a ShapeLine tube).
func IntersectLine(ray Ray, mask Mask, trf Transform3, sf Surface, maskTol, overstepTol Real) Record {
	var r Record
	UpdateLine(&r, ray, mask, trf, sf, maskTol, overstepTol)
	return r
}

func UpdateLine(r *Record, ray Ray, mask Mask, trf Transform3, sf Surface, maskTol, overstepTol Real) {
	r.Barcode = sf.Barcode
	r.VolumeLink = sf.NavLink

	localPos := trf.ToLocal(ray.Pos)
	localDir := trf.ToLocalDir(ray.Dir)

	a := localDir.X*localDir.X + localDir.Y*localDir.Y
	if a < lineParallelTol*lineParallelTol {
		r.Status = StatusMissed
		return
	}
	b := localPos.X*localDir.X + localPos.Y*localDir.Y
	path := -b / a

	local := trf.ToLocal(ray.At(path))
	transverse := math.Hypot(local.X, local.Y)

	r.Path = path
	r.Local = Point2{U: transverse, V: local.Z}
	r.Direction = classifyDirection(path, overstepTol)

	transverseDir := math.Sqrt(a)
	r.CosIncidence = math.Sqrt(1 - math.Min(1, transverseDir*transverseDir))

	if mask.IsInside(r.Local, maskTol) {
		r.Status = StatusInside
	} else {
		r.Status = StatusOutside
	}
}
