package navigation

import "math"

// IntersectCone finds the ray's closest valid crossing of a cone surface
// with apex at trf.Translation, axis trf.Z, and opening half-angle
// mask.ConeAngle. Like the cylinder portal, only one of the (up to two)
// real roots beyond the overstep tolerance is reported: a root inside the
// mask is preferred, and among roots of equal status the nearer one. A cone
// in this package models a single endcap-like boundary, not an infinite
// double nappe a track could cross twice in the same volume.
func IntersectCone(ray Ray, mask Mask, trf Transform3, sf Surface, maskTol, overstepTol Real) Record {
	var r Record
	UpdateCone(&r, ray, mask, trf, sf, maskTol, overstepTol)
	return r
}

func UpdateCone(r *Record, ray Ray, mask Mask, trf Transform3, sf Surface, maskTol, overstepTol Real) {
	r.Barcode = sf.Barcode
	r.VolumeLink = sf.NavLink

	localPos := trf.ToLocal(ray.Pos)
	localDir := trf.ToLocalDir(ray.Dir)
	k2 := math.Tan(mask.ConeAngle) * math.Tan(mask.ConeAngle)

	a := localDir.X*localDir.X + localDir.Y*localDir.Y - k2*localDir.Z*localDir.Z
	b := 2 * (localPos.X*localDir.X + localPos.Y*localDir.Y - k2*localPos.Z*localDir.Z)
	c := localPos.X*localPos.X + localPos.Y*localPos.Y - k2*localPos.Z*localPos.Z

	var roots []Real
	if math.Abs(a) < coneDegenerateEps {
		if math.Abs(b) > coneDegenerateEps {
			roots = []Real{-c / b}
		}
	} else {
		disc := b*b - 4*a*c
		if disc >= 0 {
			sq := math.Sqrt(disc)
			roots = []Real{(-b - sq) / (2 * a), (-b + sq) / (2 * a)}
		}
	}

	// A cone equation describes both nappes of the double cone; only one
	// (local z in [0, HalfZ]) is this surface. Build a candidate for every
	// forward root and prefer one that actually lands on that nappe over
	// the merely-nearer root on the other one.
	var best Record
	haveBest := false
	for _, t := range roots {
		if t <= overstepTol {
			continue
		}
		cand := coneRecordAt(ray, mask, trf, sf, maskTol, overstepTol, t)
		if !haveBest || (cand.Status == StatusInside && best.Status != StatusInside) ||
			(cand.Status == best.Status && cand.Path < best.Path) {
			best = cand
			haveBest = true
		}
	}
	if !haveBest {
		r.Status = StatusMissed
		return
	}
	*r = best
}

func coneRecordAt(ray Ray, mask Mask, trf Transform3, sf Surface, maskTol, overstepTol, path Real) Record {
	var r Record
	r.Barcode = sf.Barcode
	r.VolumeLink = sf.NavLink

	local := trf.ToLocal(ray.At(path))
	phi := math.Atan2(local.Y, local.X)
	coneRadius := math.Abs(local.Z) * math.Tan(mask.ConeAngle)

	r.Path = path
	r.Local = Point2{U: coneRadius * phi, V: local.Z}
	r.Direction = classifyDirection(path, overstepTol)

	if mask.IsInside(r.Local, maskTol) {
		r.Status = StatusInside
	} else {
		r.Status = StatusOutside
	}
	return r
}
