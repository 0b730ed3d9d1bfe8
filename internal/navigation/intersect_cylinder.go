package navigation

import "math"

// cylinderRoots solves |local.xy + t*dir.xy|^2 == radius^2 for t, returning
// the two real roots in ascending order and whether any exist. A ray
// running parallel to the cylinder axis (a == 0) is reported as having no
// roots: such a ray either never crosses the shell or runs along it, and
// neither case is a useful navigation candidate.
func cylinderRoots(localPos Point3, localDir Vector3, radius Real) (t0, t1 Real, ok bool) {
	a := localDir.X*localDir.X + localDir.Y*localDir.Y
	if math.Abs(a) < cylinderAxialEps {
		return 0, 0, false
	}
	b := 2 * (localPos.X*localDir.X + localPos.Y*localDir.Y)
	c := localPos.X*localPos.X + localPos.Y*localPos.Y - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	r0 := (-b - sq) / (2 * a)
	r1 := (-b + sq) / (2 * a)
	if r0 > r1 {
		r0, r1 = r1, r0
	}
	return r0, r1, true
}

// cylinderRecordAt fills in every field of a Record for a candidate root
// already known to be real. root tags which of the two ascending roots
// this crossing is (0 = nearer, 1 = farther), so a later re-intersect of
// this same cached candidate can recompute the same physical crossing.
func cylinderRecordAt(r *Record, ray Ray, mask Mask, trf Transform3, sf Surface, maskTol, overstepTol, path Real, root int) {
	local := trf.ToLocal(ray.At(path))
	phi := math.Atan2(local.Y, local.X)

	r.Barcode = sf.Barcode
	r.VolumeLink = sf.NavLink
	r.Path = path
	r.Root = root
	r.Local = Point2{U: mask.Radius * phi, V: local.Z}
	r.Direction = classifyDirection(path, overstepTol)

	radial := math.Hypot(local.X, local.Y)
	if radial < radialDegenerateEps {
		r.CosIncidence = 0
	} else {
		localDir := trf.ToLocalDir(ray.Dir)
		// Outward radial unit vector at the crossing, dotted with the
		// local direction's transverse component.
		r.CosIncidence = math.Abs((local.X*localDir.X + local.Y*localDir.Y) / radial)
	}

	if mask.IsInside(r.Local, maskTol) {
		r.Status = StatusInside
	} else {
		r.Status = StatusOutside
	}
}

// IntersectCylinder returns both real roots of a ray against a generic
// (non-portal) cylinder mask, nearest first. Both entries are StatusMissed
// if there is no real root; a tangent ray yields the same root twice.
func IntersectCylinder(ray Ray, mask Mask, trf Transform3, sf Surface, maskTol, overstepTol Real) [2]Record {
	var out [2]Record
	localPos := trf.ToLocal(ray.Pos)
	localDir := trf.ToLocalDir(ray.Dir)

	t0, t1, ok := cylinderRoots(localPos, localDir, mask.Radius)
	if !ok {
		out[0].Status = StatusMissed
		out[1].Status = StatusMissed
		out[0].Barcode, out[1].Barcode = sf.Barcode, sf.Barcode
		return out
	}
	cylinderRecordAt(&out[0], ray, mask, trf, sf, maskTol, overstepTol, t0, 0)
	cylinderRecordAt(&out[1], ray, mask, trf, sf, maskTol, overstepTol, t1, 1)
	return out
}
