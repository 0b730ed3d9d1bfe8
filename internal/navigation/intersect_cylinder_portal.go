package navigation

// IntersectCylinderPortal intersects a ray against a cylindrical portal.
// Unlike the generic cylinder intersector it reports only one root: the
// nearer one if it lies beyond the overstep tolerance, otherwise the
// farther one. A portal is a one-sided boundary between two
// volumes, and the navigator only ever cares about the next crossing, not
// both roots of the infinite shell.
func IntersectCylinderPortal(ray Ray, mask Mask, trf Transform3, sf Surface, maskTol, overstepTol Real) Record {
	var r Record
	UpdateCylinderPortal(&r, ray, mask, trf, sf, maskTol, overstepTol)
	return r
}

func UpdateCylinderPortal(r *Record, ray Ray, mask Mask, trf Transform3, sf Surface, maskTol, overstepTol Real) {
	localPos := trf.ToLocal(ray.Pos)
	localDir := trf.ToLocalDir(ray.Dir)

	t0, t1, ok := cylinderRoots(localPos, localDir, mask.Radius)
	if !ok {
		r.Status = StatusMissed
		r.Barcode = sf.Barcode
		return
	}

	root := 0
	path := t0
	if t0 <= overstepTol {
		path = t1
		root = 1
	}
	cylinderRecordAt(r, ray, mask, trf, sf, maskTol, overstepTol, path, root)
}
