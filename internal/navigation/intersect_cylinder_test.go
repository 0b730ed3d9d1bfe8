package navigation

import "testing"

func cylinderSurface(radius, halfZ Real) (Mask, Transform3, Surface) {
	mask := Mask{Shape: ShapeCylinder, Radius: radius, HalfZ: halfZ}
	trf := IdentityTransform()
	sf := Surface{Barcode: Barcode{Volume: 0, Index: 0, Kind: KindModule}, NavLink: 0}
	return mask, trf, sf
}

func TestIntersectCylinderBothRoots(t *testing.T) {
	mask, trf, sf := cylinderSurface(5, 100)
	ray := Ray{Pos: Point3{X: -10}, Dir: Vector3{X: 1}}

	out := IntersectCylinder(ray, mask, trf, sf, 1e-9, -1e-6)
	if out[0].Path != 5 || out[1].Path != 15 {
		t.Fatalf("roots = (%v, %v), want (5, 15)", out[0].Path, out[1].Path)
	}
	if !out[0].Valid() || !out[1].Valid() {
		t.Fatalf("expected both roots valid, got %+v", out)
	}
}

func TestIntersectCylinderPortalPicksForwardRoot(t *testing.T) {
	mask := Mask{Shape: ShapeCylinderPortal, Radius: 5, HalfZ: 100}
	trf := IdentityTransform()
	sf := Surface{Barcode: Barcode{Volume: 0, Index: 0, Kind: KindPortal}, NavLink: 1}

	ray := Ray{Pos: Point3{X: -10}, Dir: Vector3{X: 1}}
	r := IntersectCylinderPortal(ray, mask, trf, sf, 1e-9, -1e-6)
	if r.Path != 5 {
		t.Fatalf("Path = %v, want 5 (nearest forward root)", r.Path)
	}

	// Starting inside the cylinder, the nearer root (-5) lies behind the
	// track; the portal reports the forward one.
	inside := Ray{Pos: Point3{}, Dir: Vector3{X: 1}}
	r2 := IntersectCylinderPortal(inside, mask, trf, sf, 1e-9, -1e-6)
	if r2.Path != 5 {
		t.Fatalf("Path = %v, want 5 from inside", r2.Path)
	}
}

func TestIntersectCylinderAxialRayMisses(t *testing.T) {
	mask, trf, sf := cylinderSurface(5, 100)
	ray := Ray{Pos: Point3{}, Dir: Vector3{Z: 1}}

	out := IntersectCylinder(ray, mask, trf, sf, 1e-9, -1e-6)
	if out[0].Status != StatusMissed || out[1].Status != StatusMissed {
		t.Fatalf("expected both roots missed for an axis-parallel ray, got %+v", out)
	}
}
