package navigation

import "testing"

func planeSurface() (Mask, Transform3, Surface) {
	mask := Mask{Shape: ShapePlane, HalfX: 5, HalfY: 5}
	trf := TranslatedZ(10)
	sf := Surface{Barcode: Barcode{Volume: 0, Index: 0, Kind: KindModule}, NavLink: 0}
	return mask, trf, sf
}

func TestIntersectPlaneHit(t *testing.T) {
	mask, trf, sf := planeSurface()
	ray := Ray{Pos: Point3{}, Dir: Vector3{Z: 1}}

	r := IntersectPlane(ray, mask, trf, sf, 1e-9, -1e-6)
	if !r.Valid() {
		t.Fatalf("expected a valid hit, got %+v", r)
	}
	if r.Path != 10 {
		t.Fatalf("Path = %v, want 10", r.Path)
	}
	if r.Local != (Point2{U: 0, V: 0}) {
		t.Fatalf("Local = %+v, want origin", r.Local)
	}
}

func TestIntersectPlaneOutsideMask(t *testing.T) {
	mask, trf, sf := planeSurface()
	ray := Ray{Pos: Point3{X: 100}, Dir: Vector3{Z: 1}}

	r := IntersectPlane(ray, mask, trf, sf, 1e-9, -1e-6)
	if r.Status != StatusOutside {
		t.Fatalf("Status = %v, want StatusOutside", r.Status)
	}
}

func TestIntersectPlaneParallelMisses(t *testing.T) {
	mask, trf, sf := planeSurface()
	ray := Ray{Pos: Point3{}, Dir: Vector3{X: 1}}

	r := IntersectPlane(ray, mask, trf, sf, 1e-9, -1e-6)
	if r.Status != StatusMissed {
		t.Fatalf("Status = %v, want StatusMissed", r.Status)
	}
}

func TestIntersectPlaneBehindIsOpposite(t *testing.T) {
	mask, trf, sf := planeSurface()
	ray := Ray{Pos: Point3{Z: 20}, Dir: Vector3{Z: 1}}

	r := IntersectPlane(ray, mask, trf, sf, 1e-9, -1e-6)
	if r.Direction != DirOpposite {
		t.Fatalf("Direction = %v, want DirOpposite", r.Direction)
	}
	if r.Valid() {
		t.Fatalf("a backward crossing should not be Valid()")
	}
}
