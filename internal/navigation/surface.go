package navigation

// Surface is a descriptor: everything the navigator needs to intersect and
// classify a surface, without owning the geometry itself. The geometry
// lives in the detector's transform/mask stores; Surface only indexes into
// them. A detector builder must set Barcode.Index to this surface's own
// position in GeometryStore.Surfaces, so a Record's barcode can be mapped
// straight back to its surface without a search.
type Surface struct {
	Barcode   Barcode
	Transform int // index into the detector's transform store
	Mask      int // index into the detector's mask store

	// NavLink is the volume reached by crossing this surface: the volume
	// on the other side of a portal, or the owning (mother) volume of a
	// module. A module's navigation link is its own volume, since
	// crossing a module never changes the current volume.
	NavLink int
}

// IsPortal reports whether s links to a different volume on crossing.
func (s Surface) IsPortal() bool { return s.Barcode.Kind == KindPortal }
