package navigation

// Barcode is a compact, comparable identifier for a surface: the volume it
// lives in, its index into the geometry's flat surface store (so a barcode
// doubles as a direct lookup key, not just an identity), and the kind of
// surface it is. Two barcodes are equal iff all three fields match, which
// makes Barcode usable as a map key for e.g. the "don't re-intersect the
// surface we just stepped onto" rule.
type Barcode struct {
	Volume int
	Index  int
	Kind   SurfaceKind
}

// SurfaceKind distinguishes the two things a navigator can land on.
type SurfaceKind int

const (
	// KindModule is a sensitive or passive surface owned by one volume.
	KindModule SurfaceKind = iota
	// KindPortal links its owning volume to a neighbour.
	KindPortal
)

// InvalidBarcode is the sentinel for "no surface", distinct from any real
// barcode by its Index of -1. It is not the zero Barcode, whose Index 0 is
// a real surface slot.
var InvalidBarcode = Barcode{Volume: -1, Index: -1}

// IsInvalid reports whether b is the sentinel.
func (b Barcode) IsInvalid() bool { return b.Index < 0 }
