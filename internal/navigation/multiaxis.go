package navigation

// MultiAxis is an ordered tuple of Axis, one per grid dimension. Grids in
// this package are always 2-dimensional (cylindrical-2 or disc), but the
// type itself makes no assumption about dimensionality.
type MultiAxis []Axis

// Dim returns the number of axes.
func (m MultiAxis) Dim() int { return len(m) }

// NBins returns the total number of bins (product of per-axis bin counts).
func (m MultiAxis) NBins() int {
	n := 1
	for _, a := range m {
		n *= a.NBins
	}
	return n
}

// LocalIndex maps an N-dim point to its per-axis bin index.
func (m MultiAxis) LocalIndex(p []Real) []int {
	idx := make([]int, len(m))
	for i, a := range m {
		idx[i] = a.Index(p[i])
	}
	return idx
}

// Serialize flattens a per-axis local index into a single global bin
// index, row-major over the axes in order (axis 0 varies slowest).
func (m MultiAxis) Serialize(local []int) int {
	g := 0
	for i, a := range m {
		g = g*a.NBins + local[i]
	}
	return g
}

// SearchWindow is a per-axis half-window size: (0, 0) means "only the bin
// containing the point".
type SearchWindow [2]int

// BinRanges returns, for each axis, the raw (unwrapped, unclamped)
// [lo, hi] index range covering a window of `win[i]` bins around the bin
// containing p[i].
func (m MultiAxis) BinRanges(p []Real, win []int) [][2]int {
	ranges := make([][2]int, len(m))
	for i, a := range m {
		lo, hi := a.BinRange(p[i], win[i])
		ranges[i] = [2]int{lo, hi}
	}
	return ranges
}
