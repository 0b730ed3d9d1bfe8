package navigation

// Grid is a spatial index over a volume's surfaces: an N-dimensional
// binning (MultiAxis) plus, per bin, the indices of the surfaces that fall
// in it. It answers one question — "which surfaces might be near this
// local point" — by visiting a small neighbourhood of bins instead of the
// whole surface list.
type Grid struct {
	Axes MultiAxis
	bins [][]int
}

// NewGrid builds an empty grid over axes. How many neighbouring bins a
// Search visits around the bin containing a point is decided per call (see
// Config.SearchWindow), not fixed at construction.
func NewGrid(axes MultiAxis) *Grid {
	return &Grid{Axes: axes, bins: make([][]int, axes.NBins())}
}

// Populate records that surfaceIdx occupies the bin containing local point
// p (in the grid's own 2D coordinate space, e.g. (r*phi, z) for a cyl2
// grid or (r, phi) for a disc grid).
func (g *Grid) Populate(p Point2, surfaceIdx int) {
	local := g.Axes.LocalIndex([]Real{p.U, p.V})
	bin := g.Axes.Serialize(local)
	g.bins[bin] = append(g.bins[bin], surfaceIdx)
}

// PopulateAll records that surfaceIdx occupies every bin in the grid. This
// is for surfaces whose extent spans the whole grid rather than one
// locality within it — a cylindrical portal wrapping an entire barrel
// layer, for instance, must turn up from any phi a track happens to be
// searching near.
func (g *Grid) PopulateAll(surfaceIdx int) {
	for i := range g.bins {
		g.bins[i] = append(g.bins[i], surfaceIdx)
	}
}

// bin returns the surface indices stored at a single (already-wrapped) bin
// index.
func (g *Grid) bin(local []int) []int {
	return g.bins[g.Axes.Serialize(local)]
}

// Search returns every surface index in the neighbourhood of p, sized by
// win (a per-axis bin-window half-size), deduplicated, capped at
// maxCandidates (0 means unbounded). Order follows BinView's lexicographic
// bin order and, within a bin, insertion order, so results are
// deterministic for a fixed grid and window.
func (g *Grid) Search(p Point2, win SearchWindow, maxCandidates int) []int {
	ranges := g.Axes.BinRanges([]Real{p.U, p.V}, []int{win[0], win[1]})
	view := NewBinView(g.Axes, ranges)

	seen := make(map[int]struct{})
	var out []int
	view.Each(func(local []int) {
		if maxCandidates > 0 && len(out) >= maxCandidates {
			return
		}
		for _, idx := range g.bin(local) {
			if _, dup := seen[idx]; dup {
				continue
			}
			seen[idx] = struct{}{}
			out = append(out, idx)
			if maxCandidates > 0 && len(out) >= maxCandidates {
				return
			}
		}
	})
	return out
}
