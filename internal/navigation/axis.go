package navigation

import "math"

// AxisBounds distinguishes an axis that clamps out-of-range coordinates
// from one that wraps them (used for e.g. the phi coordinate of a
// cylindrical or disc grid).
type AxisBounds int

const (
	// BoundsOpen clamps bin/index lookups to [0, nbins-1].
	BoundsOpen AxisBounds = iota
	// BoundsCircular wraps bin/index lookups modulo nbins.
	BoundsCircular
)

// AxisKind distinguishes regular (equal-width) bins from irregular
// (explicit edge list) bins.
type AxisKind int

const (
	AxisRegular AxisKind = iota
	AxisIrregular
)

// Axis is a single 1-dimensional binning of a coordinate range.
type Axis struct {
	Kind   AxisKind
	Bounds AxisBounds

	Min, Max Real // regular axis: [Min, Max) split into NBins
	NBins    int

	Edges []Real // irregular axis: NBins = len(Edges)-1
}

// NewRegularAxis builds an equal-width axis over [min, max) with nbins bins.
func NewRegularAxis(min, max Real, nbins int, bounds AxisBounds) Axis {
	return Axis{Kind: AxisRegular, Bounds: bounds, Min: min, Max: max, NBins: nbins}
}

// NewIrregularAxis builds an axis from an explicit, ascending list of bin
// edges; len(edges)-1 bins result.
func NewIrregularAxis(edges []Real, bounds AxisBounds) Axis {
	return Axis{Kind: AxisIrregular, Bounds: bounds, Edges: edges, NBins: len(edges) - 1}
}

func (a Axis) binWidth() Real {
	return (a.Max - a.Min) / Real(a.NBins)
}

// rawIndex maps a coordinate to an (unclamped, unwrapped) bin index.
func (a Axis) rawIndex(x Real) int {
	switch a.Kind {
	case AxisRegular:
		return int(math.Floor((x - a.Min) / a.binWidth()))
	default:
		// Irregular: find the last edge <= x via linear scan. Grids in
		// this package are small (detector layers, not histograms), so
		// a linear scan keeps the code simple and allocation-free.
		idx := 0
		for i := 1; i < len(a.Edges)-1; i++ {
			if x < a.Edges[i] {
				break
			}
			idx = i
		}
		return idx
	}
}

// Wrap folds a raw index into [0, NBins) for a circular axis, or clamps it
// into [0, NBins-1] for an open axis.
func (a Axis) Wrap(idx int) int {
	if a.Bounds == BoundsCircular {
		m := idx % a.NBins
		if m < 0 {
			m += a.NBins
		}
		return m
	}
	if idx < 0 {
		return 0
	}
	if idx >= a.NBins {
		return a.NBins - 1
	}
	return idx
}

// Index maps a coordinate to its bin index, applying the axis's bounds
// policy. A circular axis at exactly the max edge wraps to bin 0.
func (a Axis) Index(x Real) int {
	return a.Wrap(a.rawIndex(x))
}

// BinRange returns the inclusive [lo, hi] raw index range covering a
// window of `half` bins on either side of x's bin. It is not wrapped or
// clamped: callers enumerate the range and apply Wrap per index, so a
// circular axis's window can straddle the wrap point.
func (a Axis) BinRange(x Real, half int) (lo, hi int) {
	c := a.rawIndex(x)
	return c - half, c + half
}
