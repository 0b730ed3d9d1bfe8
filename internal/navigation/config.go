package navigation

// Config tunes the navigator's numerical tolerances. The defaults mirror
// typical silicon-tracker scales: tens of microns of mask slack, a micron
// of on-surface slack, and a tiny negative overstep allowance so a track
// whose step ended fractionally past a surface still sees that surface as a
// candidate.
type Config struct {
	// MaskTolerance widens every mask's bounds check, absorbing the
	// numerical noise of a linearized step landing just outside a real
	// edge.
	MaskTolerance Real

	// OnSurfaceTolerance is the path-length band around zero within which
	// a candidate is considered "the track is on it now" rather than
	// "ahead of the track".
	OnSurfaceTolerance Real

	// OverstepTolerance is the most-negative path length still accepted as
	// a forward candidate, absorbing the case where the track's last step
	// ended fractionally short of (or past) the surface it just crossed.
	OverstepTolerance Real

	// SearchWindow sizes the bin neighbourhood grid accelerators search
	// around the track's projected position.
	SearchWindow SearchWindow

	// MaxCandidates caps how many surfaces a grid accelerator search can
	// report; 0 means unbounded. Brute-force volumes always report every
	// surface they own.
	MaxCandidates int
}

// DefaultConfig returns the navigator's default tolerances.
func DefaultConfig() Config {
	return Config{
		MaskTolerance:      15e-6,
		OnSurfaceTolerance: 1e-6,
		OverstepTolerance:  -100e-6,
		SearchWindow:       SearchWindow{1, 0},
		MaxCandidates:      20,
	}
}
