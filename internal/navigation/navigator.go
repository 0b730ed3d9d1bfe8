package navigation

import (
	"math"
	"sort"
)

// ExitVolume is the NavLink value a world-boundary portal carries: crossing
// one means the track has left the detector entirely, not entered another
// volume.
const ExitVolume = -1

// Navigator walks a State through a GeometryStore one candidate at a time.
// It holds no per-track state itself — everything mutable lives in the
// State the caller passes in — so a single Navigator is safely shared
// across concurrently propagated tracks.
type Navigator struct {
	Geometry *GeometryStore
	Config   Config
}

// NewNavigator builds a Navigator over geometry with cfg's tolerances.
func NewNavigator(geometry *GeometryStore, cfg Config) *Navigator {
	return &Navigator{Geometry: geometry, Config: cfg}
}

// Init rebuilds state's candidate cache from scratch: every surface the
// current volume's accelerator reports near ray is intersected, the
// forward-valid ones are kept and sorted by ascending path length, and
// Next/Last are reset to span them. This is the only path that talks to
// the accelerator; every other trust level works from the existing cache.
func (n *Navigator) Init(state *State, ray Ray) {
	vol := n.Geometry.Volumes[state.VolumeIndex]

	state.Candidates = state.Candidates[:0]
	n.Geometry.Visit(vol, ray, n.Config.MaskTolerance, n.Config.OverstepTolerance, n.Config.SearchWindow, n.Config.MaxCandidates, func(r Record) {
		if r.Valid() {
			state.Candidates = append(state.Candidates, r)
		}
	})
	sort.Slice(state.Candidates, func(i, j int) bool {
		return state.Candidates[i].Path < state.Candidates[j].Path
	})
	state.Next = 0
	state.Last = len(state.Candidates)
	state.OnBarcode = InvalidBarcode
	DebugLog("Init: volume=%d candidates=%d", state.VolumeIndex, len(state.Candidates))

	n.updateNavigationState(state)
	if state.Trust != TrustFull {
		// update_navigation_state could not re-establish full trust
		// (the cache is empty, exhausted, or the track landed directly
		// on a portal): the setup this Init was asked to perform is
		// broken, not merely incomplete.
		state.Abort()
	}
	state.notify()
}

// updateNavigationState is the bookkeeping Init shares with a refreshed
// cache: if the candidate at Next has been reached, it is consumed (Next
// advances, OnBarcode is set, and status reflects whether the just-reached
// surface is a portal or a module); otherwise the track is still heading
// toward it. Trust is then raised to full unless the cache is spent or the
// track just landed on a portal, either of which needs a volume switch or
// a fresh Init before trust can be restored.
func (n *Navigator) updateNavigationState(state *State) {
	if current, ok := state.Current(); ok && math.Abs(current.Path) < n.Config.OnSurfaceTolerance {
		state.OnBarcode = current.Barcode
		state.Next++
		if current.Barcode.Kind == KindPortal {
			state.Status = StatusOnPortal
		} else {
			state.Status = StatusOnModule
		}
	} else {
		state.Status = StatusTowardsObject
	}

	if state.Exhausted() || state.Status == StatusOnPortal {
		state.Trust = TrustNoTrust
	} else {
		state.Trust = TrustFull
	}
}

// Update advances state by one step's worth of navigation logic, honoring
// state.Trust: TrustFull and TrustHigh both refresh every candidate's path
// length against the ray that just arrived (full trust only holds for the
// instant Init or the previous Update left it in; the step in between
// always moves the reference the cached paths were measured from), TrustFair
// re-sorts them, and TrustNoTrust falls back to a full Init. Update returns
// the navigator's new status.
func (n *Navigator) Update(state *State, ray Ray) NavStatus {
	if !state.Heartbeat {
		return state.Status
	}

	switch state.Trust {
	case TrustNoTrust:
		n.Init(state, ray)
	case TrustFair:
		n.resort(state, ray)
	case TrustHigh, TrustFull:
		n.refresh(state, ray)
	}

	if !state.Heartbeat {
		return state.Status
	}

	n.updateCandidate(state, ray)
	state.notify()
	return state.Status
}

// refresh recomputes every candidate's path length against the current
// ray without changing their order or membership, then hands off to
// findInvalid to decide whether that assumption still holds.
func (n *Navigator) refresh(state *State, ray Ray) {
	for i := range state.Candidates {
		c := &state.Candidates[i]
		n.Geometry.Intersect(c, ray, n.surfaceIndex(*c), n.Config.MaskTolerance, n.Config.OverstepTolerance)
	}
	n.findInvalid(state, ray)
	if state.Heartbeat {
		state.Trust = TrustFull
	}
}

// resort recomputes every candidate and re-sorts them by path length,
// dropping any that are no longer valid. Used when the step was large
// enough that candidates might have swapped order (e.g. a curved track
// crossing a layer at a shallow angle) but the set of nearby surfaces is
// still believed complete.
func (n *Navigator) resort(state *State, ray Ray) {
	kept := state.Candidates[:0]
	for i := range state.Candidates {
		// Seed with the previous Root so a generic cylinder's re-intersect
		// recomputes the same crossing rather than defaulting to root 0.
		c := Record{Root: state.Candidates[i].Root}
		n.Geometry.Intersect(&c, ray, n.surfaceIndex(state.Candidates[i]), n.Config.MaskTolerance, n.Config.OverstepTolerance)
		if c.Valid() {
			kept = append(kept, c)
		}
	}
	state.Candidates = kept
	sort.Slice(state.Candidates, func(i, j int) bool {
		return state.Candidates[i].Path < state.Candidates[j].Path
	})
	state.Next = 0
	state.Last = len(state.Candidates)

	if state.Last == 0 {
		n.Init(state, ray)
		return
	}
	state.Trust = TrustHigh
	state.Status = StatusTowardsObject
}

// findInvalid checks whether the refreshed candidates are still usable: if
// any stopped being valid, the cache can no longer be trusted to be
// complete or correctly ordered, and a full re-Init is required.
func (n *Navigator) findInvalid(state *State, ray Ray) {
	for i := state.Next; i < state.Last; i++ {
		if !state.Candidates[i].Valid() {
			n.Init(state, ray)
			return
		}
	}
}

// updateCandidate checks whether the track has reached the candidate it is
// currently heading for and, if so, applies the consequences: a module
// keeps the current volume and advances to the next candidate, a portal
// switches (or exits) the volume and forces a re-Init, and running out of
// candidates without crossing a portal forces a re-Init of the same
// volume.
func (n *Navigator) updateCandidate(state *State, ray Ray) {
	current, ok := state.Current()
	if !ok {
		n.Init(state, ray)
		return
	}

	if math.Abs(current.Path) >= n.Config.OnSurfaceTolerance {
		state.Status = StatusTowardsObject
		return
	}

	state.OnBarcode = current.Barcode
	state.Next++

	switch current.Barcode.Kind {
	case KindPortal:
		if current.VolumeLink == ExitVolume {
			DebugLog("updateCandidate: barcode=%+v exits the detector", current.Barcode)
			state.Status = StatusOnTarget
			state.Heartbeat = false
			return
		}
		DebugLog("updateCandidate: barcode=%+v crosses portal into volume=%d", current.Barcode, current.VolumeLink)
		state.VolumeIndex = current.VolumeLink
		state.Status = StatusOnPortal
		state.Trust = TrustNoTrust
		state.notify()
		n.Init(state, ray)
		if !state.Heartbeat && !state.Exhausted() {
			// The new volume's own portal on the boundary just crossed sits
			// at zero distance, so Init consumes it as on_portal and reports
			// a failed setup. Entering a volume is not a setup failure:
			// restore trust and carry on towards the next candidate.
			state.Trust = TrustFull
			state.Heartbeat = true
			state.Status = StatusTowardsObject
			state.notify()
		}
	case KindModule:
		DebugLog("updateCandidate: barcode=%+v lands on module", current.Barcode)
		state.Status = StatusOnModule
		state.notify()
		if state.Exhausted() {
			n.Init(state, ray)
		}
	}
}

// surfaceIndex recovers a candidate's position in the geometry's surface
// store from its barcode: a detector builder sets Barcode.Index to a
// surface's own index in GeometryStore.Surfaces, so this is a direct
// lookup, not a search.
func (n *Navigator) surfaceIndex(r Record) int {
	return r.Barcode.Index
}
