package navigation

// NavStatus is the navigator's outward-facing status: what the propagator
// should make of the current step.
type NavStatus int

const (
	StatusUnknown NavStatus = iota
	StatusTowardsObject
	StatusOnModule
	StatusOnPortal
	StatusOnTarget
	StatusAbort
)

func (s NavStatus) String() string {
	switch s {
	case StatusUnknown:
		return "unknown"
	case StatusTowardsObject:
		return "towards_object"
	case StatusOnModule:
		return "on_module"
	case StatusOnPortal:
		return "on_portal"
	case StatusOnTarget:
		return "on_target"
	case StatusAbort:
		return "abort"
	default:
		return "invalid"
	}
}

// TrustLevel is the stepper's claim about how much the geometric picture
// may have changed since the last Update, and therefore how much work
// Update is allowed to skip.
type TrustLevel int

const (
	// TrustNoTrust forces a full Init: re-accelerate, re-intersect,
	// re-sort every candidate from scratch.
	TrustNoTrust TrustLevel = iota
	// TrustFair means the step deviated enough that the candidate order
	// might have changed, but the candidate set itself is still good: the
	// cache is re-sorted and re-filtered, not rebuilt.
	TrustFair
	// TrustHigh means only the path lengths of existing candidates need
	// refreshing against the new position; their relative order should
	// hold.
	TrustHigh
	// TrustFull is what Init and a successful refresh leave behind.
	// Update handles it exactly like TrustHigh: every candidate's path
	// length is recomputed; there is no path that skips the refresh.
	TrustFull
)

// StepDirection is the sense in which the track is being propagated along
// its own momentum.
type StepDirection int

const (
	DirForward StepDirection = iota
	DirBackward
)

// State is a navigator's mutable working set for one track: the sorted
// candidate cache, cursors into it, and the bookkeeping needed to decide
// how much of that cache survives the next Update.
type State struct {
	VolumeIndex int
	Status      NavStatus
	Trust       TrustLevel
	StepDir     StepDirection
	Heartbeat   bool

	// Candidates holds every intersection record currently believed
	// valid, ordered by ascending path length. Next indexes the
	// candidate the track is heading for; candidates before Next have
	// already been passed, candidates from Next to Last (exclusive) are
	// still live.
	Candidates []Record
	Next, Last int

	// OnBarcode is the surface the track most recently landed on. Init
	// resets it to InvalidBarcode; moving away from a surface does not.
	OnBarcode Barcode

	// Inspector, if set, is called after every Init/Update with the
	// resulting state, letting a caller log or record navigation without
	// the hot path paying for it when unset.
	Inspector func(*State)
}

// NewState returns a fresh, not-yet-initialized navigator state for volume
// startVolume, alive and distrustful of any cache.
func NewState(startVolume int) *State {
	return &State{
		VolumeIndex: startVolume,
		Status:      StatusUnknown,
		Trust:       TrustNoTrust,
		Heartbeat:   true,
		OnBarcode:   InvalidBarcode,
	}
}

// Current returns the candidate the track is currently heading for, and
// whether one exists.
func (s *State) Current() (Record, bool) {
	if s.Next < s.Last && s.Next < len(s.Candidates) {
		return s.Candidates[s.Next], true
	}
	return Record{}, false
}

// Exhausted reports whether every cached candidate has been passed.
func (s *State) Exhausted() bool {
	return s.Next >= s.Last
}

// Abort marks the state dead: the navigator will report StatusAbort and
// the propagator should stop stepping this track.
func (s *State) Abort() {
	s.Status = StatusAbort
	s.Heartbeat = false
}

func (s *State) notify() {
	if s.Inspector != nil {
		s.Inspector(s)
	}
}
