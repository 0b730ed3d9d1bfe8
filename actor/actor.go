// Package actor defines the hooks a propagator calls after every step, for
// behavior that depends on the track's full history rather than just its
// current kinematic state — recording hits, deciding when to stop.
package actor

import (
	"github.com/lukaszgryglicki/detnav/internal/navigation"
	"github.com/lukaszgryglicki/detnav/stepper"
)

// Actor observes a track and its navigator state after each step. It may
// mutate state (most commonly by calling state.Abort) but must never
// mutate track: actors that need to record something keep their own
// storage.
type Actor interface {
	Act(state *navigation.State, track stepper.Track)
}

// Chain runs a fixed sequence of actors in order after every step.
type Chain []Actor

func (c Chain) Act(state *navigation.State, track stepper.Track) {
	for _, a := range c {
		a.Act(state, track)
		if !state.Heartbeat {
			return
		}
	}
}
