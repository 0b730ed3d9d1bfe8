// Package propagator drives a track through a detector: it asks the
// navigator for the next candidate, asks a stepper to advance the track
// that far (or less, if a constraint caps it), reports the result back to
// the navigator, and runs every registered actor — repeating until the
// navigator's heartbeat stops.
package propagator

import (
	"github.com/lukaszgryglicki/detnav/actor"
	"github.com/lukaszgryglicki/detnav/internal/navigation"
	"github.com/lukaszgryglicki/detnav/stepper"
)

// Propagation bundles everything a track needs to be propagated: the
// navigator it advances against, the stepper that moves it, and the
// actors and constraints applied at every step.
type Propagation struct {
	Navigator   *navigation.Navigator
	Stepper     stepper.Stepper
	Actors      actor.Chain
	Constraints []stepper.Constraint
	MaxSteps    int // 0 means unbounded
}

// Result is what a single track's propagation produced.
type Result struct {
	Track  stepper.Track
	Status navigation.NavStatus
	Steps  int
}

// Run propagates track through state's volume until the navigator reports
// it has stopped (on_target, abort, or the world boundary), an actor
// aborts it, or MaxSteps is reached.
func (p *Propagation) Run(track stepper.Track, state *navigation.State) Result {
	p.Navigator.Init(state, track.Ray())

	steps := 0
	for state.Heartbeat {
		if p.MaxSteps > 0 && steps >= p.MaxSteps {
			state.Abort()
			break
		}

		current, ok := state.Current()
		if !ok {
			break
		}

		stepSize := current.Path
		constrained := false
		for _, c := range p.Constraints {
			if m := c.MaxStep(track); m < stepSize {
				stepSize = m
				constrained = true
			}
		}

		p.Stepper.Step(&track, stepSize)
		steps++

		if constrained {
			state.Trust = navigation.TrustFair
		}
		p.Navigator.Update(state, track.Ray())

		if p.Actors != nil {
			p.Actors.Act(state, track)
		}
	}

	return Result{Track: track, Status: state.Status, Steps: steps}
}
