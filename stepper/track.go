// Package stepper advances a track's position and direction by a given
// path length, independent of the navigator: a Stepper only answers "where
// does the track end up after this path length", leaving "did it cross a
// surface along the way" to the propagator.
package stepper

import "github.com/lukaszgryglicki/detnav/internal/navigation"

// Track is a charged particle's kinematic state at one point along its
// trajectory.
type Track struct {
	Pos navigation.Point3
	Dir navigation.Vector3

	// Charge is in units of the elementary charge (+1, -1, ...).
	Charge navigation.Real
	// Momentum is the track's momentum magnitude, in the same abstract
	// units as the detector's length scale times field strength.
	Momentum navigation.Real

	PathLength navigation.Real
}

// Ray views the track's current position and direction as a straight line,
// the linearization every navigator candidate search operates on.
func (t Track) Ray() navigation.Ray {
	return navigation.Ray{Pos: t.Pos, Dir: t.Dir}
}

// Stepper advances a Track in place by exactly pathLength, along whatever
// trajectory model it implements.
type Stepper interface {
	Step(t *Track, pathLength navigation.Real)
}

// Constraint caps how far a single step is allowed to go, independent of
// where the navigator's next candidate lies. A propagator takes the
// minimum of the navigator's candidate distance and every registered
// constraint's MaxStep before calling a Stepper.
type Constraint interface {
	MaxStep(t Track) navigation.Real
}

// ConstraintFunc adapts a plain function to Constraint.
type ConstraintFunc func(t Track) navigation.Real

func (f ConstraintFunc) MaxStep(t Track) navigation.Real { return f(t) }
