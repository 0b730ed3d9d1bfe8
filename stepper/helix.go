package stepper

import "math"

// HelixStepper advances a charged track through a uniform field Bz along
// the global z axis in closed form: the transverse direction rotates at a
// constant rate (the track's curvature) and the longitudinal direction is
// unchanged, so a step is computed exactly rather than integrated.
type HelixStepper struct {
	Bz float64
}

// curvature returns the signed inverse radius of the track's helix in the
// transverse plane. A neutral track (zero charge) or one with infinite
// momentum has zero curvature and steps in a straight line.
func (s HelixStepper) curvature(t *Track) float64 {
	if t.Momentum == 0 {
		return 0
	}
	return t.Charge * s.Bz / t.Momentum
}

func (s HelixStepper) Step(t *Track, pathLength float64) {
	k := s.curvature(t)
	if k == 0 {
		(LineStepper{}).Step(t, pathLength)
		return
	}

	vx, vy, vz := t.Dir.X, t.Dir.Y, t.Dir.Z
	ks := k * pathLength
	sinKs, cosKs := math.Sin(ks), math.Cos(ks)

	dx := (vx*sinKs - vy*(1-cosKs)) / k
	dy := (vx*(1-cosKs) + vy*sinKs) / k
	dz := vz * pathLength

	t.Pos.X += dx
	t.Pos.Y += dy
	t.Pos.Z += dz

	t.Dir.X = vx*cosKs - vy*sinKs
	t.Dir.Y = vx*sinKs + vy*cosKs
	t.PathLength += pathLength
}
