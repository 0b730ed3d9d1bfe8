package stepper

// LineStepper advances a track along its current direction unchanged, the
// trajectory model for an uncharged or field-free track.
type LineStepper struct{}

func (LineStepper) Step(t *Track, pathLength float64) {
	t.Pos = t.Pos.Add(t.Dir.Mul(pathLength))
	t.PathLength += pathLength
}
