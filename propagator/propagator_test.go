package propagator

import (
	"math"
	"testing"

	"github.com/lukaszgryglicki/detnav/actor"
	"github.com/lukaszgryglicki/detnav/detector"
	"github.com/lukaszgryglicki/detnav/internal/navigation"
	"github.com/lukaszgryglicki/detnav/stepper"
)

func TestRunStraightTrackExitsThroughLastLayer(t *testing.T) {
	det, err := detector.NewToy(detector.DefaultToyConfig())
	if err != nil {
		t.Fatalf("NewToy: %v", err)
	}

	hits := actor.NewVolumeHitCounter()
	p := &Propagation{
		Navigator: det.Navigator(navigation.DefaultConfig()),
		Stepper:   stepper.LineStepper{},
		Actors:    actor.Chain{hits},
		MaxSteps:  1000,
	}

	track := stepper.Track{Dir: navigation.Vector3{X: 1}}
	state := det.StartState(0)
	result := p.Run(track, state)

	if result.Status != navigation.StatusOnTarget {
		t.Fatalf("Status = %v, want StatusOnTarget", result.Status)
	}
	if result.Steps == 0 {
		t.Fatalf("expected at least one step")
	}

	// A straight radial track should register exactly one module hit per
	// barrel layer, since it only crosses each layer's cylinder once.
	cfg := detector.DefaultToyConfig()
	totalHits := 0
	for _, n := range hits.Hits {
		totalHits += n
	}
	if totalHits != len(cfg.LayerRadii) {
		t.Fatalf("total module hits = %d, want %d (one per layer)", totalHits, len(cfg.LayerRadii))
	}
}

func TestRunPathLimitAborterStopsEarly(t *testing.T) {
	det, err := detector.NewToy(detector.DefaultToyConfig())
	if err != nil {
		t.Fatalf("NewToy: %v", err)
	}

	p := &Propagation{
		Navigator: det.Navigator(navigation.DefaultConfig()),
		Stepper:   stepper.LineStepper{},
		Actors:    actor.Chain{actor.PathLimitAborter{MaxPath: 20}},
	}

	track := stepper.Track{Dir: navigation.Vector3{X: 1}}
	state := det.StartState(0)
	result := p.Run(track, state)

	if result.Status != navigation.StatusAbort {
		t.Fatalf("Status = %v, want StatusAbort (the path limit sits inside the beam pipe)", result.Status)
	}
	if result.Track.PathLength < 20 {
		t.Fatalf("PathLength = %v, want at least the 20-unit limit", result.Track.PathLength)
	}
}

func TestRunMaxStepsAborts(t *testing.T) {
	det, err := detector.NewToy(detector.DefaultToyConfig())
	if err != nil {
		t.Fatalf("NewToy: %v", err)
	}

	p := &Propagation{
		Navigator: det.Navigator(navigation.DefaultConfig()),
		Stepper:   stepper.LineStepper{},
		MaxSteps:  1,
	}

	track := stepper.Track{Dir: navigation.Vector3{X: 1}}
	state := det.StartState(0)
	result := p.Run(track, state)

	if result.Status != navigation.StatusAbort {
		t.Fatalf("Status = %v, want StatusAbort once MaxSteps is exhausted", result.Status)
	}
	if result.Steps != 1 {
		t.Fatalf("Steps = %d, want 1", result.Steps)
	}
}

func TestRunHelixTrackCurvesButStillExits(t *testing.T) {
	det, err := detector.NewToy(detector.DefaultToyConfig())
	if err != nil {
		t.Fatalf("NewToy: %v", err)
	}

	p := &Propagation{
		Navigator: det.Navigator(navigation.DefaultConfig()),
		Stepper:   stepper.HelixStepper{Bz: 0.002},
		MaxSteps:  10000,
	}

	track := stepper.Track{Dir: navigation.Vector3{X: 1}, Charge: 1, Momentum: 4}
	state := det.StartState(0)
	result := p.Run(track, state)

	if result.Status != navigation.StatusOnTarget {
		t.Fatalf("Status = %v, want StatusOnTarget", result.Status)
	}
	if math.Hypot(result.Track.Pos.X, result.Track.Pos.Y) < detector.DefaultToyConfig().LayerRadii[len(detector.DefaultToyConfig().LayerRadii)-1] {
		t.Fatalf("final position %+v is not beyond the outermost layer", result.Track.Pos)
	}
}
