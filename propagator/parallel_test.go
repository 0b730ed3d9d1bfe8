package propagator

import (
	"context"
	"math"
	"testing"

	"github.com/lukaszgryglicki/detnav/detector"
	"github.com/lukaszgryglicki/detnav/internal/navigation"
	"github.com/lukaszgryglicki/detnav/stepper"
)

func TestPropagateAllPreservesOrderAndReachesTarget(t *testing.T) {
	det, err := detector.NewToy(detector.DefaultToyConfig())
	if err != nil {
		t.Fatalf("NewToy: %v", err)
	}

	p := &Propagation{
		Navigator: det.Navigator(navigation.DefaultConfig()),
		Stepper:   stepper.LineStepper{},
		MaxSteps:  1000,
	}

	const n = 12
	tracks := make([]stepper.Track, n)
	startVolumes := make([]int, n)
	for i := 0; i < n; i++ {
		phi := 2 * math.Pi * float64(i) / n
		tracks[i] = stepper.Track{Dir: navigation.Vector3{X: math.Cos(phi), Y: math.Sin(phi)}}
		startVolumes[i] = 0
	}

	results, err := PropagateAll(context.Background(), p, tracks, startVolumes)
	if err != nil {
		t.Fatalf("PropagateAll: %v", err)
	}
	if len(results) != n {
		t.Fatalf("len(results) = %d, want %d", len(results), n)
	}

	for i, r := range results {
		if r.Status != navigation.StatusOnTarget {
			t.Fatalf("track %d: Status = %v, want StatusOnTarget", i, r.Status)
		}
		wantDir := tracks[i].Dir
		gotDir := r.Track.Dir
		if math.Abs(gotDir.X-wantDir.X) > 1e-9 || math.Abs(gotDir.Y-wantDir.Y) > 1e-9 {
			t.Fatalf("track %d: result direction %+v doesn't match the track it was started from (order scrambled?)", i, gotDir)
		}
	}
}
