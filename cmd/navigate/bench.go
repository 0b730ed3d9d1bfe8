package main

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/detnav/actor"
	"github.com/lukaszgryglicki/detnav/detector"
	"github.com/lukaszgryglicki/detnav/internal/navigation"
	"github.com/lukaszgryglicki/detnav/propagator"
	"github.com/lukaszgryglicki/detnav/stepper"
)

type benchFlags struct {
	numTracks int
	momentum  float64
	bz        float64
	maxPath   float64
}

func newBenchCmd() *cobra.Command {
	f := &benchFlags{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Propagate many tracks concurrently and report navigation status counts and timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(f)
		},
	}
	cmd.Flags().IntVar(&f.numTracks, "tracks", 1000, "number of tracks to propagate")
	cmd.Flags().Float64Var(&f.momentum, "momentum", 2.0, "track momentum")
	cmd.Flags().Float64Var(&f.bz, "bz", 2.0, "uniform field strength along z")
	cmd.Flags().Float64Var(&f.maxPath, "max-path", 2000, "per-track path length abort limit")
	return cmd
}

func runBench(f *benchFlags) error {
	det, err := detector.NewToy(detector.DefaultToyConfig())
	if err != nil {
		return err
	}

	tracks := make([]stepper.Track, f.numTracks)
	startVolumes := make([]int, f.numTracks)
	for i := range tracks {
		phi := 2 * math.Pi * float64(i) / float64(len(tracks))
		theta := math.Pi/2 - 0.3 + 0.6*float64(i%7)/7
		tracks[i] = stepper.Track{
			Dir:      directionFromAngles(theta, phi),
			Charge:   1 - 2*float64(i%2),
			Momentum: f.momentum,
		}
		startVolumes[i] = 0
	}

	prop := &propagator.Propagation{
		Navigator: det.Navigator(navigation.DefaultConfig()),
		Stepper:   stepper.HelixStepper{Bz: f.bz},
		Actors:    actor.Chain{actor.PathLimitAborter{MaxPath: f.maxPath}},
		MaxSteps:  1000,
	}

	start := time.Now()
	results, err := propagator.PropagateAll(context.Background(), prop, tracks, startVolumes)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	counts := map[navigation.NavStatus]int{}
	for _, r := range results {
		counts[r.Status]++
	}

	fmt.Printf("propagated %d tracks in %s\n", len(tracks), elapsed)
	for status, n := range counts {
		fmt.Printf("  %-14s %d\n", status, n)
	}
	return nil
}
