package main

import (
	"fmt"
	"math"

	"github.com/spf13/cobra"

	"github.com/lukaszgryglicki/detnav/actor"
	"github.com/lukaszgryglicki/detnav/detector"
	"github.com/lukaszgryglicki/detnav/internal/navigation"
	"github.com/lukaszgryglicki/detnav/propagator"
	"github.com/lukaszgryglicki/detnav/stepper"
)

type runFlags struct {
	configPath string
	momentum   float64
	charge     float64
	bz         float64
	theta      float64
	phi        float64
	maxPath    float64
	maxSteps   int
	verbose    bool
}

func newRunCmd() *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Propagate a single track through the toy detector and print each navigation step",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSingle(f)
		},
	}
	cmd.Flags().StringVar(&f.configPath, "config", "", "toy detector JSON config (defaults to the built-in toy geometry)")
	cmd.Flags().Float64Var(&f.momentum, "momentum", 2.0, "track momentum")
	cmd.Flags().Float64Var(&f.charge, "charge", 1.0, "track charge (elementary charge units)")
	cmd.Flags().Float64Var(&f.bz, "bz", 0.0, "uniform field strength along z (0 disables the helix stepper)")
	cmd.Flags().Float64Var(&f.theta, "theta", math.Pi/2, "initial polar angle, radians")
	cmd.Flags().Float64Var(&f.phi, "phi", 0, "initial azimuthal angle, radians")
	cmd.Flags().Float64Var(&f.maxPath, "max-path", 2000, "abort once the track's accumulated path length reaches this")
	cmd.Flags().IntVar(&f.maxSteps, "max-steps", 1000, "abort after this many navigator steps")
	cmd.Flags().BoolVar(&f.verbose, "verbose", false, "print every navigator status transition")
	return cmd
}

func runSingle(f *runFlags) error {
	cfg := detector.DefaultToyConfig()
	if f.configPath != "" {
		loaded, err := detector.LoadToyConfig(f.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	det, err := detector.NewToy(cfg)
	if err != nil {
		return err
	}

	track := stepper.Track{
		Pos:      navigation.Point3{},
		Dir:      directionFromAngles(f.theta, f.phi),
		Charge:   f.charge,
		Momentum: f.momentum,
	}

	var st stepper.Stepper = stepper.LineStepper{}
	if f.bz != 0 {
		st = stepper.HelixStepper{Bz: f.bz}
	}

	state := det.StartState(0)
	if f.verbose {
		navigation.Debug = true
		state.Inspector = func(s *navigation.State) {
			fmt.Printf("volume=%d status=%-14s trust=%d candidates=%d/%d\n",
				s.VolumeIndex, s.Status, s.Trust, s.Next, s.Last)
		}
	}

	prop := &propagator.Propagation{
		Navigator: det.Navigator(navigation.DefaultConfig()),
		Stepper:   st,
		Actors:    actor.Chain{actor.PathLimitAborter{MaxPath: f.maxPath}},
		MaxSteps:  f.maxSteps,
	}

	result := prop.Run(track, state)
	fmt.Printf("final status: %s\n", result.Status)
	fmt.Printf("steps: %d\n", result.Steps)
	fmt.Printf("path length: %.3f\n", result.Track.PathLength)
	fmt.Printf("final position: (%.3f, %.3f, %.3f)\n", result.Track.Pos.X, result.Track.Pos.Y, result.Track.Pos.Z)
	return nil
}

func directionFromAngles(theta, phi float64) navigation.Vector3 {
	return navigation.Vector3{
		X: math.Sin(theta) * math.Cos(phi),
		Y: math.Sin(theta) * math.Sin(phi),
		Z: math.Cos(theta),
	}
}
