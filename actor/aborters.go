package actor

import (
	"github.com/lukaszgryglicki/detnav/internal/navigation"
	"github.com/lukaszgryglicki/detnav/stepper"
)

// PathLimitAborter stops propagation once a track's accumulated path
// length reaches MaxPath.
type PathLimitAborter struct {
	MaxPath navigation.Real
}

func (a PathLimitAborter) Act(state *navigation.State, track stepper.Track) {
	if track.PathLength >= a.MaxPath {
		state.Abort()
	}
}

// TargetSurfaceAborter stops propagation as soon as the track lands on a
// specific surface, reporting it as reached rather than aborted.
type TargetSurfaceAborter struct {
	Target navigation.Barcode
}

func (a TargetSurfaceAborter) Act(state *navigation.State, _ stepper.Track) {
	if state.OnBarcode == a.Target {
		state.Status = navigation.StatusOnTarget
		state.Heartbeat = false
	}
}

// VolumeHitCounter records, per volume index, how many times a track has
// landed on a module surface there. It never aborts; it exists purely to
// show how an Actor can accumulate history across a propagation.
type VolumeHitCounter struct {
	Hits map[int]int
}

// NewVolumeHitCounter returns a ready-to-use counter.
func NewVolumeHitCounter() *VolumeHitCounter {
	return &VolumeHitCounter{Hits: make(map[int]int)}
}

func (c *VolumeHitCounter) Act(state *navigation.State, _ stepper.Track) {
	if state.Status == navigation.StatusOnModule {
		c.Hits[state.OnBarcode.Volume]++
	}
}
