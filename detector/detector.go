// Package detector builds and stores the navigable geometry a Navigator
// runs over: volumes, surfaces, transforms, masks, and the accelerators
// indexing them. A Detector is immutable once built and safe to share
// across any number of concurrently propagated tracks.
package detector

import (
	"github.com/google/uuid"

	"github.com/lukaszgryglicki/detnav/internal/navigation"
)

// Detector is a named, versioned detector geometry plus the store a
// Navigator needs to walk it.
type Detector struct {
	Name     string
	BuildID  uuid.UUID
	Geometry *navigation.GeometryStore
}

// Navigator returns a Navigator over d's geometry, configured with cfg.
func (d *Detector) Navigator(cfg navigation.Config) *navigation.Navigator {
	return navigation.NewNavigator(d.Geometry, cfg)
}

// StartState returns a fresh, uninitialized navigator state for a track
// starting in volume startVolume.
func (d *Detector) StartState(startVolume int) *navigation.State {
	return navigation.NewState(startVolume)
}

// NumVolumes reports how many volumes the detector has.
func (d *Detector) NumVolumes() int {
	return len(d.Geometry.Volumes)
}

// NumSurfaces reports how many surfaces (portals and modules together) the
// detector has.
func (d *Detector) NumSurfaces() int {
	return len(d.Geometry.Surfaces)
}
