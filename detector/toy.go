package detector

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/lukaszgryglicki/detnav/internal/navigation"
)

// ToyConfig describes a simplified concentric-barrel tracker: a beam pipe
// surrounded by one cylindrical layer per LayerRadii entry, each instrumented with
// NumPhiTiles flat sensor tiles tangent to the layer's radius.
type ToyConfig struct {
	BeamPipeRadius navigation.Real   `json:"beam_pipe_radius"`
	LayerRadii     []navigation.Real `json:"layer_radii"`
	NumPhiTiles    int               `json:"num_phi_tiles"`
	HalfLength     navigation.Real   `json:"half_length"`
}

// DefaultToyConfig returns a four-layer barrel spanning roughly the scale
// of an inner tracking detector, in arbitrary length units.
func DefaultToyConfig() ToyConfig {
	return ToyConfig{
		BeamPipeRadius: 23,
		LayerRadii:     []navigation.Real{32, 72, 116, 172},
		NumPhiTiles:    16,
		HalfLength:     500,
	}
}

// NewToy builds a Detector from cfg: a beam-pipe volume, one volume per
// barrel layer, and the cyl2-grid accelerators indexing each layer's
// tiles and boundary portals.
func NewToy(cfg ToyConfig) (*Detector, error) {
	if len(cfg.LayerRadii) == 0 {
		return nil, fmt.Errorf("detector: toy config needs at least one layer")
	}
	for i := 1; i < len(cfg.LayerRadii); i++ {
		if cfg.LayerRadii[i] <= cfg.LayerRadii[i-1] {
			return nil, fmt.Errorf("detector: layer radii must be strictly increasing")
		}
	}
	if cfg.LayerRadii[0] <= cfg.BeamPipeRadius {
		return nil, fmt.Errorf("detector: first layer must sit outside the beam pipe")
	}
	if cfg.NumPhiTiles < 3 {
		return nil, fmt.Errorf("detector: need at least 3 phi tiles per layer")
	}

	b := newBuilder()
	axisTrf := b.addTransform(navigation.IdentityTransform())

	numVolumes := len(cfg.LayerRadii) + 1
	boundary := make([]navigation.Real, len(cfg.LayerRadii)+1)
	boundary[0] = cfg.BeamPipeRadius
	for i := 0; i < len(cfg.LayerRadii)-1; i++ {
		boundary[i+1] = (cfg.LayerRadii[i] + cfg.LayerRadii[i+1]) / 2
	}
	boundary[len(cfg.LayerRadii)] = cfg.LayerRadii[len(cfg.LayerRadii)-1] * 1.2

	// Volume 0: the beam pipe, instrumented with nothing, bounded by a
	// single outer portal into the first layer.
	beamPipeMask := b.addMask(navigation.Mask{
		Shape: navigation.ShapeCylinderPortal, Radius: boundary[0], HalfZ: cfg.HalfLength,
	})
	beamPipePortal := b.addSurface(navigation.Surface{
		Barcode:   navigation.Barcode{Volume: 0, Kind: navigation.KindPortal},
		Transform: axisTrf, Mask: beamPipeMask, NavLink: 1,
	})
	beamPipeAccel := b.addBruteForceAccel([]int{beamPipePortal})
	b.addVolume(navigation.Volume{Accelerator: beamPipeAccel})

	for i, r := range cfg.LayerRadii {
		volIndex := i + 1
		innerLink := volIndex - 1
		outerLink := volIndex + 1
		if volIndex == numVolumes-1 {
			outerLink = navigation.ExitVolume
		}

		innerMask := b.addMask(navigation.Mask{
			Shape: navigation.ShapeCylinderPortal, Radius: boundary[i], HalfZ: cfg.HalfLength,
		})
		outerMask := b.addMask(navigation.Mask{
			Shape: navigation.ShapeCylinderPortal, Radius: boundary[i+1], HalfZ: cfg.HalfLength,
		})
		innerPortal := b.addSurface(navigation.Surface{
			Barcode:   navigation.Barcode{Volume: volIndex, Kind: navigation.KindPortal},
			Transform: axisTrf, Mask: innerMask, NavLink: innerLink,
		})
		outerPortal := b.addSurface(navigation.Surface{
			Barcode:   navigation.Barcode{Volume: volIndex, Kind: navigation.KindPortal},
			Transform: axisTrf, Mask: outerMask, NavLink: outerLink,
		})

		circumference := 2 * math.Pi * r
		tileHalfArc := circumference / navigation.Real(cfg.NumPhiTiles) / 2
		tileMask := b.addMask(navigation.Mask{
			Shape: navigation.ShapePlane, HalfX: tileHalfArc * 0.98, HalfY: cfg.HalfLength,
		})

		axes := navigation.MultiAxis{
			navigation.NewRegularAxis(-circumference/2, circumference/2, cfg.NumPhiTiles, navigation.BoundsCircular),
			navigation.NewRegularAxis(-cfg.HalfLength, cfg.HalfLength, 1, navigation.BoundsOpen),
		}
		grid := navigation.NewGrid(axes)
		grid.PopulateAll(innerPortal)
		grid.PopulateAll(outerPortal)

		for k := 0; k < cfg.NumPhiTiles; k++ {
			phi := 2 * math.Pi * navigation.Real(k) / navigation.Real(cfg.NumPhiTiles)
			cosP, sinP := math.Cos(phi), math.Sin(phi)
			tileTrf := b.addTransform(navigation.Transform3{
				Translation: navigation.Point3{X: r * cosP, Y: r * sinP, Z: 0},
				X:           navigation.Vector3{X: -sinP, Y: cosP, Z: 0},
				Y:           navigation.Vector3{X: 0, Y: 0, Z: 1},
				Z:           navigation.Vector3{X: cosP, Y: sinP, Z: 0},
			})
			tileSurf := b.addSurface(navigation.Surface{
				Barcode:   navigation.Barcode{Volume: volIndex, Kind: navigation.KindModule},
				Transform: tileTrf, Mask: tileMask, NavLink: volIndex,
			})
			arc := r * phi
			if arc > circumference/2 {
				arc -= circumference
			}
			grid.Populate(navigation.Point2{U: arc, V: 0}, tileSurf)
		}

		accel := b.addCyl2GridAccel(grid)
		b.addVolume(navigation.Volume{
			Accelerator:     accel,
			CenterTransform: axisTrf,
			GridRadius:      r,
		})
	}

	return &Detector{
		Name:     "toy-barrel",
		BuildID:  uuid.New(),
		Geometry: b.build(),
	}, nil
}
