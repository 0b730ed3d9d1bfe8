package detector

import (
	"path/filepath"
	"testing"

	"github.com/lukaszgryglicki/detnav/internal/navigation"
)

func TestNewToyDefaultConfigVolumeAndSurfaceCounts(t *testing.T) {
	det, err := NewToy(DefaultToyConfig())
	if err != nil {
		t.Fatalf("NewToy: %v", err)
	}

	cfg := DefaultToyConfig()
	wantVolumes := len(cfg.LayerRadii) + 1 // beam pipe + one per layer
	if det.NumVolumes() != wantVolumes {
		t.Fatalf("NumVolumes = %d, want %d", det.NumVolumes(), wantVolumes)
	}

	// One portal for the beam pipe, then (inner portal + outer portal +
	// NumPhiTiles modules) per layer.
	wantSurfaces := 1 + len(cfg.LayerRadii)*(2+cfg.NumPhiTiles)
	if det.NumSurfaces() != wantSurfaces {
		t.Fatalf("NumSurfaces = %d, want %d", det.NumSurfaces(), wantSurfaces)
	}
}

func TestNewToyLastLayerOuterPortalExitsTheWorld(t *testing.T) {
	det, err := NewToy(DefaultToyConfig())
	if err != nil {
		t.Fatalf("NewToy: %v", err)
	}

	foundExit := false
	lastVolume := det.NumVolumes() - 1
	for _, sf := range det.Geometry.Surfaces {
		if sf.Barcode.Volume == lastVolume && sf.Barcode.Kind == navigation.KindPortal && sf.NavLink == navigation.ExitVolume {
			foundExit = true
		}
	}
	if !foundExit {
		t.Fatalf("expected the outermost layer to carry a portal linking to ExitVolume")
	}
}

func TestNewToyRejectsBadConfig(t *testing.T) {
	cases := []ToyConfig{
		{LayerRadii: nil, NumPhiTiles: 16, HalfLength: 500, BeamPipeRadius: 23},
		{LayerRadii: []navigation.Real{50, 40}, NumPhiTiles: 16, HalfLength: 500, BeamPipeRadius: 23},
		{LayerRadii: []navigation.Real{10}, NumPhiTiles: 16, HalfLength: 500, BeamPipeRadius: 23},
		{LayerRadii: []navigation.Real{32, 72}, NumPhiTiles: 2, HalfLength: 500, BeamPipeRadius: 23},
	}
	for i, cfg := range cases {
		if _, err := NewToy(cfg); err == nil {
			t.Fatalf("case %d: expected an error, got none", i)
		}
	}
}

func TestSaveAndLoadToyConfigRoundTrips(t *testing.T) {
	cfg := DefaultToyConfig()
	cfg.NumPhiTiles = 24

	path := filepath.Join(t.TempDir(), "toy.json")
	if err := SaveToyConfig(path, cfg); err != nil {
		t.Fatalf("SaveToyConfig: %v", err)
	}

	got, err := LoadToyConfig(path)
	if err != nil {
		t.Fatalf("LoadToyConfig: %v", err)
	}
	if got.NumPhiTiles != 24 {
		t.Fatalf("NumPhiTiles = %d, want 24", got.NumPhiTiles)
	}
	if got.BeamPipeRadius != cfg.BeamPipeRadius {
		t.Fatalf("BeamPipeRadius = %v, want %v", got.BeamPipeRadius, cfg.BeamPipeRadius)
	}
}

func TestLoadToyConfigMissingFile(t *testing.T) {
	if _, err := LoadToyConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatalf("expected an error reading a nonexistent config file")
	}
}
