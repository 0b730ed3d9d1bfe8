package detector

import "github.com/lukaszgryglicki/detnav/internal/navigation"

// builder accumulates the flat stores a GeometryStore is made of. Surfaces
// are always appended with addSurface, which stamps their Barcode.Index to
// their own position in the surface slice — the invariant every navigator
// lookup by barcode depends on.
type builder struct {
	transforms []navigation.Transform3
	masks      []navigation.Mask
	surfaces   []navigation.Surface
	volumes    []navigation.Volume
	accel      navigation.AcceleratorStore
}

func newBuilder() *builder {
	return &builder{}
}

func (b *builder) addTransform(t navigation.Transform3) int {
	b.transforms = append(b.transforms, t)
	return len(b.transforms) - 1
}

func (b *builder) addMask(m navigation.Mask) int {
	b.masks = append(b.masks, m)
	return len(b.masks) - 1
}

// addSurface appends sf with its barcode's volume/kind already set by the
// caller, and fills in Barcode.Index and returns the new surface's global
// index.
func (b *builder) addSurface(sf navigation.Surface) int {
	idx := len(b.surfaces)
	sf.Barcode.Index = idx
	b.surfaces = append(b.surfaces, sf)
	return idx
}

func (b *builder) addVolume(v navigation.Volume) int {
	v.Index = len(b.volumes)
	b.volumes = append(b.volumes, v)
	return v.Index
}

// addBruteForceAccel registers surfaceIdx as a brute-force-searched volume
// and returns the link a Volume should carry.
func (b *builder) addBruteForceAccel(surfaceIdx []int) navigation.AcceleratorLink {
	b.accel.BruteForce = append(b.accel.BruteForce, surfaceIdx)
	return navigation.AcceleratorLink{Kind: navigation.AccelBruteForce, Index: len(b.accel.BruteForce) - 1}
}

// addCyl2GridAccel registers grid as a cylindrical (arc-length, z)
// accelerator and returns the link a Volume should carry.
func (b *builder) addCyl2GridAccel(grid *navigation.Grid) navigation.AcceleratorLink {
	b.accel.Cyl2 = append(b.accel.Cyl2, grid)
	return navigation.AcceleratorLink{Kind: navigation.AccelCyl2Grid, Index: len(b.accel.Cyl2) - 1}
}

// addDiscGridAccel registers grid as a disc (r, phi) accelerator and
// returns the link a Volume should carry.
func (b *builder) addDiscGridAccel(grid *navigation.Grid) navigation.AcceleratorLink {
	b.accel.Disc = append(b.accel.Disc, grid)
	return navigation.AcceleratorLink{Kind: navigation.AccelDiscGrid, Index: len(b.accel.Disc) - 1}
}

func (b *builder) build() *navigation.GeometryStore {
	navigation.DebugLogOnce("detector: built geometry with volumes=%d surfaces=%d transforms=%d masks=%d",
		len(b.volumes), len(b.surfaces), len(b.transforms), len(b.masks))
	return &navigation.GeometryStore{
		Volumes:      b.volumes,
		Surfaces:     b.surfaces,
		Transforms:   b.transforms,
		Masks:        b.masks,
		Accelerators: b.accel,
	}
}
