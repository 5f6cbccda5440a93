// pkg/terrain/terrain.go
package terrain

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"go-vr-scene/internal/utils"
	"go-vr-scene/pkg/mesh"
	vec "go-vr-scene/pkg/utils"
)

const (
	DefaultSize       = 200
	DefaultResolution = 64
	// радиус ровной площадки вокруг зрителя
	DefaultFlatRadius = 12
)

// ErrUnknownGround is returned for ground types the generator does not implement.
var ErrUnknownGround = errors.New("terrain: unknown ground type")

// Params describe the ground to generate.
type Params struct {
	Seed       int
	Ground     string // flat, none, hills, noise, spikes, canyon
	YScale     float32
	Size       float32
	Resolution int
	FlatRadius float32
}

// Heightfield is a square grid of heights centred on the origin.
type Heightfield struct {
	Size       float32
	Resolution int
	Heights    []float32
}

// Generate builds a heightfield. The same params always give the same field.
func Generate(p Params) (*Heightfield, error) {
	if p.Size <= 0 {
		p.Size = DefaultSize
	}
	if p.Resolution < 2 {
		p.Resolution = DefaultResolution
	}
	if p.FlatRadius <= 0 {
		p.FlatRadius = DefaultFlatRadius
	}

	h := &Heightfield{
		Size:       p.Size,
		Resolution: p.Resolution,
		Heights:    make([]float32, p.Resolution*p.Resolution),
	}

	var shape func(u, w float32) float32
	rng := utils.NewPRNGService(int64(p.Seed) + 1)
	switch p.Ground {
	case "flat", "none", "":
		return h, nil
	case "hills":
		coarse, fine := newLattice(rng, 8), newLattice(rng, 16)
		shape = func(u, w float32) float32 {
			return 0.7*coarse.at(u, w) + 0.3*fine.at(u, w)
		}
	case "noise":
		shape = func(u, w float32) float32 {
			return rng.Float32() * 0.3
		}
	case "spikes":
		coarse := newLattice(rng, 12)
		shape = func(u, w float32) float32 {
			n := coarse.at(u, w)
			return n * n * n * 2
		}
	case "canyon":
		coarse := newLattice(rng, 8)
		shape = func(u, w float32) float32 {
			du, dw := u-0.5, w-0.5
			edge := vec.Smoothstep(0.15, 0.45, float32(math.Sqrt(float64(du*du+dw*dw))))
			return coarse.at(u, w) * edge * 2
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownGround, p.Ground)
	}

	last := float32(p.Resolution - 1)
	for iz := 0; iz < p.Resolution; iz++ {
		for ix := 0; ix < p.Resolution; ix++ {
			pt := h.Point(ix, iz)
			d := float32(math.Hypot(float64(pt.X), float64(pt.Z)))
			flat := vec.Smoothstep(p.FlatRadius, p.FlatRadius*2.5, d)
			h.Heights[iz*p.Resolution+ix] = shape(float32(ix)/last, float32(iz)/last) * flat * p.YScale
		}
	}
	return h, nil
}

// Step is the distance between grid points.
func (h *Heightfield) Step() float32 {
	return h.Size / float32(h.Resolution-1)
}

// At returns the height at grid coordinates, clamped to the grid.
func (h *Heightfield) At(ix, iz int) float32 {
	ix = clampInt(ix, 0, h.Resolution-1)
	iz = clampInt(iz, 0, h.Resolution-1)
	return h.Heights[iz*h.Resolution+ix]
}

// Point returns the world position of a grid point.
func (h *Heightfield) Point(ix, iz int) vec.Vec3 {
	half := h.Size / 2
	step := h.Step()
	return vec.Vec3{
		X: -half + float32(ix)*step,
		Y: h.At(ix, iz),
		Z: -half + float32(iz)*step,
	}
}

// Normal estimates the surface normal at a grid point from central differences.
func (h *Heightfield) Normal(ix, iz int) vec.Vec3 {
	step := h.Step()
	dx := h.At(ix+1, iz) - h.At(ix-1, iz)
	dz := h.At(ix, iz+1) - h.At(ix, iz-1)
	return vec.Vec3{X: -dx, Y: 2 * step, Z: -dz}.Normalize()
}

// MaxHeight is the largest height in the field.
func (h *Heightfield) MaxHeight() float32 {
	var m float32
	for _, v := range h.Heights {
		if v > m {
			m = v
		}
	}
	return m
}

// Triangles tessellates the field, two upward-facing triangles per cell.
func (h *Heightfield) Triangles() []mesh.Triangle {
	n := h.Resolution - 1
	out := make([]mesh.Triangle, 0, n*n*2)
	for iz := 0; iz < n; iz++ {
		for ix := 0; ix < n; ix++ {
			p00 := h.Point(ix, iz)
			p10 := h.Point(ix+1, iz)
			p01 := h.Point(ix, iz+1)
			p11 := h.Point(ix+1, iz+1)
			out = append(out, tri(p00, p01, p10), tri(p10, p01, p11))
		}
	}
	return out
}

// Image encodes the heights as grayscale, 255 being MaxHeight.
func (h *Heightfield) Image() *image.Gray {
	img := image.NewGray(image.Rect(0, 0, h.Resolution, h.Resolution))
	top := h.MaxHeight()
	for iz := 0; iz < h.Resolution; iz++ {
		for ix := 0; ix < h.Resolution; ix++ {
			var v uint8
			if top > 0 {
				v = uint8(vec.Clamp(h.At(ix, iz)/top, 0, 1) * 255)
			}
			img.SetGray(ix, iz, color.Gray{Y: v})
		}
	}
	return img
}

func tri(a, b, c vec.Vec3) mesh.Triangle {
	return mesh.Triangle{A: a, B: b, C: c, Normal: b.Sub(a).Cross(c.Sub(a)).Normalize()}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// lattice is value noise over an n×n grid of random values.
type lattice struct {
	n      int
	values []float32
}

func newLattice(rng *utils.PRNGService, n int) lattice {
	l := lattice{n: n, values: make([]float32, (n+1)*(n+1))}
	for i := range l.values {
		l.values[i] = rng.Float32()
	}
	return l
}

func (l lattice) at(u, w float32) float32 {
	x := vec.Clamp(u, 0, 1) * float32(l.n)
	z := vec.Clamp(w, 0, 1) * float32(l.n)
	x0, z0 := int(x), int(z)
	if x0 >= l.n {
		x0 = l.n - 1
	}
	if z0 >= l.n {
		z0 = l.n - 1
	}
	fx := vec.Smoothstep(0, 1, x-float32(x0))
	fz := vec.Smoothstep(0, 1, z-float32(z0))

	v := func(i, j int) float32 { return l.values[j*(l.n+1)+i] }
	top := utils.Lerp(v(x0, z0), v(x0+1, z0), fx)
	bottom := utils.Lerp(v(x0, z0+1), v(x0+1, z0+1), fx)
	return utils.Lerp(top, bottom, fz)
}
