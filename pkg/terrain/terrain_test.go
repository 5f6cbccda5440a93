package terrain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	p := Params{Seed: 2, Ground: "hills", YScale: 6.31}
	a, err := Generate(p)
	require.NoError(t, err)
	b, err := Generate(p)
	require.NoError(t, err)
	assert.Equal(t, a.Heights, b.Heights)

	other, err := Generate(Params{Seed: 3, Ground: "hills", YScale: 6.31})
	require.NoError(t, err)
	assert.NotEqual(t, a.Heights, other.Heights)
}

func TestGenerateDefaultsAndBounds(t *testing.T) {
	h, err := Generate(Params{Seed: 2, Ground: "hills", YScale: 6.31})
	require.NoError(t, err)
	assert.Equal(t, DefaultResolution, h.Resolution)
	assert.Equal(t, float32(DefaultSize), h.Size)
	assert.Len(t, h.Heights, DefaultResolution*DefaultResolution)

	for _, v := range h.Heights {
		assert.GreaterOrEqual(t, v, float32(0))
		assert.LessOrEqual(t, v, float32(6.31))
	}
	assert.Positive(t, h.MaxHeight())

	// the play area around the origin stays flat
	mid := h.Resolution / 2
	assert.Zero(t, h.At(mid, mid))
}

func TestGroundTypes(t *testing.T) {
	for _, g := range []string{"flat", "none", "", "noise", "spikes", "canyon"} {
		_, err := Generate(Params{Seed: 1, Ground: g, YScale: 2, Resolution: 16})
		assert.NoError(t, err, g)
	}
	flat, err := Generate(Params{Ground: "flat", Resolution: 8})
	require.NoError(t, err)
	assert.Zero(t, flat.MaxHeight())

	_, err = Generate(Params{Ground: "lava"})
	assert.ErrorIs(t, err, ErrUnknownGround)
}

func TestGeometry(t *testing.T) {
	h, err := Generate(Params{Ground: "flat", Resolution: 5, Size: 8})
	require.NoError(t, err)

	assert.Equal(t, float32(2), h.Step())
	assert.Equal(t, float32(-4), h.Point(0, 0).X)
	assert.Equal(t, float32(4), h.Point(4, 4).Z)

	tris := h.Triangles()
	assert.Len(t, tris, 4*4*2)
	for _, tri := range tris {
		assert.InDelta(t, 1.0, tri.Normal.Y, 1e-6, "flat ground faces up")
	}
	assert.InDelta(t, 1.0, h.Normal(2, 2).Y, 1e-6)

	img := h.Image()
	assert.Equal(t, 5, img.Bounds().Dx())
}
