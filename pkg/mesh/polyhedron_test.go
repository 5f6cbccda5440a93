package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-vr-scene/pkg/utils"
)

func TestOctahedronTriangleCount(t *testing.T) {
	for detail, want := range map[int]int{0: 8, 1: 32, 2: 72, 3: 128} {
		assert.Len(t, Octahedron(1, detail), want, "detail %d", detail)
	}
	assert.Len(t, Octahedron(1, -4), 8, "negative detail is treated as 0")
}

func TestOctahedronOnSphere(t *testing.T) {
	const radius = 2
	for _, tri := range Octahedron(radius, 2) {
		for _, v := range []utils.Vec3{tri.A, tri.B, tri.C} {
			assert.InDelta(t, radius, v.Len(), 1e-4)
		}
		assert.InDelta(t, 1.0, tri.Normal.Len(), 1e-4)
		assert.Greater(t, tri.Normal.Dot(tri.Centroid()), float32(0), "normal points outwards")

		// winding agrees with the stored normal
		n := tri.B.Sub(tri.A).Cross(tri.C.Sub(tri.A))
		assert.Greater(t, n.Dot(tri.Normal), float32(0))
	}
}

func TestByName(t *testing.T) {
	tris, err := ByName("tetrahedron", 1, 1)
	require.NoError(t, err)
	assert.Len(t, tris, 16)

	_, err = ByName("dodecahedron", 1, 0)
	assert.ErrorIs(t, err, ErrUnknownPolyhedron)
}

func TestTranslate(t *testing.T) {
	tri := Octahedron(1, 0)[0].Translate(utils.Vec3{Y: 4, Z: -10})
	assert.InDelta(t, 1.0, utils.Distance(tri.A, utils.Vec3{Y: 4, Z: -10}), 1e-5)
}
