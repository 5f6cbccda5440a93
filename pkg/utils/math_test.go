package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVec3(t *testing.T) {
	a := Vec3{1, 0, 0}
	b := Vec3{0, 1, 0}

	assert.Equal(t, Vec3{0, 0, 1}, a.Cross(b))
	assert.Equal(t, float32(0), a.Dot(b))
	assert.Equal(t, Vec3{1, 1, 0}, a.Add(b))
	assert.Equal(t, Vec3{0.5, 0.5, 0}, a.Lerp(b, 0.5))
	assert.InDelta(t, 1.0, Vec3{3, 4, 0}.Normalize().Len(), 1e-6)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assert.InDelta(t, 5.0, Distance(Vec3{}, Vec3{3, 4, 0}), 1e-6)
}

func TestClampAndSmoothstep(t *testing.T) {
	assert.Equal(t, float32(0), Clamp(-1, 0, 1))
	assert.Equal(t, float32(1), Clamp(2, 0, 1))
	assert.Equal(t, float32(0.5), Clamp(0.5, 0, 1))

	assert.Equal(t, float32(0), Smoothstep(1, 2, 0))
	assert.Equal(t, float32(1), Smoothstep(1, 2, 3))
	assert.InDelta(t, 0.5, Smoothstep(0, 1, 0.5), 1e-6)
	assert.Equal(t, float32(1), Smoothstep(1, 1, 1))
}
