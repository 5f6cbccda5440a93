// internal/system/utils.go
package system

import (
	"go-vr-scene/internal/entity"
	"go-vr-scene/internal/types"
	"go-vr-scene/pkg/mesh"
	"go-vr-scene/pkg/utils"
)

const rayEpsilon = 1e-6

// RayTriangle intersects a ray with a triangle (Möller–Trumbore) and returns
// the distance along dir. Back faces are hit too.
func RayTriangle(origin, dir utils.Vec3, tri mesh.Triangle) (float32, bool) {
	e1 := tri.B.Sub(tri.A)
	e2 := tri.C.Sub(tri.A)
	p := dir.Cross(e2)
	det := e1.Dot(p)
	if det > -rayEpsilon && det < rayEpsilon {
		return 0, false // луч параллелен плоскости
	}
	inv := 1 / det
	s := origin.Sub(tri.A)
	u := s.Dot(p) * inv
	if u < 0 || u > 1 {
		return 0, false
	}
	q := s.Cross(e1)
	v := dir.Dot(q) * inv
	if v < 0 || u+v > 1 {
		return 0, false
	}
	t := e2.Dot(q) * inv
	if t <= rayEpsilon {
		return 0, false
	}
	return t, true
}

// Pick returns the nearest mesh entity hit by the ray.
func Pick(ecs *entity.ECS, origin, dir utils.Vec3) (types.EntityID, float32) {
	var (
		best    types.EntityID
		bestDst float32
	)
	for id, m := range ecs.Meshes {
		// грубая проверка по ограничивающей сфере
		if !raySphere(origin, dir, m.Center, m.Radius) {
			continue
		}
		for _, tri := range m.Triangles {
			t, ok := RayTriangle(origin, dir, tri)
			if !ok {
				continue
			}
			if best == 0 || t < bestDst || (t == bestDst && id < best) {
				best, bestDst = id, t
			}
		}
	}
	return best, bestDst
}

func raySphere(origin, dir, center utils.Vec3, radius float32) bool {
	oc := center.Sub(origin)
	along := oc.Dot(dir)
	if along < -radius {
		return false
	}
	d2 := oc.Dot(oc) - along*along
	return d2 <= radius*radius*1.0001
}
