// internal/component/camera.go
package component

import (
	"math"

	mathutil "go-vr-scene/internal/utils"
	"go-vr-scene/pkg/utils"
)

// Camera — компонент камеры. Yaw turns around +Y, pitch around the camera's
// right axis; zero yaw and pitch look down -Z.
type Camera struct {
	Yaw, Pitch   float32
	Fov          float32 // вертикальный угол обзора, градусы
	Near, Far    float32
	LookControls bool
}

// Forward is the unit view direction.
func (c *Camera) Forward() utils.Vec3 {
	sy, cy := math.Sincos(float64(c.Yaw))
	sp, cp := math.Sincos(float64(c.Pitch))
	return utils.V3(-sy*cp, sp, -cy*cp)
}

// Right is the unit vector to the right of the view, always horizontal.
func (c *Camera) Right() utils.Vec3 {
	sy, cy := math.Sincos(float64(c.Yaw))
	return utils.V3(cy, 0, -sy)
}

// Up completes the camera basis.
func (c *Camera) Up() utils.Vec3 {
	return c.Right().Cross(c.Forward())
}

// FocalLength returns the projection scale in pixels for a viewport height.
func (c *Camera) FocalLength(viewportHeight int) float32 {
	half := float64(mathutil.DegToRad(c.Fov)) / 2
	return float32(float64(viewportHeight) / 2 / math.Tan(half))
}
