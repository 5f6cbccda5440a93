// internal/component/cursor.go
package component

import (
	"image/color"

	"go-vr-scene/internal/types"
)

// Cursor — курсор взгляда, прикреплённый к камере.
type Cursor struct {
	Fuse        bool
	FuseTimeout float64
	Color       color.RGBA
	Opacity     float32
	RadiusInner float32
	RadiusOuter float32
	Distance    float32 // расстояние от камеры до кольца

	Hovered   types.EntityID
	HoverTime float64
	Fired     bool    // fuse уже сработал для текущей цели
	HitPoint  float32 // расстояние до точки пересечения, 0 если промах
}

// FuseProgress is how far the fuse timer has run, in [0, 1].
func (c *Cursor) FuseProgress() float32 {
	if !c.Fuse || c.Fired || c.Hovered == 0 || c.FuseTimeout <= 0 {
		return 0
	}
	p := c.HoverTime / c.FuseTimeout
	if p > 1 {
		p = 1
	}
	return float32(p)
}
