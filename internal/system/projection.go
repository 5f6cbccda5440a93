// internal/system/projection.go
package system

import (
	"math"

	"go-vr-scene/internal/component"
	"go-vr-scene/internal/config"
	"go-vr-scene/pkg/utils"
)

// View is the camera basis used for software projection.
type View struct {
	Eye                   utils.Vec3
	Forward, Right, Up    utils.Vec3
	Near                  float32
	Focal                 float32
	HalfWidth, HalfHeight float32
}

// NewView builds the projection for the active camera on a w×h viewport.
func NewView(cam *component.Camera, eye utils.Vec3, w, h int) View {
	near := cam.Near
	if near <= 0 {
		near = config.NearPlane
	}
	return View{
		Eye:        eye,
		Forward:    cam.Forward(),
		Right:      cam.Right(),
		Up:         cam.Up(),
		Near:       near,
		Focal:      cam.FocalLength(h),
		HalfWidth:  float32(w) / 2,
		HalfHeight: float32(h) / 2,
	}
}

// Project maps a world point to screen pixels. ok is false behind the near plane.
func (v View) Project(p utils.Vec3) (x, y, depth float32, ok bool) {
	rel := p.Sub(v.Eye)
	depth = rel.Dot(v.Forward)
	if depth < v.Near {
		return 0, 0, depth, false
	}
	x = v.HalfWidth + rel.Dot(v.Right)*v.Focal/depth
	y = v.HalfHeight - rel.Dot(v.Up)*v.Focal/depth
	return x, y, depth, true
}

// RingPixels converts the cursor ring radii to screen pixels. The ring never
// shrinks below one pixel so it stays visible.
func RingPixels(cam *component.Camera, cursor *component.Cursor, viewportHeight int) (inner, outer float32) {
	dist := cursor.Distance
	if dist <= 0 {
		dist = config.CursorDistance
	}
	f := cam.FocalLength(viewportHeight) / dist
	inner = max(cursor.RadiusInner*f, 1)
	outer = max(cursor.RadiusOuter*f, inner+1)
	return inner, outer
}

// HorizonY is the screen row of the horizon; looking up pushes it down.
func HorizonY(cam *component.Camera, viewportHeight int) float32 {
	pitch := float64(utils.Clamp(cam.Pitch, -1.55, 1.55))
	return float32(viewportHeight)/2 + float32(math.Tan(pitch))*cam.FocalLength(viewportHeight)
}
