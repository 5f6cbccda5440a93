// internal/component/light.go
package component

import (
	"image/color"

	"go-vr-scene/pkg/utils"
)

const (
	LightDirectional = "directional"
	LightAmbient     = "ambient"
)

// Light — источник света. For directional lights Direction is the unit
// vector the light travels along (from its position towards the origin).
type Light struct {
	Type      string
	Color     color.RGBA
	Intensity float32
	Direction utils.Vec3
}
