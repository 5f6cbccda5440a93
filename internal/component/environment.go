// internal/component/environment.go
package component

import (
	"image/color"

	"go-vr-scene/pkg/terrain"
	"go-vr-scene/pkg/utils"
)

// Environment — окружение сцены после применения пресета.
type Environment struct {
	Preset        string
	SkyColor      color.RGBA
	HorizonColor  color.RGBA
	GroundColor   color.RGBA
	GroundColor2  color.RGBA
	GridColor     color.RGBA
	GroundTexture string
	Grid          string
	Fog           float32
	FogFar        float32 // 0 — тумана нет
	SunDirection  utils.Vec3
	SunIntensity  float32
	Ambient       float32
	Terrain       *terrain.Heightfield
}
