// internal/system/shading.go
package system

import (
	"image"
	"image/color"

	"go-vr-scene/internal/component"
	"go-vr-scene/internal/entity"
	"go-vr-scene/pkg/render"
	"go-vr-scene/pkg/terrain"
	"go-vr-scene/pkg/utils"
)

const defaultAmbient = 0.35

// Shade lights a flat face with every light in the world plus the
// environment sun. The result is not fogged.
func Shade(ecs *entity.ECS, normal utils.Vec3, base color.RGBA) color.RGBA {
	r, g, b := lightAt(ecs, normal)
	return color.RGBA{
		R: clamp255(float32(base.R) * r),
		G: clamp255(float32(base.G) * g),
		B: clamp255(float32(base.B) * b),
		A: base.A,
	}
}

// lightAt sums the light reaching a surface with the given normal, per channel.
func lightAt(ecs *entity.ECS, normal utils.Vec3) (r, g, b float32) {
	ambient := float32(defaultAmbient)
	env := ecs.Environment
	if env != nil && env.Ambient > 0 {
		ambient = env.Ambient
	}
	r, g, b = ambient, ambient, ambient

	for _, l := range ecs.Lights {
		var k float32
		switch l.Type {
		case component.LightDirectional:
			k = l.Intensity * max(0, normal.Dot(l.Direction.Scale(-1)))
		case component.LightAmbient:
			k = l.Intensity
		}
		r += k * float32(l.Color.R) / 255
		g += k * float32(l.Color.G) / 255
		b += k * float32(l.Color.B) / 255
	}

	if env != nil && env.SunIntensity > 0 {
		k := env.SunIntensity * max(0, normal.Dot(env.SunDirection))
		r, g, b = r+k, g+k, b+k
	}
	return r, g, b
}

// Fog blends c towards the horizon color with linear fog from the eye to FogFar.
func Fog(env *component.Environment, c color.RGBA, distance float32) color.RGBA {
	if env == nil || env.FogFar <= 0 {
		return c
	}
	t := utils.Clamp(distance/env.FogFar, 0, 1)
	out := render.LerpColor(c, env.HorizonColor, t)
	out.A = c.A
	return out
}

// SkyColor returns the sky seen along a direction with vertical component dirY.
func SkyColor(env *component.Environment, dirY float32) color.RGBA {
	if env == nil {
		return color.RGBA{A: 255}
	}
	if dirY <= 0 {
		return env.HorizonColor
	}
	return render.LerpColor(env.HorizonColor, env.SkyColor, utils.Smoothstep(0, 0.6, dirY))
}

// GroundTexture paints the ground: base pattern, grid overlay, then baked
// lighting from the heightfield normals and the sun. Each pixel maps to one
// grid point.
func GroundTexture(ecs *entity.ECS, hf *terrain.Heightfield) *image.RGBA {
	env := ecs.Environment
	n := hf.Resolution
	img := image.NewRGBA(image.Rect(0, 0, n, n))
	if env == nil {
		return img
	}
	for iz := 0; iz < n; iz++ {
		for ix := 0; ix < n; ix++ {
			c := Shade(ecs, hf.Normal(ix, iz), GroundColorAt(env, ix, iz))
			img.SetRGBA(ix, iz, c)
		}
	}
	return img
}

// GroundColorAt is the unlit ground color at a grid point: pattern plus grid.
func GroundColorAt(env *component.Environment, ix, iz int) color.RGBA {
	return gridOverlay(env, groundPattern(env, ix, iz), ix, iz)
}

func groundPattern(env *component.Environment, ix, iz int) color.RGBA {
	switch env.GroundTexture {
	case "checkerboard":
		if (ix/2+iz/2)%2 == 0 {
			return env.GroundColor2
		}
	case "squares":
		if ix%4 == 0 || iz%4 == 0 {
			return env.GroundColor2
		}
	case "walkernoise":
		// дешёвый детерминированный шум
		h := uint32(ix*73856093) ^ uint32(iz*19349663)
		return render.LerpColor(env.GroundColor, env.GroundColor2, float32(h%256)/255)
	}
	return env.GroundColor
}

func gridOverlay(env *component.Environment, c color.RGBA, ix, iz int) color.RGBA {
	var on bool
	switch env.Grid {
	case "1x1":
		on = ix%2 == 0 || iz%2 == 0
	case "2x2":
		on = ix%4 == 0 || iz%4 == 0
	case "xlines":
		on = iz%2 == 0
	case "ylines":
		on = ix%2 == 0
	case "crosses", "dots":
		on = ix%4 == 0 && iz%4 == 0
	}
	if !on {
		return c
	}
	return render.LerpColor(c, env.GridColor, 0.6)
}

func clamp255(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
