// internal/defs/presets.go
package defs

import "go-vr-scene/internal/scene"

// DefaultPresetID is used when a scene names a preset the library does not know.
const DefaultPresetID = "default"

// PresetDefinition holds the static look of one environment preset.
type PresetDefinition struct {
	ID            string     `yaml:"id"`
	SkyColor      string     `yaml:"skyColor"`
	HorizonColor  string     `yaml:"horizonColor"`
	GroundColor   string     `yaml:"groundColor"`
	GroundColor2  string     `yaml:"groundColor2"`
	Ground        string     `yaml:"ground"`
	GroundYScale  float64    `yaml:"groundYScale"`
	GroundTexture string     `yaml:"groundTexture"`
	Grid          string     `yaml:"grid"`
	GridColor     string     `yaml:"gridColor"`
	Fog           float64    `yaml:"fog"`
	Seed          int        `yaml:"seed"`
	LightPosition scene.Vec3 `yaml:"lightPosition"`
	SunIntensity  float64    `yaml:"sunIntensity"`
	Ambient       float64    `yaml:"ambient"`
}

// Apply overlays the scene's environment attributes on the preset.
// Zero values in env mean "not set" and keep the preset value.
func (p PresetDefinition) Apply(env scene.Environment) PresetDefinition {
	out := p
	if env.Seed != 0 {
		out.Seed = env.Seed
	}
	if env.LightPosition != (scene.Vec3{}) {
		out.LightPosition = env.LightPosition
	}
	if env.Fog != 0 {
		out.Fog = env.Fog
	}
	if env.Ground != "" {
		out.Ground = env.Ground
	}
	if env.GroundYScale != 0 {
		out.GroundYScale = env.GroundYScale
	}
	if env.GroundTexture != "" {
		out.GroundTexture = env.GroundTexture
	}
	if env.GroundColor != "" {
		out.GroundColor = env.GroundColor
	}
	if env.Grid != "" {
		out.Grid = env.Grid
	}
	return out
}
