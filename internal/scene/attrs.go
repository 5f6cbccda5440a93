// internal/scene/attrs.go
package scene

import "go-vr-scene/pkg/utils"

// Vec3 is a coordinate record as the engine expects it: {x, y, z}.
type Vec3 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
	Z float64 `yaml:"z" json:"z"`
}

// F32 converts to the engine-side vector.
func (v Vec3) F32() utils.Vec3 {
	return utils.V3(v.X, v.Y, v.Z)
}

// Attr is one named attribute value. Values are bool, int, float64, string,
// Vec3 or a nested Attributes record.
type Attr struct {
	Name  string
	Value any
}

// Attributes is an ordered attribute record. Order is kept so that
// exported markup is stable.
type Attributes []Attr

// Get returns the value for name.
func (a Attributes) Get(name string) (any, bool) {
	for _, attr := range a {
		if attr.Name == name {
			return attr.Value, true
		}
	}
	return nil, false
}

// Map converts the record (recursively) into plain maps for YAML/JSON.
func (a Attributes) Map() map[string]any {
	m := make(map[string]any, len(a))
	for _, attr := range a {
		if nested, ok := attr.Value.(Attributes); ok {
			m[attr.Name] = nested.Map()
			continue
		}
		m[attr.Name] = attr.Value
	}
	return m
}

// Environment is the environment component configuration. The scene core
// forwards it untouched; the engine resolves it against a preset.
type Environment struct {
	Preset        string  `yaml:"preset" json:"preset"`
	Seed          int     `yaml:"seed" json:"seed"`
	LightPosition Vec3    `yaml:"lightPosition" json:"lightPosition"`
	Fog           float64 `yaml:"fog" json:"fog"`
	Ground        string  `yaml:"ground" json:"ground"`
	GroundYScale  float64 `yaml:"groundYScale" json:"groundYScale"`
	GroundTexture string  `yaml:"groundTexture" json:"groundTexture"`
	GroundColor   string  `yaml:"groundColor" json:"groundColor"`
	Grid          string  `yaml:"grid" json:"grid"`
}

// Attributes lists the fields in their canonical order.
func (e Environment) Attributes() Attributes {
	return Attributes{
		{"preset", e.Preset},
		{"seed", e.Seed},
		{"lightPosition", e.LightPosition},
		{"fog", e.Fog},
		{"ground", e.Ground},
		{"groundYScale", e.GroundYScale},
		{"groundTexture", e.GroundTexture},
		{"groundColor", e.GroundColor},
		{"grid", e.Grid},
	}
}

// CursorOptions configures the gaze cursor behaviour.
type CursorOptions struct {
	Fuse bool `yaml:"fuse" json:"fuse"`
}

// Material of a flat-shaded entity.
type Material struct {
	Color   string  `yaml:"color" json:"color"`
	Shader  string  `yaml:"shader" json:"shader"`
	Opacity float64 `yaml:"opacity" json:"opacity"`
}

// RingGeometry is the cursor ring.
type RingGeometry struct {
	RadiusInner float64 `yaml:"radiusInner" json:"radiusInner"`
	RadiusOuter float64 `yaml:"radiusOuter" json:"radiusOuter"`
}
