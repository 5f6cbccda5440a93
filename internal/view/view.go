// internal/view/view.go
package view

import "go-vr-scene/internal/scene"

// Source is a uniform random source; Intn returns a value in [0, n).
type Source interface {
	Intn(n int) int
}

// ViewState is everything the view owns.
type ViewState struct {
	Color          string     `json:"color" yaml:"color"`
	SpherePosition scene.Vec3 `json:"spherePosition" yaml:"spherePosition"`
}

// InitialState is the state a freshly mounted view starts with.
func InitialState() ViewState {
	return ViewState{
		Color:          "red",
		SpherePosition: scene.Vec3{X: 0.0, Y: 4, Z: -10.0},
	}
}

// Main is the scene view. It is not safe for concurrent use: the host
// calls it from its single event loop.
type Main struct {
	state  ViewState
	src    Source
	redraw func()
}

// New mounts a view with the initial state.
func New(src Source) *Main {
	return &Main{
		state: InitialState(),
		src:   src,
	}
}

// OnRedraw registers the hook called once per state change.
func (m *Main) OnRedraw(fn func()) {
	m.redraw = fn
}

// State returns a snapshot of the current state.
func (m *Main) State() ViewState {
	return m.state
}

// ChangeColor picks a new color uniformly from ColorPalette.
func (m *Main) ChangeColor() {
	m.state.Color = ColorPalette[m.src.Intn(len(ColorPalette))]
	if m.redraw != nil {
		m.redraw()
	}
}

// Render derives the scene description from the current state.
func (m *Main) Render() scene.Node {
	return &scene.Scene{
		Environment: Environment(),
		Nodes: []scene.Node{
			&scene.Camera{
				LookControls: true,
				Nodes: []scene.Node{
					&scene.Cursor{
						Cursor:   scene.CursorOptions{Fuse: false},
						Material: scene.Material{Color: "white", Shader: "flat", Opacity: 0.75},
						Geometry: scene.RingGeometry{RadiusInner: 0.005, RadiusOuter: 0.007},
					},
				},
			},
			&scene.Shape{
				Shape:    "octahedron",
				Detail:   2,
				Radius:   2,
				Position: m.state.SpherePosition,
				Color:    "#FAFAF1",
			},
			&scene.Light{
				Type:      "directional",
				Color:     "#FFF",
				Intensity: 1,
				Position:  scene.Vec3{X: 2.5, Y: 0.0, Z: 0.0},
			},
		},
	}
}

// Environment is the fixed environment block handed to the scene node.
func Environment() scene.Environment {
	return scene.Environment{
		Preset:        "yavapai",
		Seed:          2,
		LightPosition: scene.Vec3{X: 0.0, Y: 0.03, Z: -0.5},
		Fog:           0.8,
		Ground:        "hills",
		GroundYScale:  6.31,
		GroundTexture: "none",
		GroundColor:   "#553e35",
		Grid:          "none",
	}
}
