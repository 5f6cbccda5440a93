package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-vr-scene/internal/scene"
	"go-vr-scene/internal/utils"
	"go-vr-scene/internal/view"
)

// fixedSource always returns the same index.
type fixedSource int

func (f fixedSource) Intn(int) int { return int(f) }

func TestInitialState(t *testing.T) {
	m := view.New(utils.NewPRNGService(1))
	st := m.State()
	assert.Equal(t, "red", st.Color)
	assert.Equal(t, scene.Vec3{X: 0, Y: 4, Z: -10}, st.SpherePosition)
}

func TestChangeColorStaysInPalette(t *testing.T) {
	m := view.New(utils.NewPRNGService(20240601))
	seen := map[string]int{}
	for i := 0; i < 1000; i++ {
		m.ChangeColor()
		c := m.State().Color
		require.Contains(t, view.ColorPalette[:], c)
		seen[c]++
	}
	for _, c := range view.ColorPalette {
		assert.Positive(t, seen[c], "color %q never picked", c)
	}
	assert.Equal(t, scene.Vec3{X: 0, Y: 4, Z: -10}, m.State().SpherePosition, "position is untouched")
}

func TestChangeColorUsesSourceIndex(t *testing.T) {
	for i, want := range view.ColorPalette {
		m := view.New(fixedSource(i))
		m.ChangeColor()
		assert.Equal(t, want, m.State().Color)
	}
}

func TestChangeColorRedrawsOnce(t *testing.T) {
	m := view.New(fixedSource(3))
	redraws := 0
	m.OnRedraw(func() { redraws++ })

	m.ChangeColor()
	assert.Equal(t, 1, redraws)
	m.ChangeColor()
	assert.Equal(t, 2, redraws)

	// Render never schedules a redraw.
	m.Render()
	assert.Equal(t, 2, redraws)
}

func TestChangeColorWithoutHook(t *testing.T) {
	m := view.New(fixedSource(0))
	assert.NotPanics(t, m.ChangeColor)
}

func TestRenderIsIdempotent(t *testing.T) {
	m := view.New(utils.NewPRNGService(5))
	assert.True(t, scene.Equal(m.Render(), m.Render()))

	m.ChangeColor()
	assert.True(t, scene.Equal(m.Render(), m.Render()))
}

func TestRenderDefaultTree(t *testing.T) {
	root := view.New(fixedSource(0)).Render()
	assert.Equal(t, scene.KindScene, root.Kind())
	assert.Equal(t, 5, scene.Count(root))

	cameras := scene.FindAll(root, scene.KindCamera)
	require.Len(t, cameras, 1)
	assert.True(t, cameras[0].(*scene.Camera).LookControls)

	cursors := scene.FindAll(root, scene.KindCursor)
	require.Len(t, cursors, 1)
	assert.Same(t, cameras[0], scene.Parent(root, cursors[0]), "cursor is a child of the camera")
	cursor := cursors[0].(*scene.Cursor)
	assert.False(t, cursor.Cursor.Fuse)
	assert.Equal(t, scene.Material{Color: "white", Shader: "flat", Opacity: 0.75}, cursor.Material)
	assert.Equal(t, scene.RingGeometry{RadiusInner: 0.005, RadiusOuter: 0.007}, cursor.Geometry)

	shapes := scene.FindAll(root, scene.KindShape)
	require.Len(t, shapes, 1)
	assert.Equal(t, &scene.Shape{
		Shape:    "octahedron",
		Detail:   2,
		Radius:   2,
		Position: scene.Vec3{X: 0, Y: 4, Z: -10},
		Color:    "#FAFAF1",
	}, shapes[0])
	assert.Equal(t, "a-octahedron", shapes[0].Primitive())

	lights := scene.FindAll(root, scene.KindLight)
	require.Len(t, lights, 1)
	light := lights[0].(*scene.Light)
	assert.Equal(t, "directional", light.Type)
	assert.Equal(t, 1.0, light.Intensity)
	assert.Equal(t, scene.Vec3{X: 2.5, Y: 0, Z: 0}, light.Position)
	assert.Equal(t, "#FFF", light.Color)
}

func TestEnvironmentIsFixed(t *testing.T) {
	want := scene.Environment{
		Preset:        "yavapai",
		Seed:          2,
		LightPosition: scene.Vec3{X: 0, Y: 0.03, Z: -0.5},
		Fog:           0.8,
		Ground:        "hills",
		GroundYScale:  6.31,
		GroundTexture: "none",
		GroundColor:   "#553e35",
		Grid:          "none",
	}

	m := view.New(utils.NewPRNGService(9))
	for i := 0; i < 20; i++ {
		root := m.Render().(*scene.Scene)
		assert.Equal(t, want, root.Environment)
		m.ChangeColor()
	}
}

func TestPalettes(t *testing.T) {
	assert.Equal(t, [5]string{"red", "orange", "yellow", "green", "blue"}, view.ColorPalette)
	assert.Equal(t, [3]string{"#D92B6A", "#9564F2", "#FFCF59"}, view.LegacyColors)
	for _, c := range view.LegacyColors {
		assert.NotContains(t, view.ColorPalette[:], c, "legacy colors are not selectable")
	}
}
