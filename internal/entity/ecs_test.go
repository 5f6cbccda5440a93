package entity

import (
	"bytes"
	"image/color"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-vr-scene/internal/component"
	"go-vr-scene/internal/config"
	"go-vr-scene/internal/defs"
	"go-vr-scene/internal/scene"
	"go-vr-scene/internal/utils"
	"go-vr-scene/internal/view"
	"go-vr-scene/pkg/mesh"
	"go-vr-scene/pkg/render"
)

func newLoader(t *testing.T, logs *bytes.Buffer) *Loader {
	t.Helper()
	lib, err := defs.BuiltinPresets()
	require.NoError(t, err)
	logger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return NewLoader(lib, logger, LoaderOptions{Fov: config.CameraFov, FuseTimeout: config.FuseTimeout})
}

func TestLoadDefaultScene(t *testing.T) {
	ecs := NewECS()
	l := newLoader(t, &bytes.Buffer{})

	changed, err := l.Load(ecs, view.New(utils.NewPRNGService(1)).Render())
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 5, ecs.Count())

	cam, tr, ok := ecs.Camera()
	require.True(t, ok)
	assert.True(t, cam.LookControls)
	assert.Equal(t, float32(config.CameraFov), cam.Fov)
	assert.Equal(t, float32(config.CameraHeight), tr.Position.Y)

	curID, cur, ok := ecs.Cursor()
	require.True(t, ok)
	assert.Equal(t, ecs.ActiveCamera, ecs.Parents[curID])
	assert.False(t, cur.Fuse)
	assert.Equal(t, float32(0.75), cur.Opacity)
	assert.Equal(t, float32(0.007), cur.RadiusOuter)

	require.Len(t, ecs.Meshes, 1)
	for _, m := range ecs.Meshes {
		assert.Equal(t, "octahedron", m.Shape)
		assert.Len(t, m.Triangles, 72)
		assert.Equal(t, color.RGBA{0xFA, 0xFA, 0xF1, 0xFF}, m.Color)
		for _, tri := range m.Triangles {
			assert.InDelta(t, 2.0, tri.A.Sub(m.Center).Len(), 1e-4)
		}
	}

	require.Len(t, ecs.Lights, 1)
	for _, light := range ecs.Lights {
		assert.Equal(t, component.LightDirectional, light.Type)
		assert.InDelta(t, -1.0, light.Direction.X, 1e-6, "light at +x shines towards the origin")
		assert.Equal(t, float32(1), light.Intensity)
	}

	env := ecs.Environment
	require.NotNil(t, env)
	assert.Equal(t, "yavapai", env.Preset)
	assert.Equal(t, color.RGBA{0x55, 0x3e, 0x35, 0xFF}, env.GroundColor)
	assert.Equal(t, "none", env.Grid)
	assert.InDelta(t, 80.4, env.FogFar, 1e-3)
	require.NotNil(t, env.Terrain)
	assert.LessOrEqual(t, env.Terrain.MaxHeight(), float32(6.31))
}

func TestLoadSkipsUnchangedDescription(t *testing.T) {
	ecs := NewECS()
	l := newLoader(t, &bytes.Buffer{})
	m := view.New(utils.NewPRNGService(1))

	changed, err := l.Load(ecs, m.Render())
	require.NoError(t, err)
	require.True(t, changed)
	terrainBefore := ecs.Environment.Terrain

	cam, _, _ := ecs.Camera()
	cam.Yaw, cam.Pitch = 0.5, 0.2

	// color changes do not touch the rendered tree
	m.ChangeColor()
	changed, err = l.Load(ecs, m.Render())
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Equal(t, float32(0.5), cam.Yaw)

	// a structural change rebuilds but keeps the view direction and the terrain
	desc := m.Render().(*scene.Scene)
	desc.Nodes[1].(*scene.Shape).Position.X = 3
	changed, err = l.Load(ecs, desc)
	require.NoError(t, err)
	assert.True(t, changed)
	cam, _, _ = ecs.Camera()
	assert.Equal(t, float32(0.5), cam.Yaw)
	assert.Equal(t, float32(0.2), cam.Pitch)
	assert.Same(t, terrainBefore, ecs.Environment.Terrain)
}

func TestLoadErrors(t *testing.T) {
	base := func() *scene.Scene { return view.New(utils.NewPRNGService(1)).Render().(*scene.Scene) }

	badColor := base()
	badColor.Nodes[1].(*scene.Shape).Color = "#nothex"
	_, err := newLoader(t, &bytes.Buffer{}).Load(NewECS(), badColor)
	assert.ErrorIs(t, err, render.ErrBadColor)

	badShape := base()
	badShape.Nodes[1].(*scene.Shape).Shape = "dodecahedron"
	ecs := NewECS()
	_, err = newLoader(t, &bytes.Buffer{}).Load(ecs, badShape)
	assert.ErrorIs(t, err, mesh.ErrUnknownPolyhedron)
	assert.Zero(t, ecs.Count(), "failed load leaves an empty world")
}

func TestLoadRejectsBadTree(t *testing.T) {
	base := func() *scene.Scene { return view.New(utils.NewPRNGService(1)).Render().(*scene.Scene) }

	twoCams := base()
	twoCams.Nodes = append(twoCams.Nodes, &scene.Camera{})
	_, err := newLoader(t, &bytes.Buffer{}).Load(NewECS(), twoCams)
	assert.ErrorIs(t, err, ErrBadTree)

	// курсор вне камеры
	loose := base()
	cam := loose.Nodes[0].(*scene.Camera)
	loose.Nodes = append(loose.Nodes, cam.Nodes...)
	cam.Nodes = nil
	ecs := NewECS()
	l := newLoader(t, &bytes.Buffer{})
	_, err = l.Load(ecs, loose)
	assert.ErrorIs(t, err, ErrBadTree)
	assert.Zero(t, ecs.Count())

	changed, err := l.Load(ecs, base())
	require.NoError(t, err)
	assert.True(t, changed, "a rejected tree is not remembered")
}

func TestUnknownPresetFallsBack(t *testing.T) {
	var logs bytes.Buffer
	desc := view.New(utils.NewPRNGService(1)).Render().(*scene.Scene)
	desc.Environment.Preset = "atlantis"

	ecs := NewECS()
	_, err := newLoader(t, &logs).Load(ecs, desc)
	require.NoError(t, err)
	assert.Equal(t, defs.DefaultPresetID, ecs.Environment.Preset)
	assert.Contains(t, logs.String(), "unknown environment preset")
}

func TestResetRestartsIDs(t *testing.T) {
	ecs := NewECS()
	assert.EqualValues(t, 1, ecs.NewEntity())
	assert.EqualValues(t, 2, ecs.NewEntity())
	ecs.Reset()
	assert.EqualValues(t, 1, ecs.NewEntity())
	_, _, ok := ecs.Camera()
	assert.False(t, ok)
}
