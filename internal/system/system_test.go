package system

import (
	"image/color"
	"io"
	"log/slog"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-vr-scene/internal/component"
	"go-vr-scene/internal/config"
	"go-vr-scene/internal/defs"
	"go-vr-scene/internal/entity"
	"go-vr-scene/internal/event"
	"go-vr-scene/internal/input"
	"go-vr-scene/internal/types"
	"go-vr-scene/internal/utils"
	"go-vr-scene/internal/view"
	"go-vr-scene/pkg/mesh"
	vec "go-vr-scene/pkg/utils"
)

// pitchAtSphere aims the default camera at the octahedron centre.
var pitchAtSphere = float32(math.Atan2(4-config.CameraHeight, 10))

// aim points the camera at the octahedron, slightly off the x=0 seam so the
// ray does not graze a shared edge.
func aim(cam *component.Camera) {
	cam.Yaw, cam.Pitch = 0.02, pitchAtSphere
}

func lookAway(cam *component.Camera) {
	cam.Yaw, cam.Pitch = 0, 0
}

func loadWorld(t *testing.T) *entity.ECS {
	t.Helper()
	lib, err := defs.BuiltinPresets()
	require.NoError(t, err)
	l := entity.NewLoader(lib, slog.New(slog.NewTextHandler(io.Discard, nil)),
		entity.LoaderOptions{Fov: config.CameraFov, FuseTimeout: config.FuseTimeout})
	ecs := entity.NewECS()
	_, err = l.Load(ecs, view.New(utils.NewPRNGService(1)).Render())
	require.NoError(t, err)
	return ecs
}

func meshID(t *testing.T, ecs *entity.ECS) types.EntityID {
	t.Helper()
	require.Len(t, ecs.Meshes, 1)
	for id := range ecs.Meshes {
		return id
	}
	return 0
}

type recorder struct {
	events []event.Event
}

func (r *recorder) subscribe(d *event.Dispatcher) {
	for _, et := range []event.EventType{event.CursorEnter, event.CursorLeave, event.CursorClick} {
		d.Subscribe(et, event.ListenerFunc(func(e event.Event) { r.events = append(r.events, e) }))
	}
}

func (r *recorder) types() []event.EventType {
	out := make([]event.EventType, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.Type)
	}
	return out
}

func TestRayTriangle(t *testing.T) {
	tri := mesh.Triangle{
		A: vec.V3(-1, -1, -5), B: vec.V3(1, -1, -5), C: vec.V3(0, 1, -5),
		Normal: vec.V3(0, 0, 1),
	}
	forward := vec.V3(0, 0, -1)

	d, ok := RayTriangle(vec.Vec3{}, forward, tri)
	require.True(t, ok)
	assert.InDelta(t, 5.0, d, 1e-5)

	_, ok = RayTriangle(vec.V3(3, 0, 0), forward, tri)
	assert.False(t, ok, "outside the triangle")

	_, ok = RayTriangle(vec.Vec3{}, vec.V3(1, 0, 0), tri)
	assert.False(t, ok, "parallel ray")

	_, ok = RayTriangle(vec.Vec3{}, vec.V3(0, 0, 1), tri)
	assert.False(t, ok, "triangle behind the origin")
}

func TestPickDefaultScene(t *testing.T) {
	ecs := loadWorld(t)
	cam, tr, ok := ecs.Camera()
	require.True(t, ok)

	id, _ := Pick(ecs, tr.Position, cam.Forward())
	assert.Zero(t, id, "straight ahead passes under the octahedron")

	aim(cam)
	id, dist := Pick(ecs, tr.Position, cam.Forward())
	assert.Equal(t, meshID(t, ecs), id)
	assert.InDelta(t, 8.2, dist, 0.3)
}

func TestLookSystem(t *testing.T) {
	ecs := loadWorld(t)
	cam, _, _ := ecs.Camera()
	look := NewLookSystem(ecs, 0.01)

	look.Update(input.Frame{MouseDX: 10, MouseDY: 10})
	assert.Zero(t, cam.Yaw, "no drag, no turn")

	look.Update(input.Frame{Look: true, MouseDX: 10, MouseDY: -5})
	assert.InDelta(t, -0.1, cam.Yaw, 1e-6)
	assert.InDelta(t, 0.05, cam.Pitch, 1e-6)

	look.Update(input.Frame{Look: true, MouseDY: -10000})
	assert.InDelta(t, math.Pi/2, cam.Pitch, 1e-6, "pitch is clamped")

	look.SetSensitivity(-1)
	look.Update(input.Frame{Look: true, MouseDX: 10})
	assert.InDelta(t, -0.2, cam.Yaw, 1e-6, "bad sensitivity is ignored")

	cam.LookControls = false
	look.Update(input.Frame{Look: true, MouseDX: 100})
	assert.InDelta(t, -0.2, cam.Yaw, 1e-6)
}

func TestCursorEvents(t *testing.T) {
	ecs := loadWorld(t)
	d := event.NewDispatcher()
	rec := &recorder{}
	rec.subscribe(d)
	cursorSys := NewCursorSystem(ecs, d)
	cam, _, _ := ecs.Camera()
	target := meshID(t, ecs)

	cursorSys.Update(0.016, input.Frame{Click: true})
	assert.Empty(t, rec.events, "clicking empty space emits nothing")

	aim(cam)
	cursorSys.Update(0.016, input.Frame{})
	cursorSys.Update(0.016, input.Frame{Click: true})
	lookAway(cam)
	cursorSys.Update(0.016, input.Frame{})

	assert.Equal(t, []event.EventType{event.CursorEnter, event.CursorClick, event.CursorLeave}, rec.types())
	for _, e := range rec.events {
		data := e.Data.(event.CursorData)
		assert.Equal(t, target, data.Target)
		assert.False(t, data.Fused)
	}

	_, cur, _ := ecs.Cursor()
	assert.Zero(t, cur.Hovered)
}

func TestCursorFuse(t *testing.T) {
	ecs := loadWorld(t)
	d := event.NewDispatcher()
	rec := &recorder{}
	rec.subscribe(d)
	cursorSys := NewCursorSystem(ecs, d)
	cam, _, _ := ecs.Camera()
	_, cur, _ := ecs.Cursor()
	cur.Fuse, cur.FuseTimeout = true, 1

	aim(cam)
	cursorSys.Update(0.6, input.Frame{})
	assert.InDelta(t, 0.6, cur.FuseProgress(), 1e-6)
	cursorSys.Update(0.6, input.Frame{})
	cursorSys.Update(0.6, input.Frame{})
	assert.Equal(t, []event.EventType{event.CursorEnter, event.CursorClick}, rec.types())
	assert.True(t, rec.events[1].Data.(event.CursorData).Fused)
	assert.Zero(t, cur.FuseProgress(), "fired fuse shows no progress")

	// уйти и вернуться: таймер заново
	lookAway(cam)
	cursorSys.Update(0.1, input.Frame{})
	aim(cam)
	cursorSys.Update(1.0, input.Frame{})
	assert.Equal(t, []event.EventType{
		event.CursorEnter, event.CursorClick, event.CursorLeave, event.CursorEnter, event.CursorClick,
	}, rec.types())
}

func TestShadeAndFog(t *testing.T) {
	ecs := loadWorld(t)
	base := color.RGBA{200, 200, 200, 255}

	// направленный свет стоит на +X
	lit := Shade(ecs, vec.V3(1, 0, 0), base)
	dark := Shade(ecs, vec.V3(-1, 0, 0), base)
	assert.Greater(t, lit.R, dark.R)
	assert.Positive(t, dark.R, "ambient keeps the back side visible")
	assert.Equal(t, uint8(255), lit.A)

	env := ecs.Environment
	assert.Equal(t, base, Fog(env, base, 0))
	far := Fog(env, base, env.FogFar*2)
	assert.Equal(t, env.HorizonColor.R, far.R)
	assert.Equal(t, base, Fog(&component.Environment{}, base, 1000), "no fog without FogFar")

	assert.Equal(t, env.HorizonColor, SkyColor(env, -0.5))
	assert.Equal(t, env.SkyColor, SkyColor(env, 1))
}

func TestGroundTexture(t *testing.T) {
	ecs := loadWorld(t)
	hf := ecs.Environment.Terrain
	img := GroundTexture(ecs, hf)
	assert.Equal(t, hf.Resolution, img.Bounds().Dx())
	assert.Equal(t, hf.Resolution, img.Bounds().Dy())
	assert.Equal(t, uint8(255), img.RGBAAt(hf.Resolution/2, hf.Resolution/2).A)
}

func TestViewProject(t *testing.T) {
	cam := &component.Camera{Fov: 90}
	v := NewView(cam, vec.V3(0, 1, 0), 200, 100)

	x, y, depth, ok := v.Project(vec.V3(0, 1, -10))
	require.True(t, ok)
	assert.InDelta(t, 100, x, 1e-3)
	assert.InDelta(t, 50, y, 1e-3)
	assert.InDelta(t, 10, depth, 1e-5)

	// при fov 90 точка на краю конуса попадает на верх экрана
	_, y, _, ok = v.Project(vec.V3(0, 11, -10))
	require.True(t, ok)
	assert.InDelta(t, 0, y, 1e-3)

	_, _, _, ok = v.Project(vec.V3(0, 1, 5))
	assert.False(t, ok, "behind the camera")
}

func TestRingPixels(t *testing.T) {
	cam := &component.Camera{Fov: 90}
	cur := &component.Cursor{RadiusInner: 0.005, RadiusOuter: 0.007, Distance: 1}
	inner, outer := RingPixels(cam, cur, 1000)
	assert.InDelta(t, 2.5, inner, 1e-3)
	assert.InDelta(t, 3.5, outer, 1e-3)

	inner, outer = RingPixels(cam, cur, 100)
	assert.Equal(t, float32(1), inner)
	assert.Equal(t, float32(2), outer)
}
