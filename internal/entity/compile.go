// internal/entity/compile.go
package entity

import (
	"errors"
	"fmt"
	"image/color"
	"log/slog"

	"go-vr-scene/internal/component"
	"go-vr-scene/internal/config"
	"go-vr-scene/internal/defs"
	"go-vr-scene/internal/scene"
	"go-vr-scene/internal/types"
	"go-vr-scene/pkg/mesh"
	"go-vr-scene/pkg/render"
	"go-vr-scene/pkg/terrain"
	"go-vr-scene/pkg/utils"
)

// ErrBadTree marks descriptions the world cannot be built from.
var ErrBadTree = errors.New("entity: bad scene tree")

// LoaderOptions are engine settings that are not part of the description.
type LoaderOptions struct {
	Fov         float32
	FuseTimeout float64
}

// Loader turns scene descriptions into ECS entities. It remembers the last
// description and skips the rebuild when a new one is structurally equal.
type Loader struct {
	presets defs.PresetLibrary
	logger  *slog.Logger
	opts    LoaderOptions

	last        scene.Node
	terrainKey  terrain.Params
	terrainData *terrain.Heightfield
}

func NewLoader(presets defs.PresetLibrary, logger *slog.Logger, opts LoaderOptions) *Loader {
	return &Loader{presets: presets, logger: logger, opts: opts}
}

// SetOptions changes options for the next rebuild.
func (l *Loader) SetOptions(opts LoaderOptions) {
	l.opts = opts
}

// Load rebuilds ecs from desc. It returns false, without touching ecs, when
// desc equals the previously loaded description.
func (l *Loader) Load(ecs *ECS, desc scene.Node) (bool, error) {
	if l.last != nil && scene.Equal(l.last, desc) {
		return false, nil
	}
	if err := validate(desc); err != nil {
		return false, err
	}

	// состояние взгляда и курсора переживает пересборку
	var prevCam *component.Camera
	if cam, _, ok := ecs.Camera(); ok {
		c := *cam
		prevCam = &c
	}
	var prevCursor *component.Cursor
	if _, cur, ok := ecs.Cursor(); ok {
		c := *cur
		prevCursor = &c
	}

	ecs.Reset()
	ids := make(map[scene.Node]types.EntityID)
	var err error
	scene.Walk(desc, func(n, parent scene.Node) bool {
		if err != nil {
			return false
		}
		id := ecs.NewEntity()
		ids[n] = id
		ecs.Primitives[id] = n.Primitive()
		if parent != nil {
			ecs.Parents[id] = ids[parent]
		}
		err = l.addNode(ecs, id, n)
		return err == nil
	})
	if err != nil {
		ecs.Reset()
		l.last = nil
		return false, err
	}

	if cam, _, ok := ecs.Camera(); ok && prevCam != nil {
		cam.Yaw, cam.Pitch = prevCam.Yaw, prevCam.Pitch
	}
	if _, cur, ok := ecs.Cursor(); ok && prevCursor != nil {
		cur.Hovered, cur.HoverTime, cur.Fired = prevCursor.Hovered, prevCursor.HoverTime, prevCursor.Fired
	}

	l.last = desc
	l.logger.Debug("world rebuilt", "entities", ecs.Count())
	return true, nil
}

// validate checks the shape rules the systems rely on: at most one camera,
// and cursors only as children of a camera.
func validate(desc scene.Node) error {
	if n := len(scene.FindAll(desc, scene.KindCamera)); n > 1 {
		return fmt.Errorf("%w: %d cameras", ErrBadTree, n)
	}
	for _, cur := range scene.FindAll(desc, scene.KindCursor) {
		if p := scene.Parent(desc, cur); p == nil || p.Kind() != scene.KindCamera {
			return fmt.Errorf("%w: cursor outside a camera", ErrBadTree)
		}
	}
	return nil
}

func (l *Loader) addNode(ecs *ECS, id types.EntityID, n scene.Node) error {
	switch n := n.(type) {
	case *scene.Scene:
		env, err := l.environment(n.Environment)
		if err != nil {
			return err
		}
		ecs.Environment = env
	case *scene.Camera:
		ecs.Transforms[id] = &component.Transform{Position: utils.Vec3{Y: config.CameraHeight}}
		ecs.Cameras[id] = &component.Camera{
			Fov:          l.opts.Fov,
			Near:         config.NearPlane,
			Far:          config.FarPlane,
			LookControls: n.LookControls,
		}
		if ecs.ActiveCamera == 0 {
			ecs.ActiveCamera = id
		}
	case *scene.Cursor:
		c, err := render.ParseColor(n.Material.Color)
		if err != nil {
			return fmt.Errorf("entity: %s material: %w", n.Primitive(), err)
		}
		ecs.Cursors[id] = &component.Cursor{
			Fuse:        n.Cursor.Fuse,
			FuseTimeout: l.opts.FuseTimeout,
			Color:       c,
			Opacity:     float32(n.Material.Opacity),
			RadiusInner: float32(n.Geometry.RadiusInner),
			RadiusOuter: float32(n.Geometry.RadiusOuter),
			Distance:    config.CursorDistance,
		}
	case *scene.Shape:
		c, err := render.ParseColor(n.Color)
		if err != nil {
			return fmt.Errorf("entity: %s color: %w", n.Primitive(), err)
		}
		tris, err := mesh.ByName(n.Shape, float32(n.Radius), n.Detail)
		if err != nil {
			return fmt.Errorf("entity: %w", err)
		}
		center := n.Position.F32()
		for i := range tris {
			tris[i] = tris[i].Translate(center)
		}
		ecs.Transforms[id] = &component.Transform{Position: center}
		ecs.Meshes[id] = &component.Mesh{
			Shape:     n.Shape,
			Detail:    n.Detail,
			Radius:    float32(n.Radius),
			Center:    center,
			Triangles: tris,
			Color:     c,
		}
	case *scene.Light:
		c, err := render.ParseColor(n.Color)
		if err != nil {
			return fmt.Errorf("entity: %s color: %w", n.Primitive(), err)
		}
		if n.Type != component.LightDirectional && n.Type != component.LightAmbient {
			l.logger.Warn("light type not supported, treated as ambient", "type", n.Type)
		}
		dir := n.Position.F32().Scale(-1).Normalize()
		if dir == (utils.Vec3{}) {
			dir = utils.Vec3{Y: -1}
		}
		ecs.Transforms[id] = &component.Transform{Position: n.Position.F32()}
		ecs.Lights[id] = &component.Light{
			Type:      n.Type,
			Color:     c,
			Intensity: float32(n.Intensity),
			Direction: dir,
		}
	}
	return nil
}

func (l *Loader) environment(env scene.Environment) (*component.Environment, error) {
	preset, ok := l.presets.Lookup(env.Preset)
	if !ok {
		l.logger.Warn("unknown environment preset, using default", "preset", env.Preset)
	}
	p := preset.Apply(env)

	out := &component.Environment{
		Preset:        p.ID,
		GroundTexture: p.GroundTexture,
		Grid:          p.Grid,
		Fog:           float32(p.Fog),
		SunDirection:  p.LightPosition.F32().Normalize(),
		SunIntensity:  float32(p.SunIntensity),
		Ambient:       float32(p.Ambient),
	}
	if p.Fog > 0 {
		out.FogFar = float32((1.001 - p.Fog) * config.StageSize * 2)
	}

	colors := []struct {
		dst *color.RGBA
		src string
	}{
		{&out.SkyColor, p.SkyColor},
		{&out.HorizonColor, p.HorizonColor},
		{&out.GroundColor, p.GroundColor},
		{&out.GroundColor2, fallback(p.GroundColor2, p.GroundColor)},
		{&out.GridColor, fallback(p.GridColor, "#ccc")},
	}
	for _, c := range colors {
		parsed, err := render.ParseColor(c.src)
		if err != nil {
			return nil, fmt.Errorf("entity: environment %s: %w", p.ID, err)
		}
		*c.dst = parsed
	}

	params := terrain.Params{
		Seed:   p.Seed,
		Ground: p.Ground,
		YScale: float32(p.GroundYScale),
		Size:   config.StageSize,
	}
	if l.terrainData == nil || params != l.terrainKey {
		field, err := terrain.Generate(params)
		if err != nil {
			return nil, fmt.Errorf("entity: environment %s: %w", p.ID, err)
		}
		l.terrainKey, l.terrainData = params, field
	}
	out.Terrain = l.terrainData
	return out, nil
}

func fallback(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
