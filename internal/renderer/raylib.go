// internal/renderer/raylib.go
package renderer

import (
	"log/slog"

	"go-vr-scene/internal/assets"
	"go-vr-scene/internal/component"
	"go-vr-scene/internal/config"
	"go-vr-scene/internal/entity"
	"go-vr-scene/internal/system"
	"go-vr-scene/pkg/render"
	"go-vr-scene/pkg/utils"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const terrainModelID = "terrain"

// RenderSystemRL рисует мир через raylib.
type RenderSystemRL struct {
	ecs          *entity.ECS
	modelManager *assets.ModelManager
	logger       *slog.Logger
	camera       rl.Camera3D
	// окружение, для которого собрана модель земли
	terrainEnv *component.Environment
	hasTerrain bool
}

func NewRenderSystemRL(ecs *entity.ECS, modelManager *assets.ModelManager, logger *slog.Logger) *RenderSystemRL {
	if logger == nil {
		logger = slog.Default()
	}
	rs := &RenderSystemRL{
		ecs:          ecs,
		modelManager: modelManager,
		logger:       logger,
	}
	rs.camera.Up = rl.NewVector3(0, 1, 0)
	rs.camera.Projection = rl.CameraPerspective
	rs.camera.Fovy = config.CameraFov
	return rs
}

// Camera returns the raylib camera synced on the last Update.
func (s *RenderSystemRL) Camera() rl.Camera3D {
	return s.camera
}

// Update синхронизирует камеру raylib с активной камерой сцены и
// пересобирает землю, если окружение сменилось.
func (s *RenderSystemRL) Update() {
	if cam, tr, ok := s.ecs.Camera(); ok {
		pos := toRL(tr.Position)
		s.camera.Position = pos
		s.camera.Target = rl.Vector3Add(pos, toRL(cam.Forward()))
		s.camera.Fovy = cam.Fov
	}

	env := s.ecs.Environment
	if env == s.terrainEnv {
		return
	}
	s.terrainEnv = env
	s.hasTerrain = false
	s.modelManager.Unload(terrainModelID)
	if env == nil || env.Terrain == nil {
		return
	}
	if _, err := s.modelManager.LoadHeightmap(terrainModelID, env.Terrain, system.GroundTexture(s.ecs, env.Terrain)); err != nil {
		s.logger.Error("terrain model", "error", err)
		return
	}
	s.hasTerrain = true
}

// Draw рисует кадр. Вызывается между BeginDrawing и EndDrawing.
func (s *RenderSystemRL) Draw() {
	w, h := int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight())
	s.drawSky(w, h)

	rl.BeginMode3D(s.camera)
	if s.hasTerrain {
		if model, ok := s.modelManager.GetModel(terrainModelID); ok {
			half := s.terrainEnv.Terrain.Size / 2
			tint := system.Fog(s.terrainEnv, rl.White, s.terrainEnv.FogFar*0.25)
			rl.DrawModel(model, rl.NewVector3(-half, 0, -half), 1, tint)
		}
	}
	s.drawMeshes()
	rl.EndMode3D()

	s.drawCursor(w, h)
}

func (s *RenderSystemRL) drawSky(w, h int32) {
	env := s.ecs.Environment
	if env == nil {
		rl.ClearBackground(rl.Black)
		return
	}
	rl.ClearBackground(env.HorizonColor)

	hy := int32(float32(h) / 2)
	if cam, _, ok := s.ecs.Camera(); ok {
		hy = int32(utils.Clamp(system.HorizonY(cam, int(h)), 0, float32(h)))
	}
	if hy > 0 {
		rl.DrawRectangleGradientV(0, 0, w, hy, env.SkyColor, env.HorizonColor)
	}
}

func (s *RenderSystemRL) drawMeshes() {
	eye := s.camera.Position
	for _, m := range s.ecs.Meshes {
		for _, tri := range m.Triangles {
			c := system.Shade(s.ecs, tri.Normal, m.Color)
			c = system.Fog(s.ecs.Environment, c, rl.Vector3Distance(eye, toRL(tri.Centroid())))
			rl.DrawTriangle3D(toRL(tri.A), toRL(tri.B), toRL(tri.C), c)
		}
	}
}

func (s *RenderSystemRL) drawCursor(w, h int32) {
	cam, _, ok := s.ecs.Camera()
	if !ok {
		return
	}
	_, cursor, ok := s.ecs.Cursor()
	if !ok {
		return
	}
	inner, outer := system.RingPixels(cam, cursor, int(h))
	center := rl.NewVector2(float32(w)/2, float32(h)/2)
	clr := render.WithAlpha(cursor.Color, cursor.Opacity)
	rl.DrawRing(center, inner, outer, 0, 360, 32, clr)

	if p := cursor.FuseProgress(); p > 0 {
		rl.DrawRing(center, outer+1, outer+3, -90, -90+360*p, 32, clr)
	}
}

func toRL(v utils.Vec3) rl.Vector3 {
	return rl.NewVector3(v.X, v.Y, v.Z)
}
