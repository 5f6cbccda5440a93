// internal/renderer/ebiten.go
package renderer

import (
	"image"
	"image/color"
	"sort"

	"go-vr-scene/internal/component"
	"go-vr-scene/internal/entity"
	"go-vr-scene/internal/system"
	"go-vr-scene/pkg/mesh"
	"go-vr-scene/pkg/render"
	"go-vr-scene/pkg/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// индексы в DrawTriangles 16-битные
const maxBatchVertices = 65535 / 3 * 3

type projected struct {
	xs, ys [3]float32
	depth  float32
	clr    color.RGBA
}

// RenderSystemEB рисует мир на ebiten: программная проекция и сортировка
// треугольников по глубине.
type RenderSystemEB struct {
	ecs   *entity.ECS
	white *ebiten.Image

	terrainEnv  *component.Environment
	terrainTris []mesh.Triangle
	terrainClrs []color.RGBA

	queue    []projected
	vertices []ebiten.Vertex
	indices  []uint16
}

func NewRenderSystemEB(ecs *entity.ECS) *RenderSystemEB {
	white := ebiten.NewImage(3, 3)
	white.Fill(color.White)
	return &RenderSystemEB{
		ecs:   ecs,
		white: white.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Update пересчитывает цвета земли при смене окружения.
func (s *RenderSystemEB) Update() {
	env := s.ecs.Environment
	if env == s.terrainEnv {
		return
	}
	s.terrainEnv = env
	s.terrainTris, s.terrainClrs = nil, nil
	if env == nil || env.Terrain == nil {
		return
	}
	s.terrainTris = env.Terrain.Triangles()
	s.terrainClrs = make([]color.RGBA, len(s.terrainTris))
	step := env.Terrain.Step()
	half := env.Terrain.Size / 2
	for i, tri := range s.terrainTris {
		c := tri.Centroid()
		ix, iz := int((c.X+half)/step), int((c.Z+half)/step)
		s.terrainClrs[i] = system.Shade(s.ecs, tri.Normal, system.GroundColorAt(env, ix, iz))
	}
}

func (s *RenderSystemEB) Draw(screen *ebiten.Image) {
	b := screen.Bounds()
	w, h := b.Dx(), b.Dy()

	cam, tr, ok := s.ecs.Camera()
	env := s.ecs.Environment
	if env != nil {
		screen.Fill(env.HorizonColor)
	} else {
		screen.Fill(color.Black)
	}
	if !ok {
		return
	}
	view := system.NewView(cam, tr.Position, w, h)
	s.drawSky(screen, cam, env, w, h)

	s.queue = s.queue[:0]
	for i, tri := range s.terrainTris {
		s.enqueue(view, env, tri, s.terrainClrs[i])
	}
	for _, m := range s.ecs.Meshes {
		for _, tri := range m.Triangles {
			s.enqueue(view, env, tri, system.Shade(s.ecs, tri.Normal, m.Color))
		}
	}
	// дальние первыми
	sort.Slice(s.queue, func(i, j int) bool { return s.queue[i].depth > s.queue[j].depth })
	s.flushQueue(screen)

	s.drawCursor(screen, cam, w, h)
}

func (s *RenderSystemEB) enqueue(view system.View, env *component.Environment, tri mesh.Triangle, c color.RGBA) {
	// отсечение задних граней
	if tri.Normal.Dot(tri.A.Sub(view.Eye)) >= 0 {
		return
	}
	var p projected
	var depth float32
	for i, v := range [3]utils.Vec3{tri.A, tri.B, tri.C} {
		x, y, d, ok := view.Project(v)
		if !ok {
			return
		}
		p.xs[i], p.ys[i] = x, y
		depth += d
	}
	p.depth = depth / 3
	p.clr = system.Fog(env, c, utils.Distance(view.Eye, tri.Centroid()))
	s.queue = append(s.queue, p)
}

func (s *RenderSystemEB) flushQueue(screen *ebiten.Image) {
	s.vertices, s.indices = s.vertices[:0], s.indices[:0]
	for _, p := range s.queue {
		if len(s.vertices)+3 > maxBatchVertices {
			s.drawBatch(screen)
		}
		base := uint16(len(s.vertices))
		for i := 0; i < 3; i++ {
			s.vertices = append(s.vertices, vertex(p.xs[i], p.ys[i], p.clr))
		}
		s.indices = append(s.indices, base, base+1, base+2)
	}
	s.drawBatch(screen)
}

func (s *RenderSystemEB) drawBatch(screen *ebiten.Image) {
	if len(s.indices) == 0 {
		return
	}
	screen.DrawTriangles(s.vertices, s.indices, s.white, &ebiten.DrawTrianglesOptions{})
	s.vertices, s.indices = s.vertices[:0], s.indices[:0]
}

func (s *RenderSystemEB) drawSky(screen *ebiten.Image, cam *component.Camera, env *component.Environment, w, h int) {
	if env == nil {
		return
	}
	hy := utils.Clamp(system.HorizonY(cam, h), 0, float32(h))
	if hy <= 0 {
		return
	}
	fw := float32(w)
	vs := []ebiten.Vertex{
		vertex(0, 0, env.SkyColor),
		vertex(fw, 0, env.SkyColor),
		vertex(0, hy, env.HorizonColor),
		vertex(fw, hy, env.HorizonColor),
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2, 1, 3, 2}, s.white, &ebiten.DrawTrianglesOptions{})
}

func (s *RenderSystemEB) drawCursor(screen *ebiten.Image, cam *component.Camera, w, h int) {
	_, cursor, ok := s.ecs.Cursor()
	if !ok {
		return
	}
	inner, outer := system.RingPixels(cam, cursor, h)
	cx, cy := float32(w)/2, float32(h)/2
	c := render.WithAlpha(cursor.Color, cursor.Opacity)
	// ebiten считает color.RGBA premultiplied
	clr := color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
	vector.StrokeCircle(screen, cx, cy, (inner+outer)/2, outer-inner, clr, true)
	if p := cursor.FuseProgress(); p > 0 {
		vector.DrawFilledCircle(screen, cx, cy, inner*p, clr, true)
	}
}

func vertex(x, y float32, c color.RGBA) ebiten.Vertex {
	return ebiten.Vertex{
		DstX: x, DstY: y,
		SrcX: 1, SrcY: 1,
		ColorR: float32(c.R) / 255,
		ColorG: float32(c.G) / 255,
		ColorB: float32(c.B) / 255,
		ColorA: float32(c.A) / 255,
	}
}
