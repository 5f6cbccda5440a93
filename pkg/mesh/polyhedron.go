// pkg/mesh/polyhedron.go
package mesh

import (
	"errors"
	"fmt"

	"go-vr-scene/pkg/utils"
)

// ErrUnknownPolyhedron is returned by ByName for shapes without a base solid.
var ErrUnknownPolyhedron = errors.New("mesh: unknown polyhedron")

// Triangle is a flat-shaded face. Vertices are counter-clockwise seen from outside.
type Triangle struct {
	A, B, C utils.Vec3
	Normal  utils.Vec3
}

// Centroid of the face.
func (t Triangle) Centroid() utils.Vec3 {
	return t.A.Add(t.B).Add(t.C).Scale(1.0 / 3.0)
}

// Translate returns the face moved by d.
func (t Triangle) Translate(d utils.Vec3) Triangle {
	return Triangle{A: t.A.Add(d), B: t.B.Add(d), C: t.C.Add(d), Normal: t.Normal}
}

type solid struct {
	vertices []utils.Vec3
	faces    [][3]int
}

var octahedron = solid{
	vertices: []utils.Vec3{
		{X: 1}, {X: -1}, {Y: 1}, {Y: -1}, {Z: 1}, {Z: -1},
	},
	faces: [][3]int{
		{0, 2, 4}, {0, 4, 3}, {0, 3, 5}, {0, 5, 2},
		{1, 2, 5}, {1, 5, 3}, {1, 3, 4}, {1, 4, 2},
	},
}

var tetrahedron = solid{
	vertices: []utils.Vec3{
		{X: 1, Y: 1, Z: 1}, {X: -1, Y: -1, Z: 1}, {X: -1, Y: 1, Z: -1}, {X: 1, Y: -1, Z: -1},
	},
	faces: [][3]int{
		{2, 1, 0}, {0, 3, 2}, {1, 3, 0}, {2, 3, 1},
	},
}

// Octahedron builds a geodesic octahedron: every face is split into
// (detail+1)^2 triangles and all vertices are pushed onto the sphere of radius.
func Octahedron(radius float32, detail int) []Triangle {
	return polyhedron(octahedron, radius, detail)
}

// Tetrahedron is the same construction over a tetrahedron.
func Tetrahedron(radius float32, detail int) []Triangle {
	return polyhedron(tetrahedron, radius, detail)
}

// ByName maps an A-Frame primitive shape name ("octahedron", "tetrahedron") to its mesh.
func ByName(name string, radius float32, detail int) ([]Triangle, error) {
	switch name {
	case "octahedron":
		return Octahedron(radius, detail), nil
	case "tetrahedron":
		return Tetrahedron(radius, detail), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPolyhedron, name)
}

func polyhedron(s solid, radius float32, detail int) []Triangle {
	if detail < 0 {
		detail = 0
	}
	cols := detail + 1
	out := make([]Triangle, 0, len(s.faces)*cols*cols)

	for _, f := range s.faces {
		a, b, c := s.vertices[f[0]], s.vertices[f[1]], s.vertices[f[2]]

		// v[i][j]: row i goes from the a-b edge towards c, row i has cols-i+1 points
		v := make([][]utils.Vec3, cols+1)
		for i := 0; i <= cols; i++ {
			t := float32(i) / float32(cols)
			aj := a.Lerp(c, t)
			bj := b.Lerp(c, t)
			rows := cols - i
			v[i] = make([]utils.Vec3, rows+1)
			for j := 0; j <= rows; j++ {
				if j == 0 && i == cols {
					v[i][j] = aj
				} else {
					v[i][j] = aj.Lerp(bj, float32(j)/float32(rows))
				}
			}
		}

		for i := 0; i < cols; i++ {
			for j := 0; j < 2*(cols-i)-1; j++ {
				k := j / 2
				if j%2 == 0 {
					out = append(out, face(v[i][k+1], v[i+1][k], v[i][k], radius))
				} else {
					out = append(out, face(v[i][k+1], v[i+1][k+1], v[i+1][k], radius))
				}
			}
		}
	}
	return out
}

func face(a, b, c utils.Vec3, radius float32) Triangle {
	a = a.Normalize().Scale(radius)
	b = b.Normalize().Scale(radius)
	c = c.Normalize().Scale(radius)

	n := b.Sub(a).Cross(c.Sub(a)).Normalize()
	centroid := a.Add(b).Add(c)
	if n.Dot(centroid) < 0 {
		// flip to keep the winding counter-clockwise from outside
		b, c = c, b
		n = n.Scale(-1)
	}
	return Triangle{A: a, B: b, C: c, Normal: n}
}
