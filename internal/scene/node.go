// internal/scene/node.go
package scene

// Kind identifies the node variant.
type Kind int

const (
	KindScene Kind = iota
	KindCamera
	KindCursor
	KindShape
	KindLight
)

func (k Kind) String() string {
	switch k {
	case KindScene:
		return "scene"
	case KindCamera:
		return "camera"
	case KindCursor:
		return "cursor"
	case KindShape:
		return "shape"
	case KindLight:
		return "light"
	}
	return "unknown"
}

// Node is one element of a scene description. Nodes are plain values and
// are rebuilt on every render rather than mutated.
type Node interface {
	Kind() Kind
	// Primitive is the engine element name, e.g. "a-octahedron".
	Primitive() string
	Attributes() Attributes
	Children() []Node
}

// Scene is the root node.
type Scene struct {
	Environment Environment
	Nodes       []Node
}

func (s *Scene) Kind() Kind        { return KindScene }
func (s *Scene) Primitive() string { return "a-scene" }
func (s *Scene) Children() []Node  { return s.Nodes }

func (s *Scene) Attributes() Attributes {
	return Attributes{{"environment", s.Environment.Attributes()}}
}

// Camera is the viewer. Its children move with it.
type Camera struct {
	LookControls bool
	Nodes        []Node
}

func (c *Camera) Kind() Kind        { return KindCamera }
func (c *Camera) Primitive() string { return "a-camera" }
func (c *Camera) Children() []Node  { return c.Nodes }

func (c *Camera) Attributes() Attributes {
	return Attributes{{"look-controls", c.LookControls}}
}

// Cursor is the gaze cursor attached to a camera.
type Cursor struct {
	Cursor   CursorOptions
	Material Material
	Geometry RingGeometry
}

func (c *Cursor) Kind() Kind        { return KindCursor }
func (c *Cursor) Primitive() string { return "a-cursor" }
func (c *Cursor) Children() []Node  { return nil }

func (c *Cursor) Attributes() Attributes {
	return Attributes{
		{"cursor", Attributes{{"fuse", c.Cursor.Fuse}}},
		{"material", Attributes{
			{"color", c.Material.Color},
			{"shader", c.Material.Shader},
			{"opacity", c.Material.Opacity},
		}},
		{"geometry", Attributes{
			{"radiusInner", c.Geometry.RadiusInner},
			{"radiusOuter", c.Geometry.RadiusOuter},
		}},
	}
}

// Shape is a polyhedron primitive ("octahedron", "tetrahedron").
type Shape struct {
	Shape    string
	Detail   int
	Radius   float64
	Position Vec3
	Color    string
}

func (s *Shape) Kind() Kind        { return KindShape }
func (s *Shape) Primitive() string { return "a-" + s.Shape }
func (s *Shape) Children() []Node  { return nil }

func (s *Shape) Attributes() Attributes {
	return Attributes{
		{"detail", s.Detail},
		{"radius", s.Radius},
		{"position", s.Position},
		{"color", s.Color},
	}
}

// Light is a light source. Only "directional" and "ambient" are understood by the engine.
type Light struct {
	Type      string
	Color     string
	Intensity float64
	Position  Vec3
}

func (l *Light) Kind() Kind        { return KindLight }
func (l *Light) Primitive() string { return "a-light" }
func (l *Light) Children() []Node  { return nil }

func (l *Light) Attributes() Attributes {
	return Attributes{
		{"type", l.Type},
		{"color", l.Color},
		{"intensity", l.Intensity},
		{"position", l.Position},
	}
}
