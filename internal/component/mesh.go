// internal/component/mesh.go
package component

import (
	"image/color"

	"go-vr-scene/pkg/mesh"
	"go-vr-scene/pkg/utils"
)

// Mesh — компонент геометрии. Triangles are in world space.
type Mesh struct {
	Shape     string
	Detail    int
	Radius    float32
	Center    utils.Vec3
	Triangles []mesh.Triangle
	Color     color.RGBA
}
