// internal/component/transform.go
package component

import "go-vr-scene/pkg/utils"

// Transform — компонент позиции в мировых координатах
type Transform struct {
	Position utils.Vec3
}
