// internal/entity/ecs.go
package entity

import (
	"go-vr-scene/internal/component"
	"go-vr-scene/internal/types"
)

// ECS is the engine-side world built from a scene description.
type ECS struct {
	NextID       types.EntityID
	Primitives   map[types.EntityID]string
	Parents      map[types.EntityID]types.EntityID
	Transforms   map[types.EntityID]*component.Transform
	Meshes       map[types.EntityID]*component.Mesh
	Lights       map[types.EntityID]*component.Light
	Cameras      map[types.EntityID]*component.Camera
	Cursors      map[types.EntityID]*component.Cursor
	Environment  *component.Environment
	ActiveCamera types.EntityID
}

func NewECS() *ECS {
	ecs := &ECS{}
	ecs.Reset()
	return ecs
}

// Reset drops every entity. IDs restart from 1, so rebuilding the same
// description yields the same IDs.
func (ecs *ECS) Reset() {
	ecs.NextID = 1
	ecs.Primitives = make(map[types.EntityID]string)
	ecs.Parents = make(map[types.EntityID]types.EntityID)
	ecs.Transforms = make(map[types.EntityID]*component.Transform)
	ecs.Meshes = make(map[types.EntityID]*component.Mesh)
	ecs.Lights = make(map[types.EntityID]*component.Light)
	ecs.Cameras = make(map[types.EntityID]*component.Camera)
	ecs.Cursors = make(map[types.EntityID]*component.Cursor)
	ecs.Environment = nil
	ecs.ActiveCamera = 0
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Camera returns the active camera and its world position.
func (ecs *ECS) Camera() (*component.Camera, *component.Transform, bool) {
	cam, ok := ecs.Cameras[ecs.ActiveCamera]
	if !ok {
		return nil, nil, false
	}
	return cam, ecs.Transforms[ecs.ActiveCamera], true
}

// Cursor returns the cursor attached to the active camera, if any.
func (ecs *ECS) Cursor() (types.EntityID, *component.Cursor, bool) {
	for id, c := range ecs.Cursors {
		if ecs.Parents[id] == ecs.ActiveCamera {
			return id, c, true
		}
	}
	return 0, nil, false
}

// Count returns the number of live entities.
func (ecs *ECS) Count() int {
	return len(ecs.Primitives)
}
