// internal/system/cursor.go
package system

import (
	"go-vr-scene/internal/entity"
	"go-vr-scene/internal/event"
	"go-vr-scene/internal/input"
	"go-vr-scene/internal/types"
)

// CursorSystem casts the gaze ray from the active camera and turns hover and
// clicks into cursor events.
type CursorSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
}

func NewCursorSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *CursorSystem {
	return &CursorSystem{ecs: ecs, dispatcher: dispatcher}
}

func (s *CursorSystem) Update(deltaTime float64, in input.Frame) {
	cam, tr, ok := s.ecs.Camera()
	if !ok {
		return
	}
	_, cursor, ok := s.ecs.Cursor()
	if !ok {
		return
	}

	target, dist := Pick(s.ecs, tr.Position, cam.Forward())
	cursor.HitPoint = dist

	if target != cursor.Hovered {
		if cursor.Hovered != 0 {
			s.dispatch(event.CursorLeave, cursor.Hovered, false)
		}
		cursor.Hovered = target
		cursor.HoverTime = 0
		cursor.Fired = false
		if target != 0 {
			s.dispatch(event.CursorEnter, target, false)
		}
	}
	if target == 0 {
		return
	}

	if in.Click {
		s.dispatch(event.CursorClick, target, false)
	}

	if !cursor.Fuse || cursor.Fired {
		return
	}
	cursor.HoverTime += deltaTime
	if cursor.FuseTimeout > 0 && cursor.HoverTime >= cursor.FuseTimeout {
		// срабатывает один раз, пока взгляд не уйдёт с цели
		cursor.Fired = true
		s.dispatch(event.CursorClick, target, true)
	}
}

func (s *CursorSystem) dispatch(t event.EventType, target types.EntityID, fused bool) {
	s.dispatcher.Dispatch(event.Event{
		Type: t,
		Data: event.CursorData{Target: target, Fused: fused},
	})
}
