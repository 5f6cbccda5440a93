// internal/state/scene_state.go
package state

import (
	"go-vr-scene/internal/event"
	"go-vr-scene/internal/input"
)

const (
	SceneStateName = "scene"
	PauseStateName = "paused"
)

// Stepper advances the world by one frame.
type Stepper interface {
	Step(deltaTime float64, in input.Frame)
}

// Убеждаемся, что SceneState соответствует интерфейсу State
var _ State = (*SceneState)(nil)

// SceneState — обычный режим: взгляд, курсор, смена цвета.
type SceneState struct {
	sm         *StateMachine
	scene      Stepper
	dispatcher *event.Dispatcher
}

func NewSceneState(sm *StateMachine, scene Stepper, dispatcher *event.Dispatcher) *SceneState {
	return &SceneState{sm: sm, scene: scene, dispatcher: dispatcher}
}

func (s *SceneState) Enter() {}

func (s *SceneState) Update(deltaTime float64, in input.Frame) {
	if in.Pause {
		s.dispatcher.Dispatch(event.Event{Type: event.Paused})
		s.sm.SetState(NewPauseState(s.sm, s, s.dispatcher))
		return
	}
	if in.ChangeColor || in.SwatchClick {
		s.dispatcher.Dispatch(event.Event{Type: event.ColorChangeRequested})
	}
	s.scene.Step(deltaTime, in)
}

func (s *SceneState) Exit() {}

func (s *SceneState) Name() string { return SceneStateName }
