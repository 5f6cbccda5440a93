// internal/state/pause_state.go
package state

import (
	"go-vr-scene/internal/event"
	"go-vr-scene/internal/input"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает сцену. Only the pause key and the resume button
// are handled; the world is not stepped.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
	dispatcher    *event.Dispatcher
}

func NewPauseState(sm *StateMachine, prevState State, dispatcher *event.Dispatcher) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
		dispatcher:    dispatcher,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64, in input.Frame) {
	if !in.Pause && !in.ResumeClick {
		return
	}
	s.dispatcher.Dispatch(event.Event{Type: event.Resumed})
	s.stateMachine.SetState(s.previousState)
}

func (s *PauseState) Exit() {}

func (s *PauseState) Name() string { return PauseStateName }
