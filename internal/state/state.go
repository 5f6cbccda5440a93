// internal/state/state.go
package state

import "go-vr-scene/internal/input"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(deltaTime float64, in input.Frame)
	Exit()
	Name() string
}

// StateMachine — структура для управления состояниями
type StateMachine struct {
	current State
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64, in input.Frame) {
	if sm.current != nil {
		sm.current.Update(deltaTime, in)
	}
}

// Name is the current state's name, or "" when there is none.
func (sm *StateMachine) Name() string {
	if sm.current == nil {
		return ""
	}
	return sm.current.Name()
}
