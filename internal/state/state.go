// internal/state/state.go
package state

import "balloon-popper/pkg/render"

// State — интерфейс для всех состояний
type State interface {
	Enter()
	Update(in *Input)
	Draw(frame *render.Frame)
	Exit()
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

// Current возвращает активное состояние.
func (sm *StateMachine) Current() State {
	return sm.current
}

// Update обновляет текущее состояние
func (sm *StateMachine) Update(in *Input) {
	if sm.current != nil {
		sm.current.Update(in)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(frame *render.Frame) {
	if sm.current != nil {
		sm.current.Draw(frame)
	}
}
