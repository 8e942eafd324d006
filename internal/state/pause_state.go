// internal/state/pause_state.go
package state

import (
	"balloon-popper/internal/config"
	"balloon-popper/pkg/render"
)

// Убеждаемся, что PauseState соответствует интерфейсу State
var _ State = (*PauseState)(nil)

// PauseState замораживает игру: симуляция не шагает, пока пауза активна.
type PauseState struct {
	stateMachine  *StateMachine
	previousState State
}

func NewPauseState(sm *StateMachine, prevState State) *PauseState {
	return &PauseState{
		stateMachine:  sm,
		previousState: prevState,
	}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(in *Input) {
	if in.Pressed(KeyP) || in.Pressed(KeyEscape) {
		s.stateMachine.SetState(s.previousState)
	}
}

func (s *PauseState) Draw(frame *render.Frame) {
	if s.previousState != nil {
		s.previousState.Draw(frame)
	}
	frame.Rect(0, 0, 0, 0, frame.Width, frame.Height, 0, config.OverlayColor)
	frame.Text(frame.Width/2, frame.Height/2, "PAUSED", render.AlignCenter, config.TextLightColor)
	frame.Text(frame.Width/2, frame.Height/2+20, "press P to resume", render.AlignCenter, config.TextLightColor)
}

func (s *PauseState) Exit() {}
