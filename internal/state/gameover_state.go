// internal/state/gameover_state.go
package state

import (
	"balloon-popper/internal/ui"
	"balloon-popper/pkg/render"
	"log/slog"
)

// GameOverState — итог игры и ввод имени для таблицы рекордов.
type GameOverState struct {
	sm     *StateMachine
	env    *Env
	last   State
	screen *ui.GameOverScreen
}

// NewGameOverState принимает последнее игровое состояние, чтобы рисовать
// застывшее поле под экраном итогов.
func NewGameOverState(sm *StateMachine, env *Env, last State) *GameOverState {
	return &GameOverState{sm: sm, env: env, last: last, screen: ui.NewGameOverScreen()}
}

func (s *GameOverState) Enter() {
	sess := s.env.Game.Session()
	s.screen.Reset(sess.Score, sess.Pops)
}

func (s *GameOverState) Update(in *Input) {
	s.screen.Layout(in.Width, in.Height)
	s.screen.Hover(in.PointerX, in.PointerY)

	for _, r := range in.Runes {
		s.screen.AppendRune(r)
	}
	if in.Pressed(KeyBackspace) {
		s.screen.Backspace()
	}
	if in.Pressed(KeyEnter) {
		s.save()
	}
	if !in.Clicked {
		return
	}
	switch s.screen.Click(in.PointerX, in.PointerY).Kind {
	case ui.ActionSaveScore:
		s.save()
	case ui.ActionRestart:
		s.sm.SetState(NewMenuState(s.sm, s.env))
	}
}

// save записывает результат один раз. Ошибка хранилища только логируется.
func (s *GameOverState) save() {
	if s.screen.Saved {
		return
	}
	name := string(s.screen.Name)
	if err := s.env.Scores.Save(name, s.screen.Score); err != nil {
		slog.Error("failed to save score", "error", err)
		return
	}
	slog.Info("score saved", "name", name, "score", s.screen.Score)
	s.screen.MarkSaved()
}

func (s *GameOverState) Draw(frame *render.Frame) {
	if s.last != nil {
		s.last.Draw(frame)
	} else {
		s.env.Game.Draw(frame)
	}
	s.screen.Draw(frame)
}

func (s *GameOverState) Exit() {}
