// internal/state/menu_state.go
package state

import (
	"balloon-popper/internal/app"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/ui"
	"balloon-popper/pkg/render"
)

// MenuState — стартовый экран.
type MenuState struct {
	sm   *StateMachine
	env  *Env
	menu *ui.Menu
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	return &MenuState{sm: sm, env: env, menu: ui.NewMenu(env.Library)}
}

func (m *MenuState) Enter() {
	m.menu.SetEntries(m.env.LoadScores())
}

func (m *MenuState) Update(in *Input) {
	m.menu.Layout(in.Width, in.Height)
	m.menu.Hover(in.PointerX, in.PointerY)

	if in.Pressed(KeySpace) || in.Pressed(KeyEnter) {
		m.start(in, m.env.Library.DifficultyOrder[0])
		return
	}
	if !in.Clicked {
		return
	}
	switch a := m.menu.Click(in.PointerX, in.PointerY); a.Kind {
	case ui.ActionStart:
		m.start(in, a.Difficulty)
	case ui.ActionToggleMode:
		m.menu.ToggleMode()
	}
}

func (m *MenuState) start(in *Input, difficulty defs.DifficultyID) {
	m.env.Game.Resize(in.Width, in.Height)
	m.env.Game.Start(app.Options{Difficulty: difficulty, Mode: m.menu.Mode})
	m.sm.SetState(NewGameState(m.sm, m.env))
}

func (m *MenuState) Draw(frame *render.Frame) {
	m.env.Game.Draw(frame)
	m.menu.Draw(frame)
}

func (m *MenuState) Exit() {}
