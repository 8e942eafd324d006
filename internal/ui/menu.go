// internal/ui/menu.go
package ui

import (
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/leaderboard"
	"balloon-popper/pkg/render"
	"fmt"
)

// Menu — стартовый экран: выбор сложности, режима и таблица рекордов.
type Menu struct {
	Mode       defs.Mode
	difficulty []defs.DifficultyID
	buttons    []*Button
	modeButton *Button
	entries    []leaderboard.Entry
	width      float64
	height     float64
}

func NewMenu(lib *defs.Library) *Menu {
	m := &Menu{Mode: defs.ModeWaves}
	for _, id := range lib.DifficultyOrder {
		m.difficulty = append(m.difficulty, id)
		m.buttons = append(m.buttons, NewButton(0, 0, 200, 36, lib.Difficulty(id).Name))
	}
	m.modeButton = NewButton(0, 0, 200, 30, "")
	m.Layout(config.ScreenWidth, config.ScreenHeight)
	return m
}

func (m *Menu) SetEntries(entries []leaderboard.Entry) {
	m.entries = entries
}

func (m *Menu) Entries() []leaderboard.Entry {
	return m.entries
}

func (m *Menu) Layout(width, height float64) {
	m.width, m.height = width, height
	x := width/2 - 100
	y := height/2 - 80
	for i, b := range m.buttons {
		b.X, b.Y = x, y+float64(i)*48
	}
	m.modeButton.X = x
	m.modeButton.Y = y + float64(len(m.buttons))*48 + 8
}

func (m *Menu) Click(x, y float64) Action {
	for i, b := range m.buttons {
		if b.Clicked(x, y) {
			return Action{Kind: ActionStart, Difficulty: m.difficulty[i], Mode: m.Mode}
		}
	}
	if m.modeButton.Clicked(x, y) {
		return Action{Kind: ActionToggleMode}
	}
	return Action{}
}

// ToggleMode переключает классический режим и волны.
func (m *Menu) ToggleMode() {
	if m.Mode == defs.ModeWaves {
		m.Mode = defs.ModeClassic
	} else {
		m.Mode = defs.ModeWaves
	}
}

func (m *Menu) Hover(x, y float64) {
	for _, b := range m.buttons {
		b.Hover = b.Contains(x, y)
	}
	m.modeButton.Hover = m.modeButton.Contains(x, y)
}

func (m *Menu) Draw(frame *render.Frame) {
	frame.Rect(0, 0, 0, 0, m.width, m.height, 0, config.OverlayColor)
	cx := m.width / 2
	frame.Text(cx, m.height/2-160, "POP THE BALLOONS", render.AlignCenter, config.TextLightColor)
	frame.Text(cx, m.height/2-130, fmt.Sprintf("High score: %d", leaderboard.HighScore(m.entries)), render.AlignCenter, config.BarColor)
	frame.Text(cx, m.height/2-100, "Choose difficulty", render.AlignCenter, config.TextLightColor)

	for _, b := range m.buttons {
		b.Draw(frame)
	}
	m.modeButton.Text = "Mode: " + string(m.Mode)
	m.modeButton.Draw(frame)

	if len(m.entries) == 0 {
		return
	}
	x := cx + 160
	y := m.height/2 - 80
	frame.Text(x, y, "TOP 10", render.AlignLeft, config.BarColor)
	for i, e := range m.entries {
		line := fmt.Sprintf("%2d. %-16s %6d", i+1, e.Name, e.Score)
		frame.Text(x, y+float64(i+1)*(LineHeight+4), line, render.AlignLeft, config.TextLightColor)
	}
}
