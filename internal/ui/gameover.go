// internal/ui/gameover.go
package ui

import (
	"balloon-popper/internal/config"
	"balloon-popper/pkg/render"
	"fmt"
	"unicode"
)

// GameOverScreen показывает итог и принимает имя для таблицы рекордов.
type GameOverScreen struct {
	Name    []rune
	Score   int
	Pops    int
	Saved   bool
	save    *Button
	restart *Button
	width   float64
	height  float64
}

func NewGameOverScreen() *GameOverScreen {
	g := &GameOverScreen{
		save:    NewButton(0, 0, 120, 32, "Save"),
		restart: NewButton(0, 0, 120, 32, "Menu"),
	}
	g.Layout(config.ScreenWidth, config.ScreenHeight)
	return g
}

// Reset готовит экран к новому результату.
func (g *GameOverScreen) Reset(score, pops int) {
	g.Name = g.Name[:0]
	g.Score = score
	g.Pops = pops
	g.Saved = false
	g.save.Enabled = true
}

func (g *GameOverScreen) Layout(width, height float64) {
	g.width, g.height = width, height
	g.save.X, g.save.Y = width/2-130, height/2+40
	g.restart.X, g.restart.Y = width/2+10, height/2+40
}

// AppendRune добавляет печатный символ к имени.
func (g *GameOverScreen) AppendRune(r rune) {
	if g.Saved || !unicode.IsPrint(r) || len(g.Name) >= config.MaxNameLength {
		return
	}
	g.Name = append(g.Name, r)
}

func (g *GameOverScreen) Backspace() {
	if len(g.Name) > 0 && !g.Saved {
		g.Name = g.Name[:len(g.Name)-1]
	}
}

// RestartButton возвращает кнопку возврата в меню.
func (g *GameOverScreen) RestartButton() *Button {
	return g.restart
}

// MarkSaved блокирует повторное сохранение результата.
func (g *GameOverScreen) MarkSaved() {
	g.Saved = true
	g.save.Enabled = false
}

func (g *GameOverScreen) Click(x, y float64) Action {
	switch {
	case g.save.Clicked(x, y):
		return Action{Kind: ActionSaveScore}
	case g.restart.Clicked(x, y):
		return Action{Kind: ActionRestart}
	}
	return Action{}
}

func (g *GameOverScreen) Hover(x, y float64) {
	g.save.Hover = g.save.Contains(x, y)
	g.restart.Hover = g.restart.Contains(x, y)
}

func (g *GameOverScreen) Draw(frame *render.Frame) {
	frame.Rect(0, 0, 0, 0, g.width, g.height, 0, config.OverlayColor)
	cx, cy := g.width/2, g.height/2
	frame.Text(cx, cy-80, "GAME OVER", render.AlignCenter, config.BossWaveColor)
	frame.Text(cx, cy-50, fmt.Sprintf("Score: %d", g.Score), render.AlignCenter, config.TextLightColor)
	frame.Text(cx, cy-32, fmt.Sprintf("Balloons popped: %d", g.Pops), render.AlignCenter, config.TextLightColor)

	name := string(g.Name)
	if name == "" && !g.Saved {
		name = "_"
	}
	frame.Rect(cx-130, cy-20, 0, 0, 260, 30, 0, config.PanelColor)
	frame.Text(cx, cy, "Name: "+name, render.AlignCenter, config.BarColor)
	if g.Saved {
		frame.Text(cx, cy+100, "Saved", render.AlignCenter, config.TextLightColor)
	}
	g.save.Draw(frame)
	g.restart.Draw(frame)
}
