// internal/ui/hud.go
package ui

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/pkg/render"
	"fmt"
)

// HUD — счёт, деньги, оружие и кнопка магазина поверх игрового поля.
type HUD struct {
	UpgradeButton *Button
	wave          *WaveIndicator
}

func NewHUD() *HUD {
	return &HUD{
		UpgradeButton: NewButton(0, 0, 110, 28, "Upgrades"),
		wave:          NewWaveIndicator(0, 0),
	}
}

// Layout раскладывает элементы под текущий размер вьюпорта.
func (h *HUD) Layout(width, height float64) {
	h.UpgradeButton.X = width - h.UpgradeButton.W - 12
	h.UpgradeButton.Y = height - h.UpgradeButton.H - 12
	h.wave.X = width / 2
	h.wave.Y = 24
}

// Click возвращает действие для клика или ActionNone.
func (h *HUD) Click(x, y float64) Action {
	if h.UpgradeButton.Clicked(x, y) {
		return Action{Kind: ActionToggleUpgrades}
	}
	return Action{}
}

func (h *HUD) Hover(x, y float64) {
	h.UpgradeButton.Hover = h.UpgradeButton.Contains(x, y)
}

func (h *HUD) Draw(frame *render.Frame, s component.Session, weaponName string, muted bool) {
	frame.Rect(8, 8, 0, 0, 170, 3*LineHeight+14, 0, config.PanelColor)
	frame.Text(16, 8+LineHeight+2, fmt.Sprintf("Score: %d", s.Score), render.AlignLeft, config.TextLightColor)
	frame.Text(16, 8+2*LineHeight+4, fmt.Sprintf("Money: $%d", s.Money), render.AlignLeft, config.BarColor)
	frame.Text(16, 8+3*LineHeight+6, "Weapon: "+weaponName, render.AlignLeft, config.TextLightColor)

	if s.Mode == defs.ModeWaves {
		h.wave.Draw(frame, s.Wave)
		status := "M: mute"
		if muted {
			status = "M: unmute"
		}
		frame.Text(frame.Width-12, 8+LineHeight, status, render.AlignRight, config.TextLightColor)
	}
	frame.Text(12, frame.Height-12, "SPACE/Q: upgrades  P: pause", render.AlignLeft, config.TextLightColor)
	h.UpgradeButton.Draw(frame)
}
