// internal/ui/button.go
package ui

import (
	"balloon-popper/internal/config"
	"balloon-popper/pkg/render"
	"image/color"
)

// Размер символа шрифта basicfont 7x13; интерфейс раскладывается под него.
const (
	CharWidth  = 7.0
	LineHeight = 13.0
)

// TextWidth возвращает ширину строки в пикселях.
func TextWidth(s string) float64 {
	return float64(len([]rune(s))) * CharWidth
}

// Button представляет собой кликабельную кнопку в UI.
type Button struct {
	X, Y, W, H float64
	Text       string
	Enabled    bool
	Hover      bool
	BgColor    color.RGBA
	TextColor  color.RGBA
}

// NewButton создает новую кнопку.
func NewButton(x, y, w, h float64, text string) *Button {
	return &Button{
		X: x, Y: y, W: w, H: h,
		Text:      text,
		Enabled:   true,
		BgColor:   config.ButtonColor,
		TextColor: config.TextLightColor,
	}
}

// Contains проверяет, попадает ли точка в кнопку.
func (b *Button) Contains(x, y float64) bool {
	return x >= b.X && x < b.X+b.W && y >= b.Y && y < b.Y+b.H
}

// Clicked засчитывает клик только по активной кнопке.
func (b *Button) Clicked(x, y float64) bool {
	return b.Enabled && b.Contains(x, y)
}

// Draw отрисовывает кнопку.
func (b *Button) Draw(frame *render.Frame) {
	bg := b.BgColor
	switch {
	case !b.Enabled:
		bg = config.ButtonDisabled
	case b.Hover:
		bg = config.ButtonHover
	}
	frame.Rect(b.X, b.Y, 0, 0, b.W, b.H, 0, bg)
	frame.RectOutline(b.X, b.Y, 0, 0, b.W, b.H, 0, 2, render.DarkenColor(bg))
	frame.Text(b.X+b.W/2, b.Y+b.H/2+LineHeight/3, b.Text, render.AlignCenter, b.TextColor)
}
