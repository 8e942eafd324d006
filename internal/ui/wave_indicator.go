// internal/ui/wave_indicator.go
package ui

import (
	"balloon-popper/internal/config"
	"balloon-popper/pkg/render"
	"image/color"
	"strings"
)

// WaveIndicator отображает номер текущей волны римскими цифрами.
type WaveIndicator struct {
	X, Y             float64
	Color            color.RGBA
	OutlineColor     color.RGBA
	OutlineThickness int
}

// NewWaveIndicator создает новый индикатор волны.
func NewWaveIndicator(x, y float64) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.WaveTextColor,
		OutlineColor:     config.TextLightColor,
		OutlineThickness: 1,
	}
}

// ToRoman конвертирует целое число в римское.
func ToRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// Draw отрисовывает индикатор. Каждая десятая волна выделяется цветом.
func (i *WaveIndicator) Draw(frame *render.Frame, waveNumber int) {
	if waveNumber <= 0 {
		return
	}
	text := ToRoman(waveNumber)

	textColor := i.Color
	if waveNumber%10 == 0 {
		textColor = config.BossWaveColor
	}

	// Обводка
	t := float64(i.OutlineThickness)
	for _, d := range [][2]float64{{-t, 0}, {t, 0}, {0, -t}, {0, t}} {
		frame.Text(i.X+d[0], i.Y+d[1], text, render.AlignCenter, i.OutlineColor)
	}
	frame.Text(i.X, i.Y, text, render.AlignCenter, textColor)
}
