// cmd/game/input.go
package main

import (
	"balloon-popper/internal/state"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = map[ebiten.Key]state.Key{
	ebiten.KeySpace:     state.KeySpace,
	ebiten.KeyQ:         state.KeyQ,
	ebiten.Key1:         state.Key1,
	ebiten.Key2:         state.Key2,
	ebiten.Key3:         state.Key3,
	ebiten.KeyM:         state.KeyM,
	ebiten.KeyP:         state.KeyP,
	ebiten.KeyEscape:    state.KeyEscape,
	ebiten.KeyEnter:     state.KeyEnter,
	ebiten.KeyBackspace: state.KeyBackspace,
}

// pollInput собирает ввод ebiten за тик: клавиши, набранный текст,
// курсор и касания. Размер вьюпорта заполняет Layout.
func pollInput(in *state.Input) {
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		if mapped, ok := keyMap[k]; ok {
			in.Keys = append(in.Keys, mapped)
		}
	}
	in.Runes = ebiten.AppendInputChars(in.Runes)

	x, y := ebiten.CursorPosition()
	in.MoveCursor(float64(x), float64(y))
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		in.Clicked = true
	}

	// Касание работает как курсор: двигает прицел и нажимает кнопки.
	if ids := ebiten.AppendTouchIDs(nil); len(ids) > 0 {
		tx, ty := ebiten.TouchPosition(ids[0])
		in.Touch(float64(tx), float64(ty))
	}
	if len(inpututil.AppendJustPressedTouchIDs(nil)) > 0 {
		in.Clicked = true
	}
}
