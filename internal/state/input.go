// internal/state/input.go
package state

import "slices"

// Key — клавиши, на которые реагирует игра. Хост переводит в них
// события своего бэкенда (ebiten или терминал).
type Key int

const (
	KeyNone Key = iota
	KeySpace
	KeyQ
	Key1
	Key2
	Key3
	KeyM
	KeyP
	KeyEscape
	KeyEnter
	KeyBackspace
)

// Input — ввод за один тик.
type Input struct {
	Width, Height      float64
	PointerX, PointerY float64
	Clicked            bool
	Keys               []Key  // нажатые в этом тике
	Runes              []rune // набранный текст

	cursorX, cursorY float64
	cursorSeen       bool
}

// Pressed сообщает, была ли клавиша нажата в этом тике.
func (in *Input) Pressed(k Key) bool {
	return slices.Contains(in.Keys, k)
}

// Reset очищает одноразовые поля, сохраняя размер и позицию курсора.
func (in *Input) Reset() {
	in.Clicked = false
	in.Keys = in.Keys[:0]
	in.Runes = in.Runes[:0]
}

// MoveCursor передаёт позицию мыши. Хост опрашивает её каждый тик, но
// прицел она двигает только когда курсор действительно сдвинулся: иначе
// после касания прицел прыгнул бы обратно к неподвижной мыши.
func (in *Input) MoveCursor(x, y float64) {
	if in.cursorSeen && x == in.cursorX && y == in.cursorY {
		return
	}
	in.cursorX, in.cursorY, in.cursorSeen = x, y, true
	in.PointerX, in.PointerY = x, y
}

// Touch передаёт позицию активного касания; она всегда побеждает.
func (in *Input) Touch(x, y float64) {
	in.PointerX, in.PointerY = x, y
}
