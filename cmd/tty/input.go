// cmd/tty/input.go
package main

import (
	"balloon-popper/internal/state"
	"balloon-popper/pkg/render/cells"

	"github.com/gdamore/tcell/v2"
)

// translator переводит события терминала в state.Input.
type translator struct {
	buttons tcell.ButtonMask
}

var runeKeys = map[rune]state.Key{
	' ': state.KeySpace,
	'q': state.KeyQ,
	'Q': state.KeyQ,
	'1': state.Key1,
	'2': state.Key2,
	'3': state.Key3,
	'm': state.KeyM,
	'M': state.KeyM,
	'p': state.KeyP,
	'P': state.KeyP,
}

func (t *translator) resize(in *state.Input, canvas *cells.Canvas, cols, rows int) {
	canvas.Resize(cols, rows)
	in.Width = float64(cols) * cells.CellWidth
	in.Height = float64(rows) * cells.CellHeight
}

// apply накапливает событие во вводе текущего тика. Ctrl-C возвращает errQuit.
func (t *translator) apply(ev tcell.Event, in *state.Input, canvas *cells.Canvas) error {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyCtrlC:
			return errQuit
		case tcell.KeyEscape:
			in.Keys = append(in.Keys, state.KeyEscape)
		case tcell.KeyEnter:
			in.Keys = append(in.Keys, state.KeyEnter)
		case tcell.KeyBackspace, tcell.KeyBackspace2:
			in.Keys = append(in.Keys, state.KeyBackspace)
		case tcell.KeyRune:
			r := ev.Rune()
			in.Runes = append(in.Runes, r)
			if k, ok := runeKeys[r]; ok {
				in.Keys = append(in.Keys, k)
			}
		}
	case *tcell.EventMouse:
		col, row := ev.Position()
		in.PointerX = (float64(col) + 0.5) * cells.CellWidth
		in.PointerY = (float64(row) + 0.5) * cells.CellHeight
		pressed := ev.Buttons() & tcell.Button1
		if pressed != 0 && t.buttons&tcell.Button1 == 0 {
			in.Clicked = true
		}
		t.buttons = ev.Buttons()
	case *tcell.EventResize:
		cols, rows := ev.Size()
		t.resize(in, canvas, cols, rows)
	}
	return nil
}
