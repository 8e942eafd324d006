package main

import (
	"balloon-popper/internal/state"
	"balloon-popper/pkg/render/cells"
	"errors"
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestTranslatorKeys(t *testing.T) {
	tr := &translator{}
	in := &state.Input{}
	canvas := cells.NewCanvas(10, 10)

	events := []tcell.Event{
		tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone),
		tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone),
		tcell.NewEventKey(tcell.KeyBackspace2, 0, tcell.ModNone),
	}
	for _, ev := range events {
		if err := tr.apply(ev, in, canvas); err != nil {
			t.Fatalf("apply: %v", err)
		}
	}
	if !in.Pressed(state.KeyQ) || !in.Pressed(state.KeyEnter) || !in.Pressed(state.KeyBackspace) {
		t.Errorf("keys = %v", in.Keys)
	}
	if string(in.Runes) != "qx" {
		t.Errorf("runes = %q", string(in.Runes))
	}

	err := tr.apply(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), in, canvas)
	if !errors.Is(err, errQuit) {
		t.Errorf("Ctrl-C = %v, want errQuit", err)
	}
}

func TestTranslatorMouseClickEdge(t *testing.T) {
	tr := &translator{}
	in := &state.Input{}
	canvas := cells.NewCanvas(10, 10)

	tr.apply(tcell.NewEventMouse(3, 2, tcell.Button1, tcell.ModNone), in, canvas)
	if !in.Clicked {
		t.Fatal("press not reported as click")
	}
	if in.PointerX != 3.5*cells.CellWidth || in.PointerY != 2.5*cells.CellHeight {
		t.Errorf("pointer = %v,%v", in.PointerX, in.PointerY)
	}

	in.Reset()
	// Удержание кнопки при движении не считается новым кликом.
	tr.apply(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone), in, canvas)
	if in.Clicked {
		t.Error("drag reported as click")
	}
	tr.apply(tcell.NewEventMouse(4, 2, tcell.ButtonNone, tcell.ModNone), in, canvas)
	tr.apply(tcell.NewEventMouse(4, 2, tcell.Button1, tcell.ModNone), in, canvas)
	if !in.Clicked {
		t.Error("second press not reported")
	}
}

func TestTranslatorResize(t *testing.T) {
	tr := &translator{}
	in := &state.Input{}
	canvas := cells.NewCanvas(10, 10)

	tr.apply(tcell.NewEventResize(40, 12), in, canvas)
	if canvas.Cols != 40 || canvas.Rows != 12 {
		t.Errorf("canvas = %dx%d", canvas.Cols, canvas.Rows)
	}
	if in.Width != 40*cells.CellWidth || in.Height != 12*cells.CellHeight {
		t.Errorf("viewport = %vx%v", in.Width, in.Height)
	}
}
