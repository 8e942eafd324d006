package system

import (
	"balloon-popper/internal/defs"
	"balloon-popper/pkg/render"
	"testing"
)

func TestRenderDrawsWorld(t *testing.T) {
	f := newFixture(t, defs.ModeClassic)
	f.addTarget(100, 100, 20, 3)
	f.addTarget(200, 100, 20, 1)
	f.addProjectile(300, 300)
	f.effects.Burst(f.world.Center(), f.world.Targets[0].Color, 4)

	frame := render.NewFrame(0, 0, f.lib.Difficulty(defs.DifficultyEasy).Background)
	NewRenderSystem(f.world, f.lib).Draw(frame)

	if frame.Width != testWidth || frame.Height != testHeight {
		t.Errorf("frame size = %vx%v", frame.Width, frame.Height)
	}
	// Тело и блик у каждого шара
	if got := frame.Count(render.KindEllipse); got != 4 {
		t.Errorf("ellipses = %d, want 4", got)
	}
	// Число прочности рисуется только при hp > 1
	if got := frame.Count(render.KindText); got != 1 {
		t.Errorf("hp labels = %d, want 1", got)
	}
	if got := frame.Count(render.KindTriangle); got != 1 {
		t.Errorf("triangles = %d, want 1 dart", got)
	}
}

func TestRenderUsesDifficultyBackground(t *testing.T) {
	f := newFixture(t, defs.ModeClassic)
	f.state.Start(defs.DifficultyNuclear, defs.ModeClassic)

	frame := &render.Frame{}
	NewRenderSystem(f.world, f.lib).Draw(frame)

	if want := f.lib.Difficulty(defs.DifficultyNuclear).Background; frame.Background != want {
		t.Errorf("background = %v, want %v", frame.Background, want)
	}
}

func TestMuzzleFlashAfterShot(t *testing.T) {
	f := newFixture(t, defs.ModeClassic)
	rs := NewRenderSystem(f.world, f.lib)
	frame := &render.Frame{}

	rs.Draw(frame)
	before := frame.Count(render.KindCircle)

	f.turret.Update()
	rs.Draw(frame)
	if got := frame.Count(render.KindCircle); got != before+1 {
		t.Errorf("circles after shot = %d, want %d (muzzle flash)", got, before+1)
	}
}
