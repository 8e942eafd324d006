package app

import (
	"balloon-popper/internal/audio"
	"balloon-popper/internal/audio/mocks"
	"balloon-popper/internal/component"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/system"
	"balloon-popper/internal/utils"
	"balloon-popper/pkg/render"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"
)

func newTestGame(t *testing.T, mode defs.Mode) *Game {
	t.Helper()
	g := NewGame(nil, 1, 800, 600)
	g.Start(Options{Difficulty: defs.DifficultyEasy, Mode: mode})
	return g
}

func TestStepBeforeStartIsNoop(t *testing.T) {
	g := NewGame(nil, 1, 800, 600)
	g.Step()
	if g.Session().Frames != 0 || len(g.World.Projectiles) != 0 {
		t.Errorf("step advanced a session that was never started")
	}
}

func TestStepAdvancesFrame(t *testing.T) {
	g := newTestGame(t, defs.ModeClassic)
	g.SetPointer(800, 300)

	g.Step()

	s := g.Session()
	if s.Frames != 1 {
		t.Errorf("frames = %d, want 1", s.Frames)
	}
	if len(g.World.Projectiles) != 1 {
		t.Errorf("projectiles = %d, want 1", len(g.World.Projectiles))
	}
	// Классический режим выпускает цель на нулевом кадре.
	if len(g.World.Targets) != 1 {
		t.Errorf("targets = %d, want 1", len(g.World.Targets))
	}
}

func TestDestroyedTargetNeverEndsGame(t *testing.T) {
	g := newTestGame(t, defs.ModeClassic)
	g.World.Turret.FireTimer = 100 // не стрелять в этом кадре

	// Цель уже внутри радиуса поражения, но снаряд лопает её раньше движения.
	c := g.World.Center()
	g.World.Targets = append(g.World.Targets, &component.Target{ID: 99, Pos: c, Radius: 20, HP: 1, Reward: 10})
	def, _ := g.Library.Weapon(defs.WeaponStandard)
	p := g.ProjectileSystem.Spawn(c, 0, def)
	p.Velocity = utils.Vec2{}

	g.Step()

	if !g.World.Running() {
		t.Fatal("target popped this frame ended the session")
	}
	if g.Session().Score != 10 {
		t.Errorf("score = %d, want 10", g.Session().Score)
	}
}

func TestEndedSessionIgnoresStep(t *testing.T) {
	g := newTestGame(t, defs.ModeClassic)
	c := g.World.Center()
	g.World.Targets = append(g.World.Targets, &component.Target{Pos: c, Radius: 20, HP: 5})

	g.Step()
	if g.Session().State != component.SessionEnded {
		t.Fatalf("state = %v, want ended", g.Session().State)
	}
	frames := g.Session().Frames
	g.Step()
	if g.Session().Frames != frames {
		t.Error("ended session kept stepping")
	}
	if err := g.Buy(defs.UpgradeFireRate); !errors.Is(err, system.ErrSessionInactive) {
		t.Errorf("buy after game over: %v", err)
	}
}

func TestMaxLevelPurchaseIsSilent(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockCueSink(ctrl)
	// Звучит только отказ по деньгам, упор в максимум молчит.
	sink.EXPECT().Play(audio.CuePurchaseDenied).Times(1)

	g := newTestGame(t, defs.ModeWaves)
	audio.NewListener(sink).Attach(g)

	g.World.Session.Money = 1_000_000
	g.World.Upgrades[defs.UpgradeFireRate].Level = 5
	before := *g.World.Upgrades[defs.UpgradeFireRate]

	if err := g.Buy(defs.UpgradeFireRate); !errors.Is(err, system.ErrMaxLevel) {
		t.Fatalf("err = %v, want ErrMaxLevel", err)
	}
	if *g.World.Upgrades[defs.UpgradeFireRate] != before || g.World.Session.Money != 1_000_000 {
		t.Error("max-level purchase changed state")
	}

	g.World.Session.Money = 0
	if err := g.Buy(defs.UpgradeMultiShot); !errors.Is(err, system.ErrInsufficientFunds) {
		t.Fatalf("err = %v, want ErrInsufficientFunds", err)
	}
}

func TestGameOverCueOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockCueSink(ctrl)
	sink.EXPECT().Play(audio.CueGameOver).Times(1)
	sink.EXPECT().Play(gomock.Not(audio.CueGameOver)).AnyTimes()

	g := newTestGame(t, defs.ModeWaves)
	audio.NewListener(sink).Attach(g)
	c := g.World.Center()
	for i := 0; i < 4; i++ {
		g.World.Targets = append(g.World.Targets, &component.Target{Pos: c, Radius: 20, HP: 50})
	}

	g.Step()
	g.Step()
}

func TestResizeMovesTurret(t *testing.T) {
	g := newTestGame(t, defs.ModeClassic)
	g.Resize(1000, 1000)
	g.Resize(0, 10) // игнорируется

	g.Step()

	if got := g.Turret().Center; got != (utils.Vec2{X: 500, Y: 500}) {
		t.Errorf("turret center = %+v, want (500, 500)", got)
	}
	w, h := g.Viewport()
	if w != 1000 || h != 1000 {
		t.Errorf("viewport = %vx%v", w, h)
	}
}

func TestUpgradeMenuToggle(t *testing.T) {
	g := NewGame(nil, 1, 800, 600)
	g.ToggleUpgradeMenu()
	if g.UpgradeMenuOpen() {
		t.Error("menu opened before the session started")
	}
	g.Start(Options{Mode: defs.ModeClassic})
	g.ToggleUpgradeMenu()
	if !g.UpgradeMenuOpen() {
		t.Error("menu did not open")
	}
	g.Step()
	if g.Session().Frames != 1 {
		t.Error("open menu must not pause the simulation")
	}
	g.Start(Options{Mode: defs.ModeClassic})
	if g.UpgradeMenuOpen() {
		t.Error("menu stays open across sessions")
	}
}

func TestStartResetsSession(t *testing.T) {
	g := newTestGame(t, defs.ModeWaves)
	first := g.Session().ID
	g.World.Session.Money = 500
	g.World.Unlocked[defs.WeaponLaser] = true
	for i := 0; i < 30; i++ {
		g.Step()
	}

	g.Start(Options{Difficulty: defs.DifficultyMedium, Mode: defs.ModeClassic})

	s := g.Session()
	if s.ID == first || s.ID == "" {
		t.Errorf("session id not regenerated: %q", s.ID)
	}
	if s.Money != 0 || s.Frames != 0 || len(g.World.Targets) != 0 || len(g.World.Projectiles) != 0 {
		t.Errorf("session not reset: %+v", s)
	}
	if g.WeaponAvailable(defs.WeaponLaser) {
		t.Error("unlocks leaked into the new session")
	}
	if len(g.Upgrades()) != 2 {
		t.Errorf("classic shop = %d items, want 2", len(g.Upgrades()))
	}
}

func TestDrawProducesFrame(t *testing.T) {
	g := newTestGame(t, defs.ModeClassic)
	g.Step()
	frame := &render.Frame{}
	g.Draw(frame)
	if len(frame.Items) == 0 || frame.Width != 800 {
		t.Errorf("empty or mis-sized frame: %d items, width %v", len(frame.Items), frame.Width)
	}
}
