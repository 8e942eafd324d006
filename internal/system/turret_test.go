package system

import (
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/event"
	"balloon-popper/internal/utils"
	"math"
	"testing"
)

func TestTurretSingleShotAtAngleZero(t *testing.T) {
	f := newFixture(t, defs.ModeClassic)
	f.world.Pointer = utils.Vec2{X: testWidth, Y: testHeight / 2}

	f.turret.Update()

	if got := len(f.world.Projectiles); got != 1 {
		t.Fatalf("projectiles = %d, want 1", got)
	}
	p := f.world.Projectiles[0]
	if p.Velocity != (utils.Vec2{X: 15, Y: 0}) {
		t.Errorf("velocity = %+v, want (15, 0)", p.Velocity)
	}
	wantPos := utils.Vec2{X: testWidth/2 + config.BarrelLength, Y: testHeight / 2}
	if p.Pos != wantPos {
		t.Errorf("spawn position = %+v, want barrel tip %+v", p.Pos, wantPos)
	}
	if f.world.Turret.FireTimer != config.BaseFireInterval {
		t.Errorf("fire timer = %d, want %d", f.world.Turret.FireTimer, config.BaseFireInterval)
	}
	if f.rec.count(event.ShotFired) != 1 {
		t.Errorf("ShotFired events = %d, want 1", f.rec.count(event.ShotFired))
	}
}

func TestTurretFiresOnInterval(t *testing.T) {
	f := newFixture(t, defs.ModeClassic)
	f.world.Pointer = utils.Vec2{X: 0, Y: 0}

	// Первый кадр стреляет, дальше ровно раз в interval+1 кадров.
	for i := 0; i < 1+config.BaseFireInterval+1; i++ {
		f.turret.Update()
	}
	if got := f.rec.count(event.ShotFired); got != 2 {
		t.Errorf("shots after %d frames = %d, want 2", config.BaseFireInterval+2, got)
	}
}

func TestTurretMultiShotFan(t *testing.T) {
	f := newFixture(t, defs.ModeClassic)
	f.world.Pointer = utils.Vec2{X: testWidth, Y: testHeight / 2}
	f.world.Upgrades[defs.UpgradeMultiShot].Level = 2
	f.turret.RecalcStats()

	f.turret.Update()

	if got := len(f.world.Projectiles); got != 3 {
		t.Fatalf("projectiles = %d, want 3", got)
	}
	want := []float64{-config.ShotSpread, 0, config.ShotSpread}
	for i, p := range f.world.Projectiles {
		if math.Abs(p.Angle-want[i]) > 1e-9 {
			t.Errorf("projectile %d angle = %v, want %v", i, p.Angle, want[i])
		}
	}
}

func TestFireInterval(t *testing.T) {
	tests := []struct {
		level  int
		factor float64
		want   int
	}{
		{0, 1, 12},
		{1, 1, 10},
		{4, 1, 4},
		{5, 1, 3},
		{9, 1, 3},
		{0, 2.5, 30},
		{1, 2.5, 25},
		{5, 3, 9},
	}
	for _, tt := range tests {
		if got := FireInterval(tt.level, tt.factor); got != tt.want {
			t.Errorf("FireInterval(%d, %v) = %d, want %d", tt.level, tt.factor, got, tt.want)
		}
	}
}

func TestShotgunFiresPellets(t *testing.T) {
	f := newFixture(t, defs.ModeWaves)
	f.world.Session.Money = 10_000
	if err := f.economy.Buy(defs.UpgradeShotgun); err != nil {
		t.Fatalf("buy shotgun: %v", err)
	}
	if err := f.economy.Equip(defs.WeaponShotgun); err != nil {
		t.Fatalf("equip shotgun: %v", err)
	}

	f.turret.Update()

	def, _ := f.lib.Weapon(defs.WeaponShotgun)
	if got := len(f.world.Projectiles); got != def.Pellets {
		t.Errorf("pellets = %d, want %d", got, def.Pellets)
	}
	if f.world.Turret.FireInterval != 30 {
		t.Errorf("shotgun interval = %d, want 30", f.world.Turret.FireInterval)
	}
	if f.world.Turret.Recoil.Len() == 0 {
		t.Error("waves mode shot should add recoil")
	}
}

func TestRecoilDampsAndAimUsesNominalCenter(t *testing.T) {
	f := newFixture(t, defs.ModeWaves)
	f.world.Pointer = utils.Vec2{X: testWidth, Y: testHeight / 2}

	f.turret.Update()
	first := f.world.Turret.Recoil.Len()
	if first == 0 {
		t.Fatal("expected recoil after shot")
	}
	f.turret.Update()
	if got := f.world.Turret.Recoil.Len(); got >= first {
		t.Errorf("recoil did not decay: %v -> %v", first, got)
	}
	if f.world.Turret.Angle != 0 {
		t.Errorf("angle = %v, want 0 (aim from nominal center)", f.world.Turret.Angle)
	}
}

func TestClassicModeHasNoRecoil(t *testing.T) {
	f := newFixture(t, defs.ModeClassic)
	f.turret.Update()
	if f.world.Turret.Recoil != (utils.Vec2{}) {
		t.Errorf("recoil = %+v, want zero in classic mode", f.world.Turret.Recoil)
	}
}
