package system

import (
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"testing"
)

func TestClassicSpawnInterval(t *testing.T) {
	tests := []struct {
		frames int
		halve  bool
		want   int
	}{
		{0, false, 90},
		{299, false, 90},
		{300, false, 89},
		{300 * 70, false, 20},
		{300 * 500, false, 20},
		{0, true, 45},
		{300 * 500, true, 10},
	}
	for _, tt := range tests {
		if got := ClassicSpawnInterval(tt.frames, tt.halve); got != tt.want {
			t.Errorf("ClassicSpawnInterval(%d, %v) = %d, want %d", tt.frames, tt.halve, got, tt.want)
		}
	}
}

func TestSpawnedTargetsStartOffscreen(t *testing.T) {
	f := newFixture(t, defs.ModeClassic)
	pad := config.TargetSpawnPadding

	for i := 0; i < 200; i++ {
		tg := f.spawner.Spawn(defs.TargetStandard, 1, 1)

		onEdge := tg.Pos.X == -pad || tg.Pos.X == testWidth+pad || tg.Pos.Y == -pad || tg.Pos.Y == testHeight+pad
		if !onEdge {
			t.Fatalf("target %d spawned at %+v, not on a padded edge", i, tg.Pos)
		}
		if tg.Radius < config.TargetRadiusMin || tg.Radius >= config.TargetRadiusMax {
			t.Errorf("radius %v out of range", tg.Radius)
		}
		if tg.HP < 1 {
			t.Errorf("hp %d < 1", tg.HP)
		}
		if tg.Speed < config.TargetSpeedMin || tg.Speed >= config.TargetSpeedMax {
			t.Errorf("speed %v out of range for easy", tg.Speed)
		}
	}
}

func TestDifficultyScalesTargets(t *testing.T) {
	f := newFixture(t, defs.ModeClassic)
	f.state.Start(defs.DifficultyNuclear, defs.ModeClassic)
	diff := f.lib.Difficulty(defs.DifficultyNuclear)

	for i := 0; i < 100; i++ {
		tg := f.spawner.Spawn(defs.TargetStandard, 1, 1)
		if tg.Speed < config.TargetSpeedMin*diff.SpeedMultiplier {
			t.Fatalf("nuclear speed %v below scaled minimum", tg.Speed)
		}
		if tg.HP < 2 || tg.HP > 5 {
			t.Fatalf("nuclear hp %d outside [2, 5]", tg.HP)
		}
	}
}

func TestSeekerStats(t *testing.T) {
	f := newFixture(t, defs.ModeWaves)
	tg := f.spawner.Spawn(defs.TargetSeeker, 1, 1)

	if tg.Color != config.SeekerColor {
		t.Errorf("seeker color = %v", tg.Color)
	}
	if tg.Reward != config.PopReward*config.SeekerRewardFactor {
		t.Errorf("seeker reward = %d", tg.Reward)
	}
	if tg.Wobble != 0 {
		t.Error("seekers do not wobble")
	}
}

func TestClassicSpawnsOnFrameZero(t *testing.T) {
	f := newFixture(t, defs.ModeClassic)
	f.spawner.Update()
	if len(f.world.Targets) != 1 {
		t.Errorf("targets after frame 0 = %d, want 1", len(f.world.Targets))
	}
	f.world.Session.Frames = 1
	f.spawner.Update()
	if len(f.world.Targets) != 1 {
		t.Errorf("spawned off-cadence at frame 1")
	}
}
