// internal/system/spawn.go
package system

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/entity"
	"balloon-popper/internal/utils"
	"balloon-popper/pkg/render"
	"math"
)

// SpawnSystem создаёт цели на краях экрана. В классическом режиме он же
// решает, когда выпускать следующую цель.
type SpawnSystem struct {
	world *entity.World
	lib   *defs.Library
	rng   *utils.PRNGService
}

func NewSpawnSystem(world *entity.World, lib *defs.Library, rng *utils.PRNGService) *SpawnSystem {
	return &SpawnSystem{world: world, lib: lib, rng: rng}
}

// Update ведёт классический поток, интервал сокращается со временем.
func (s *SpawnSystem) Update() {
	diff := s.lib.Difficulty(s.world.Session.Difficulty)
	interval := ClassicSpawnInterval(s.world.Session.Frames, diff.HalveSpawnInterval)
	if s.world.Session.Frames%interval == 0 {
		s.Spawn(defs.TargetStandard, 1, 1)
	}
}

// ClassicSpawnInterval возвращает интервал появления в кадрах для классического режима.
func ClassicSpawnInterval(frames int, halve bool) int {
	interval := max(config.ClassicMinSpawnInterval, config.ClassicSpawnInterval-frames/config.ClassicSpawnRampFrames)
	if halve {
		interval /= 2
	}
	return max(interval, 1)
}

// Spawn создаёт цель заданного типа. speedMult и hpMult задают множители волны,
// множители сложности применяются здесь же.
func (s *SpawnSystem) Spawn(kind defs.TargetKind, speedMult, hpMult float64) *component.Target {
	diff := s.lib.Difficulty(s.world.Session.Difficulty)
	speedMult *= diff.SpeedMultiplier
	hpMult *= diff.HPMultiplier

	t := &component.Target{
		ID:     s.world.NewEntity(),
		Pos:    s.edgePosition(),
		Radius: s.rng.Range(config.TargetRadiusMin, config.TargetRadiusMax),
		Kind:   kind,
		Reward: config.PopReward,
	}

	switch kind {
	case defs.TargetSeeker:
		speedMult *= s.lib.Waves.SeekerSpeed
		hpMult *= s.lib.Waves.SeekerHP
		t.Color = config.SeekerColor
		t.Reward *= config.SeekerRewardFactor
	default:
		p := diff.Palette
		t.Color = render.HSL(s.rng.Range(p.HueMin, p.HueMax), p.Saturation, p.Lightness)
		if s.world.Session.Mode == defs.ModeWaves {
			t.Wobble = config.WobbleAmplitude
			t.WobblePhase = s.rng.Range(0, 2*math.Pi)
		}
	}

	t.Speed = s.rng.Range(config.TargetSpeedMin, config.TargetSpeedMax) * speedMult
	t.HP = max(1, int(math.Ceil(s.rng.Range(config.TargetHPMin, config.TargetHPMax)*hpMult)))
	t.MaxHP = t.HP

	s.world.Targets = append(s.world.Targets, t)
	return t
}

// edgePosition выбирает случайный край и точку на нём, вынесенную за экран.
func (s *SpawnSystem) edgePosition() utils.Vec2 {
	w, h := s.world.Width, s.world.Height
	pad := config.TargetSpawnPadding
	switch s.rng.Intn(4) {
	case 0: // верх
		return utils.Vec2{X: s.rng.Range(0, w), Y: -pad}
	case 1: // право
		return utils.Vec2{X: w + pad, Y: s.rng.Range(0, h)}
	case 2: // низ
		return utils.Vec2{X: s.rng.Range(0, w), Y: h + pad}
	default: // лево
		return utils.Vec2{X: -pad, Y: s.rng.Range(0, h)}
	}
}
