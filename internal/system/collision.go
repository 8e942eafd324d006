// internal/system/collision.go
package system

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/entity"
	"balloon-popper/internal/event"
	"balloon-popper/internal/utils"
	"math"
)

// CollisionSystem разрешает попадания снарядов и лучей по целям.
type CollisionSystem struct {
	world           *entity.World
	eventDispatcher *event.Dispatcher
	effects         *VisualEffectSystem
}

func NewCollisionSystem(world *entity.World, eventDispatcher *event.Dispatcher, effects *VisualEffectSystem) *CollisionSystem {
	return &CollisionSystem{
		world:           world,
		eventDispatcher: eventDispatcher,
		effects:         effects,
	}
}

// Resolve проверяет каждый снаряд против целей. Попадание засчитывается
// первой пересечённой цели; снаряд при этом исчезает, сплеша нет.
func (s *CollisionSystem) Resolve() {
	for i := len(s.world.Projectiles) - 1; i >= 0; i-- {
		p := s.world.Projectiles[i]
		for j := len(s.world.Targets) - 1; j >= 0; j-- {
			t := s.world.Targets[j]
			if !utils.CirclesOverlap(p.Pos, p.Radius, t.Pos, t.Radius) {
				continue
			}
			s.world.RemoveProjectile(i)
			s.effects.Burst(p.Pos, config.HitParticleColor, config.HitParticles)
			s.damage(j, p.Damage)
			break
		}
	}
}

// HitScan выпускает луч из origin под углом angle и сразу наносит урон всем
// целям, чей центр ближе radius + BeamWidth к отрезку луча. Возвращает число попаданий.
func (s *CollisionSystem) HitScan(origin utils.Vec2, angle float64, def defs.WeaponDefinition) int {
	length := math.Hypot(s.world.Width, s.world.Height)
	end := origin.Add(utils.FromAngle(angle, length))

	hits := 0
	for j := len(s.world.Targets) - 1; j >= 0; j-- {
		t := s.world.Targets[j]
		if utils.DistancePointToSegment(t.Pos, origin, end) > t.Radius+def.BeamWidth {
			continue
		}
		hits++
		s.effects.Burst(t.Pos, config.HitParticleColor, config.HitParticles)
		s.damage(j, def.Damage)
	}
	s.effects.AddBeam(origin, end, def.Color, def.BeamLife)
	return hits
}

// damage отнимает прочность у цели с индексом j и лопает её при hp <= 0.
func (s *CollisionSystem) damage(j int, amount int) {
	t := s.world.Targets[j]
	if amount < 1 {
		amount = 1
	}
	t.HP -= amount
	if t.Alive() {
		s.eventDispatcher.Dispatch(event.Event{Type: event.TargetHit, Data: targetData(t)})
		return
	}
	s.world.RemoveTarget(j)
	s.pop(t)
}

func (s *CollisionSystem) pop(t *component.Target) {
	s.effects.Burst(t.Pos, t.Color, config.PopParticles)
	s.eventDispatcher.Dispatch(event.Event{Type: event.TargetPopped, Data: targetData(t)})
}

func targetData(t *component.Target) event.TargetData {
	return event.TargetData{ID: t.ID, Kind: t.Kind, Pos: t.Pos, HP: t.HP, Reward: t.Reward}
}
