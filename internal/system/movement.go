// internal/system/movement.go
package system

import (
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/entity"
	"balloon-popper/internal/utils"
	"math"
)

// MovementSystem двигает цели к турели и проверяет проигрыш.
type MovementSystem struct {
	world *entity.World
	state *StateSystem
}

func NewMovementSystem(world *entity.World, state *StateSystem) *MovementSystem {
	return &MovementSystem{world: world, state: state}
}

func (s *MovementSystem) Update() {
	frame := float64(s.world.Session.Frames)
	center := s.world.Center()
	for _, t := range s.world.Targets {
		dest := center
		if t.Kind == defs.TargetSeeker {
			dest = s.world.Turret.Position()
		}
		dir, ok := dest.Sub(t.Pos).Normalize()
		if !ok {
			continue
		}
		step := dir.Scale(t.Speed)
		if t.Wobble > 0 {
			step = step.Add(dir.Perp().Scale(math.Sin(frame*config.WobbleFrequency+t.WobblePhase) * t.Wobble))
		}
		t.Pos = t.Pos.Add(step)
	}

	// Проверка проигрыша после движения; сессия заканчивается один раз.
	turret := s.world.Turret.Center
	for _, t := range s.world.Targets {
		if utils.Distance(t.Pos, turret) < config.TurretCollisionRadius+t.Radius {
			s.state.End()
			return
		}
	}
}
