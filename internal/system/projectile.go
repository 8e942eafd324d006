// internal/system/projectile.go
package system

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/entity"
	"balloon-popper/internal/utils"
)

// ProjectileSystem управляет движением снарядов и их удалением за пределами экрана.
type ProjectileSystem struct {
	world *entity.World
}

func NewProjectileSystem(world *entity.World) *ProjectileSystem {
	return &ProjectileSystem{world: world}
}

// Spawn создаёт снаряд в точке pos, летящий под углом angle.
func (s *ProjectileSystem) Spawn(pos utils.Vec2, angle float64, def defs.WeaponDefinition) *component.Projectile {
	p := &component.Projectile{
		ID:       s.world.NewEntity(),
		Pos:      pos,
		Velocity: utils.FromAngle(angle, def.Speed),
		Angle:    angle,
		Radius:   def.Radius,
		Damage:   def.Damage,
		Lifetime: def.Lifetime,
		Weapon:   def.ID,
		Color:    def.Color,
	}
	s.world.Projectiles = append(s.world.Projectiles, p)
	return p
}

func (s *ProjectileSystem) Update() {
	for i := len(s.world.Projectiles) - 1; i >= 0; i-- {
		p := s.world.Projectiles[i]
		p.Pos = p.Pos.Add(p.Velocity)
		if p.Lifetime > 0 {
			p.Lifetime--
		}
		if p.Expired() || s.outOfBounds(p.Pos) {
			s.world.RemoveProjectile(i)
		}
	}
}

func (s *ProjectileSystem) outOfBounds(pos utils.Vec2) bool {
	m := config.ProjectileBoundsMargin
	return pos.X < -m || pos.X > s.world.Width+m || pos.Y < -m || pos.Y > s.world.Height+m
}
