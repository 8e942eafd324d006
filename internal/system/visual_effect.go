// internal/system/visual_effect.go
package system

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/config"
	"balloon-popper/internal/entity"
	"balloon-popper/internal/utils"
	"image/color"
	"math"
)

// VisualEffectSystem управляет косметикой: частицами и лазерными лучами.
// На игровую логику не влияет.
type VisualEffectSystem struct {
	world *entity.World
	rng   *utils.PRNGService
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(world *entity.World, rng *utils.PRNGService) *VisualEffectSystem {
	return &VisualEffectSystem{world: world, rng: rng}
}

// Burst выпускает n частиц из точки pos.
func (s *VisualEffectSystem) Burst(pos utils.Vec2, clr color.RGBA, n int) {
	for i := 0; i < n; i++ {
		if len(s.world.Particles) >= config.ParticleMaxAlive {
			return
		}
		s.world.Particles = append(s.world.Particles, &component.Particle{
			Pos:   pos,
			Angle: s.rng.Range(0, 2*math.Pi),
			Speed: s.rng.Range(0, config.ParticleSpeedMax),
			Color: clr,
			Alpha: 1,
			Decay: s.rng.Range(config.ParticleDecayMin, config.ParticleDecayMax),
		})
	}
}

// AddBeam добавляет след лазерного выстрела.
func (s *VisualEffectSystem) AddBeam(from, to utils.Vec2, clr color.RGBA, life int) {
	if life <= 0 {
		return
	}
	s.world.Beams = append(s.world.Beams, &component.Beam{From: from, To: to, Color: clr, Life: life, MaxLife: life})
}

// Update двигает частицы и гасит лучи.
func (s *VisualEffectSystem) Update() {
	for i := len(s.world.Particles) - 1; i >= 0; i-- {
		p := s.world.Particles[i]
		p.Pos = p.Pos.Add(utils.FromAngle(p.Angle, p.Speed))
		p.Alpha -= p.Decay
		if p.Alpha <= 0 {
			s.world.RemoveParticle(i)
		}
	}

	for i := len(s.world.Beams) - 1; i >= 0; i-- {
		b := s.world.Beams[i]
		b.Life--
		if b.Life <= 0 {
			s.world.RemoveBeam(i)
		}
	}
}
