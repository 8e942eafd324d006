// internal/entity/world.go
package entity

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/types"
	"balloon-popper/internal/utils"
	"slices"
)

// World хранит всё изменяемое состояние одной сессии.
// Сущности лежат в упорядоченных срезах: порядок важен для разрешения
// столкновений, а удаление делается на месте при обратном обходе.
type World struct {
	NextID types.EntityID

	// Размер вьюпорта. Читается каждый кадр, меняется при ресайзе окна.
	Width, Height float64
	// Pointer: последняя известная позиция курсора (побеждает последняя запись).
	Pointer utils.Vec2

	Session     *component.Session
	Turret      *component.Turret
	Projectiles []*component.Projectile
	Targets     []*component.Target
	Particles   []*component.Particle
	Beams       []*component.Beam
	Wave        *component.Wave

	Upgrades map[defs.UpgradeID]*component.Upgrade
	Unlocked map[defs.WeaponID]bool
}

func NewWorld(width, height float64) *World {
	w := &World{
		NextID:   1,
		Width:    width,
		Height:   height,
		Session:  &component.Session{},
		Turret:   &component.Turret{},
		Upgrades: make(map[defs.UpgradeID]*component.Upgrade),
		Unlocked: make(map[defs.WeaponID]bool),
	}
	w.Pointer = w.Center()
	w.Turret.Center = w.Center()
	return w
}

func (w *World) NewEntity() types.EntityID {
	id := w.NextID
	w.NextID++
	return id
}

// Center возвращает центр текущего вьюпорта.
func (w *World) Center() utils.Vec2 {
	return utils.Vec2{X: w.Width / 2, Y: w.Height / 2}
}

// Clear убирает все сущности, но оставляет сессию и турель.
func (w *World) Clear() {
	w.Projectiles = w.Projectiles[:0]
	w.Targets = w.Targets[:0]
	w.Particles = w.Particles[:0]
	w.Beams = w.Beams[:0]
	w.Wave = nil
}

func (w *World) RemoveProjectile(i int) {
	w.Projectiles = slices.Delete(w.Projectiles, i, i+1)
}

func (w *World) RemoveTarget(i int) {
	w.Targets = slices.Delete(w.Targets, i, i+1)
}

func (w *World) RemoveParticle(i int) {
	w.Particles = slices.Delete(w.Particles, i, i+1)
}

func (w *World) RemoveBeam(i int) {
	w.Beams = slices.Delete(w.Beams, i, i+1)
}

// UpgradeLevel возвращает уровень улучшения или 0, если его нет в этом режиме.
func (w *World) UpgradeLevel(id defs.UpgradeID) int {
	if u, ok := w.Upgrades[id]; ok {
		return u.Level
	}
	return 0
}

// Running сообщает, идёт ли сейчас сессия.
func (w *World) Running() bool {
	return w.Session != nil && w.Session.State == component.SessionRunning
}
