// internal/system/turret.go
package system

import (
	"balloon-popper/internal/config"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/entity"
	"balloon-popper/internal/event"
	"balloon-popper/internal/utils"
	"math"
)

// TurretSystem поворачивает турель к курсору и стреляет по таймеру.
type TurretSystem struct {
	world           *entity.World
	lib             *defs.Library
	eventDispatcher *event.Dispatcher
	projectiles     *ProjectileSystem
	collision       *CollisionSystem
}

func NewTurretSystem(world *entity.World, lib *defs.Library, eventDispatcher *event.Dispatcher, projectiles *ProjectileSystem, collision *CollisionSystem) *TurretSystem {
	ts := &TurretSystem{
		world:           world,
		lib:             lib,
		eventDispatcher: eventDispatcher,
		projectiles:     projectiles,
		collision:       collision,
	}
	eventDispatcher.Subscribe(ts, event.SessionStarted, event.PurchaseSucceeded, event.WeaponEquipped)
	return ts
}

func (s *TurretSystem) OnEvent(e event.Event) {
	switch e.Type {
	case event.SessionStarted, event.PurchaseSucceeded, event.WeaponEquipped:
		s.RecalcStats()
	}
}

func (s *TurretSystem) Update() {
	t := s.world.Turret
	t.Center = s.world.Center()
	t.Angle = utils.Angle(t.Center, s.world.Pointer)

	// Отдача затухает каждый кадр, импульс добавляется при выстреле.
	t.Recoil = t.Recoil.Scale(config.RecoilDamping)
	if t.Recoil.Len() < 0.01 {
		t.Recoil = utils.Vec2{}
	}

	if t.FireTimer <= 0 {
		s.Shoot()
		t.FireTimer = t.FireInterval
	} else {
		t.FireTimer--
	}
}

// Shoot выпускает ShotCount выстрелов веером вокруг угла турели.
func (s *TurretSystem) Shoot() {
	t := s.world.Turret
	def, ok := s.lib.Weapon(t.Weapon)
	if !ok {
		return
	}

	angles := utils.FanAngles(t.Angle, t.Spread, t.ShotCount)
	tip := t.BarrelTip(config.BarrelLength)
	switch {
	case def.HitScan:
		for _, a := range angles {
			s.collision.HitScan(t.Center, a, def)
		}
	case def.Pellets > 1:
		for _, a := range angles {
			for _, pa := range utils.FanAngles(a, def.PelletSpread, def.Pellets) {
				s.projectiles.Spawn(tip, pa, def)
			}
		}
	default:
		for _, a := range angles {
			s.projectiles.Spawn(tip, a, def)
		}
	}

	if s.world.Session.Mode == defs.ModeWaves && def.Recoil > 0 {
		t.Recoil = t.Recoil.Add(utils.FromAngle(t.Angle+math.Pi, def.Recoil))
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ShotFired, Data: event.ShotData{Weapon: def.ID, Shots: len(angles)}})
}

// RecalcStats пересчитывает интервал стрельбы и число стволов после
// любой покупки или смены оружия.
func (s *TurretSystem) RecalcStats() {
	t := s.world.Turret
	t.FireInterval = FireInterval(s.world.UpgradeLevel(defs.UpgradeFireRate), s.delayFactor(t.Weapon))
	t.ShotCount = 1 + s.world.UpgradeLevel(defs.UpgradeMultiShot)
	t.Spread = config.ShotSpread
}

func (s *TurretSystem) delayFactor(id defs.WeaponID) float64 {
	def, ok := s.lib.Weapon(id)
	if !ok || def.DelayFactor <= 0 {
		return 1
	}
	return def.DelayFactor
}

// FireInterval возвращает интервал стрельбы в кадрах для уровня скорострельности
// и множителя задержки оружия.
func FireInterval(fireRateLevel int, delayFactor float64) int {
	base := max(config.MinFireInterval, config.BaseFireInterval-config.FireIntervalStep*fireRateLevel)
	if delayFactor == 1 {
		return base
	}
	return int(math.Ceil(float64(base) * delayFactor))
}
