// internal/system/economy.go
package system

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/entity"
	"balloon-popper/internal/event"
	"errors"
	"math"
)

var (
	ErrInsufficientFunds = errors.New("insufficient funds")
	ErrMaxLevel          = errors.New("upgrade is at max level")
	ErrAlreadyUnlocked   = errors.New("weapon already unlocked")
	ErrUnknownUpgrade    = errors.New("unknown upgrade")
	ErrUnknownWeapon     = errors.New("unknown weapon")
	ErrWeaponLocked      = errors.New("weapon is locked")
	ErrSessionInactive   = errors.New("session is not running")
)

// EconomySystem начисляет награды и обслуживает магазин улучшений.
type EconomySystem struct {
	world           *entity.World
	lib             *defs.Library
	eventDispatcher *event.Dispatcher
}

func NewEconomySystem(world *entity.World, lib *defs.Library, eventDispatcher *event.Dispatcher) *EconomySystem {
	es := &EconomySystem{
		world:           world,
		lib:             lib,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(es, event.TargetPopped)
	return es
}

func (s *EconomySystem) OnEvent(e event.Event) {
	if e.Type != event.TargetPopped || !s.world.Running() {
		return
	}
	data, ok := e.Data.(event.TargetData)
	if !ok {
		return
	}
	s.world.Session.Score += data.Reward
	s.world.Session.Money += data.Reward
	s.world.Session.Pops++
}

// UpgradeCost возвращает цену следующей покупки после level покупок.
func UpgradeCost(def defs.UpgradeDefinition, level int) int {
	if def.Kind == defs.UpgradeUnlock {
		return def.InitialCost
	}
	return int(math.Floor(float64(def.InitialCost) * math.Pow(def.Growth, float64(level))))
}

// ResetUpgrades заполняет состояние магазина для режима текущей сессии.
func (s *EconomySystem) ResetUpgrades() {
	clear(s.world.Upgrades)
	clear(s.world.Unlocked)
	for _, def := range s.lib.UpgradesFor(s.world.Session.Mode) {
		s.world.Upgrades[def.ID] = &component.Upgrade{
			ID:       def.ID,
			Kind:     def.Kind,
			MaxLevel: def.MaxLevel,
			Cost:     UpgradeCost(def, 0),
			Weapon:   def.Weapon,
		}
	}
}

// Buy пытается купить улучшение. При ошибке состояние не меняется.
// Нехватка денег сопровождается событием PurchaseDenied, упор в максимум проходит молча.
func (s *EconomySystem) Buy(id defs.UpgradeID) error {
	if !s.world.Running() {
		return ErrSessionInactive
	}
	u, ok := s.world.Upgrades[id]
	def, defOK := s.lib.Upgrades[id]
	if !ok || !defOK {
		return ErrUnknownUpgrade
	}
	if u.Maxed() {
		if u.Kind == defs.UpgradeUnlock {
			return ErrAlreadyUnlocked
		}
		return ErrMaxLevel
	}

	sess := s.world.Session
	if sess.Money < u.Cost {
		s.eventDispatcher.Dispatch(event.Event{Type: event.PurchaseDenied, Data: event.PurchaseData{Upgrade: id, Level: u.Level, Cost: u.Cost}})
		return ErrInsufficientFunds
	}

	paid := u.Cost
	sess.Money -= paid
	switch u.Kind {
	case defs.UpgradeUnlock:
		u.Unlocked = true
		s.world.Unlocked[u.Weapon] = true
	default:
		u.Level++
		u.Cost = UpgradeCost(def, u.Level)
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.PurchaseSucceeded, Data: event.PurchaseData{Upgrade: id, Level: u.Level, Cost: paid}})
	return nil
}

// Equip меняет оружие турели. Бесплатно, но только для открытого оружия.
func (s *EconomySystem) Equip(weapon defs.WeaponID) error {
	if !s.world.Running() {
		return ErrSessionInactive
	}
	def, ok := s.lib.Weapon(weapon)
	if !ok {
		return ErrUnknownWeapon
	}
	if !def.Default && !s.world.Unlocked[weapon] {
		return ErrWeaponLocked
	}
	if s.world.Turret.Weapon == weapon {
		return nil
	}
	s.world.Turret.Weapon = weapon
	s.eventDispatcher.Dispatch(event.Event{Type: event.WeaponEquipped, Data: event.ShotData{Weapon: weapon}})
	return nil
}
