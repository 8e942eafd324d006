// internal/component/turret.go
package component

import (
	"balloon-popper/internal/defs"
	"balloon-popper/internal/utils"
)

// Turret — единственная турель в центре вьюпорта.
type Turret struct {
	// Center: номинальный центр вьюпорта. От него считаются прицел и лучи.
	Center utils.Vec2
	// Recoil: визуальное смещение от отдачи, затухает каждый кадр.
	Recoil utils.Vec2
	// Angle: текущий угол поворота в радианах.
	Angle float64
	// FireTimer: сколько кадров осталось до следующего выстрела.
	FireTimer int
	// FireInterval: текущий интервал с учётом улучшений и оружия.
	FireInterval int
	ShotCount    int
	Spread       float64
	Weapon       defs.WeaponID
}

// Position возвращает видимую позицию турели (центр + отдача).
func (t *Turret) Position() utils.Vec2 {
	return t.Center.Add(t.Recoil)
}

// BarrelTip возвращает точку на конце ствола.
func (t *Turret) BarrelTip(length float64) utils.Vec2 {
	return t.Center.Add(utils.FromAngle(t.Angle, length))
}
