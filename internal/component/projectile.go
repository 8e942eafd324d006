// internal/component/projectile.go
package component

import (
	"balloon-popper/internal/defs"
	"balloon-popper/internal/types"
	"balloon-popper/internal/utils"
	"image/color"
)

// Projectile представляет летящий снаряд.
type Projectile struct {
	ID       types.EntityID
	Pos      utils.Vec2
	Velocity utils.Vec2
	Angle    float64
	Radius   float64
	Damage   int
	// Lifetime в кадрах; отрицательное значение снимает ограничение по времени.
	Lifetime int
	Weapon   defs.WeaponID
	Color    color.RGBA
}

// Expired сообщает, истекло ли время жизни снаряда.
func (p *Projectile) Expired() bool {
	return p.Lifetime == 0
}
