// internal/component/upgrade.go
package component

import "balloon-popper/internal/defs"

// Upgrade — состояние одной позиции магазина в текущей сессии.
type Upgrade struct {
	ID       defs.UpgradeID
	Kind     defs.UpgradeKind
	Level    int
	MaxLevel int
	Cost     int
	Unlocked bool
	Weapon   defs.WeaponID
}

// Maxed сообщает, что дальнейшая покупка невозможна.
func (u *Upgrade) Maxed() bool {
	if u.Kind == defs.UpgradeUnlock {
		return u.Unlocked
	}
	return u.Level >= u.MaxLevel
}
