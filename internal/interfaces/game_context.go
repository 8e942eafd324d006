// internal/interfaces/game_context.go
package interfaces

import "balloon-popper/internal/defs"

// GameContext — то, что системы могут попросить у владельца игрового цикла.
type GameContext interface {
	ClearTargets()
	ClearProjectiles()
	Viewport() (width, height float64)
}

// Shop — операции магазина, доступные интерфейсу.
type Shop interface {
	Buy(id defs.UpgradeID) error
	Equip(weapon defs.WeaponID) error
}
