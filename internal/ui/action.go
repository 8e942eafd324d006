// internal/ui/action.go
package ui

import "balloon-popper/internal/defs"

// ActionKind — что пользователь попросил сделать кликом или клавишей.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionStart
	ActionToggleMode
	ActionToggleUpgrades
	ActionBuy
	ActionEquip
	ActionSaveScore
	ActionRestart
)

// Action — результат обработки ввода виджетом. Исполняет его состояние игры.
type Action struct {
	Kind       ActionKind
	Difficulty defs.DifficultyID
	Mode       defs.Mode
	Upgrade    defs.UpgradeID
	Weapon     defs.WeaponID
}
