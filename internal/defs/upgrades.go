// internal/defs/upgrades.go
package defs

// UpgradeDefinition описывает одну позицию магазина.
type UpgradeDefinition struct {
	ID          UpgradeID   `json:"id"`
	Name        string      `json:"name"`
	Kind        UpgradeKind `json:"kind"`
	InitialCost int         `json:"initial_cost"`
	MaxLevel    int         `json:"max_level"`
	Growth      float64     `json:"growth"`
	// Weapon: какое оружие открывает разблокировка.
	Weapon WeaponID `json:"weapon,omitempty"`
	// Modes: в каких режимах позиция доступна.
	Modes []Mode `json:"modes"`
}

// AvailableIn сообщает, продаётся ли улучшение в данном режиме.
func (d UpgradeDefinition) AvailableIn(mode Mode) bool {
	for _, m := range d.Modes {
		if m == mode {
			return true
		}
	}
	return false
}
