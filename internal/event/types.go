// internal/event/types.go
package event

import (
	"balloon-popper/internal/defs"
	"balloon-popper/internal/types"
	"balloon-popper/internal/utils"
)

const (
	SessionStarted    EventType = "SessionStarted"
	ShotFired         EventType = "ShotFired"    // турель выстрелила
	TargetHit         EventType = "TargetHit"    // цель получила урон, но жива
	TargetPopped      EventType = "TargetPopped" // цель уничтожена
	PurchaseSucceeded EventType = "PurchaseSucceeded"
	PurchaseDenied    EventType = "PurchaseDenied" // не хватило денег
	WeaponEquipped    EventType = "WeaponEquipped"
	WaveStarted       EventType = "WaveStarted"
	WaveCleared       EventType = "WaveCleared" // все цели волны уничтожены
	GameOver          EventType = "GameOver"
)

// ShotData — данные события ShotFired.
type ShotData struct {
	Weapon defs.WeaponID
	Shots  int
}

// TargetData — данные событий TargetHit и TargetPopped.
type TargetData struct {
	ID     types.EntityID
	Kind   defs.TargetKind
	Pos    utils.Vec2
	HP     int
	Reward int
}

// PurchaseData — данные событий покупки.
type PurchaseData struct {
	Upgrade defs.UpgradeID
	Level   int
	Cost    int
}

// SessionData — данные событий SessionStarted и GameOver.
type SessionData struct {
	ID         string
	Difficulty defs.DifficultyID
	Mode       defs.Mode
	Score      int
	Frames     int
	Wave       int
}
