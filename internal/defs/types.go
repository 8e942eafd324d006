// internal/defs/types.go
package defs

// WeaponID — тег оружия турели.
type WeaponID string

const (
	WeaponStandard WeaponID = "standard"
	WeaponShotgun  WeaponID = "shotgun"
	WeaponLaser    WeaponID = "laser"
)

// TargetKind — поведенческий тег цели.
type TargetKind string

const (
	TargetStandard TargetKind = "standard" // летит к центру с лёгким покачиванием
	TargetSeeker   TargetKind = "seeker"   // постоянно преследует турель
)

// DifficultyID — уровень сложности, выбираемый в меню.
type DifficultyID string

const (
	DifficultyEasy    DifficultyID = "easy"
	DifficultyMedium  DifficultyID = "medium"
	DifficultyNuclear DifficultyID = "nuclear"
)

// UpgradeID — идентификатор улучшения в магазине.
type UpgradeID string

const (
	UpgradeFireRate  UpgradeID = "fireRate"
	UpgradeMultiShot UpgradeID = "multiShot"
	UpgradeShotgun   UpgradeID = "shotgun"
	UpgradeLaser     UpgradeID = "laser"
)

// UpgradeKind различает улучшения с уровнями и одноразовые разблокировки оружия.
type UpgradeKind string

const (
	UpgradeLeveled UpgradeKind = "leveled"
	UpgradeUnlock  UpgradeKind = "unlock"
)

// Mode — вариант игры.
type Mode string

const (
	ModeClassic Mode = "classic" // непрерывный поток шаров, два улучшения
	ModeWaves   Mode = "waves"   // волны, арсенал оружия, отдача, звук
)
