// internal/defs/library.go
package defs

import "image/color"

// Library собирает все определения, нужные одной игровой сессии.
type Library struct {
	Difficulties map[DifficultyID]DifficultyDefinition `json:"difficulties"`
	Weapons      map[WeaponID]WeaponDefinition         `json:"weapons"`
	Upgrades     map[UpgradeID]UpgradeDefinition       `json:"upgrades"`
	Waves        WaveRules                             `json:"waves"`

	// Порядок отображения в меню и в магазине.
	DifficultyOrder []DifficultyID `json:"difficulty_order"`
	WeaponOrder     []WeaponID     `json:"weapon_order"`
	UpgradeOrder    []UpgradeID    `json:"upgrade_order"`
}

// Difficulty возвращает определение сложности; неизвестный ID даёт лёгкую.
func (l *Library) Difficulty(id DifficultyID) DifficultyDefinition {
	if d, ok := l.Difficulties[id]; ok {
		return d
	}
	return l.Difficulties[DifficultyEasy]
}

// Weapon возвращает определение оружия и признак его наличия.
func (l *Library) Weapon(id WeaponID) (WeaponDefinition, bool) {
	w, ok := l.Weapons[id]
	return w, ok
}

// DefaultWeapon возвращает первое оружие, доступное без покупки.
func (l *Library) DefaultWeapon() WeaponID {
	for _, id := range l.WeaponOrder {
		if w, ok := l.Weapons[id]; ok && w.Default {
			return id
		}
	}
	return WeaponStandard
}

// UpgradesFor возвращает улучшения, доступные в режиме, в порядке магазина.
func (l *Library) UpgradesFor(mode Mode) []UpgradeDefinition {
	var out []UpgradeDefinition
	for _, id := range l.UpgradeOrder {
		def, ok := l.Upgrades[id]
		if ok && def.AvailableIn(mode) {
			out = append(out, def)
		}
	}
	return out
}

// DefaultLibrary returns the built-in definitions. Every call returns a fresh copy.
func DefaultLibrary() *Library {
	return &Library{
		Difficulties: map[DifficultyID]DifficultyDefinition{
			DifficultyEasy: {
				ID: DifficultyEasy, Name: "Easy",
				SpeedMultiplier: 1, HPMultiplier: 1, SpawnFactor: 1,
				Palette:    PaletteDef{HueMin: 0, HueMax: 360, Saturation: 0.7, Lightness: 0.5},
				Background: color.RGBA{76, 175, 80, 255},
			},
			DifficultyMedium: {
				ID: DifficultyMedium, Name: "Medium",
				SpeedMultiplier: 1.5, HPMultiplier: 2, SpawnFactor: 0.85,
				Palette:    PaletteDef{HueMin: 0, HueMax: 360, Saturation: 0.7, Lightness: 0.5},
				Background: color.RGBA{76, 175, 80, 255},
			},
			DifficultyNuclear: {
				ID: DifficultyNuclear, Name: "Nuclear",
				SpeedMultiplier: 2.5, HPMultiplier: 3, SpawnFactor: 0.5,
				HalveSpawnInterval: true,
				Palette:            PaletteDef{HueMin: 80, HueMax: 120, Saturation: 1, Lightness: 0.5},
				Background:         color.RGBA{5, 17, 5, 255},
			},
		},
		Weapons: map[WeaponID]WeaponDefinition{
			WeaponStandard: {
				ID: WeaponStandard, Name: "Darts", Default: true,
				DelayFactor: 1, Speed: 15, Radius: 5, Damage: 1, Lifetime: -1,
				Recoil: 3, Color: color.RGBA{255, 255, 0, 255},
			},
			WeaponShotgun: {
				ID: WeaponShotgun, Name: "Shotgun",
				DelayFactor: 2.5, Speed: 13, Radius: 4, Damage: 1, Lifetime: 28,
				Pellets: 5, PelletSpread: 0.09,
				Recoil: 9, Color: color.RGBA{255, 170, 0, 255},
			},
			WeaponLaser: {
				ID: WeaponLaser, Name: "Laser",
				DelayFactor: 3, Damage: 3, HitScan: true,
				BeamWidth: 8, BeamLife: 10,
				Recoil: 5, Color: color.RGBA{255, 40, 90, 255},
			},
		},
		Upgrades: map[UpgradeID]UpgradeDefinition{
			UpgradeFireRate: {
				ID: UpgradeFireRate, Name: "Fire Rate", Kind: UpgradeLeveled,
				InitialCost: 100, MaxLevel: 5, Growth: 1.5,
				Modes: []Mode{ModeClassic, ModeWaves},
			},
			UpgradeMultiShot: {
				ID: UpgradeMultiShot, Name: "Multi Shot", Kind: UpgradeLeveled,
				InitialCost: 500, MaxLevel: 5, Growth: 1.5,
				Modes: []Mode{ModeClassic, ModeWaves},
			},
			UpgradeShotgun: {
				ID: UpgradeShotgun, Name: "Shotgun", Kind: UpgradeUnlock,
				InitialCost: 750, Weapon: WeaponShotgun,
				Modes: []Mode{ModeWaves},
			},
			UpgradeLaser: {
				ID: UpgradeLaser, Name: "Laser", Kind: UpgradeUnlock,
				InitialCost: 1500, Weapon: WeaponLaser,
				Modes: []Mode{ModeWaves},
			},
		},
		Waves: WaveRules{
			BaseCount:      5,
			CountIncrement: 3,
			BaseInterval:   60,
			IntervalStep:   4,
			MinInterval:    15,
			CooldownFrames: 180,
			SpeedGrowth:    0.08,
			HPGrowth:       0.15,
			SeekerWave:     3,
			SeekerWeights: []SpawnWeight{
				{Kind: TargetStandard, Weight: 3},
				{Kind: TargetSeeker, Weight: 1},
			},
			SeekerSpeed: 0.7,
			SeekerHP:    2,
		},
		DifficultyOrder: []DifficultyID{DifficultyEasy, DifficultyMedium, DifficultyNuclear},
		WeaponOrder:     []WeaponID{WeaponStandard, WeaponShotgun, WeaponLaser},
		UpgradeOrder:    []UpgradeID{UpgradeFireRate, UpgradeMultiShot, UpgradeShotgun, UpgradeLaser},
	}
}
