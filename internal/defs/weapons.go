// internal/defs/weapons.go
package defs

import "image/color"

// WeaponDefinition holds all the static data for one turret weapon.
type WeaponDefinition struct {
	ID      WeaponID `json:"id"`
	Name    string   `json:"name"`
	Default bool     `json:"default"` // доступно без покупки
	// DelayFactor умножает стандартный интервал стрельбы.
	DelayFactor float64 `json:"delay_factor"`
	Speed       float64 `json:"speed"`
	Radius      float64 `json:"radius"`
	Damage      int     `json:"damage"`
	// Lifetime в кадрах; при -1 снаряд живёт, пока не покинет экран.
	Lifetime int `json:"lifetime"`
	// Pellets: сколько дробин в одном выстреле (для дробовика).
	Pellets      int     `json:"pellets"`
	PelletSpread float64 `json:"pellet_spread"`
	HitScan      bool    `json:"hit_scan"`
	// BeamWidth: допуск попадания луча сверх радиуса цели.
	BeamWidth float64    `json:"beam_width"`
	BeamLife  int        `json:"beam_life"`
	Recoil    float64    `json:"recoil"`
	Color     color.RGBA `json:"color"`
}
