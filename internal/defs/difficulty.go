// internal/defs/difficulty.go
package defs

import "image/color"

// PaletteDef задаёт диапазон оттенков HSL, из которого красятся цели.
type PaletteDef struct {
	HueMin     float64 `json:"hue_min"`
	HueMax     float64 `json:"hue_max"`
	Saturation float64 `json:"saturation"`
	Lightness  float64 `json:"lightness"`
}

// DifficultyDefinition holds the multipliers of one difficulty tier.
type DifficultyDefinition struct {
	ID              DifficultyID `json:"id"`
	Name            string       `json:"name"`
	SpeedMultiplier float64      `json:"speed_multiplier"`
	HPMultiplier    float64      `json:"hp_multiplier"`
	// SpawnFactor масштабирует задержку между появлениями в режиме волн.
	SpawnFactor float64 `json:"spawn_factor"`
	// HalveSpawnInterval: в классическом режиме интервал появления делится пополам.
	HalveSpawnInterval bool       `json:"halve_spawn_interval"`
	Palette            PaletteDef `json:"palette"`
	Background         color.RGBA `json:"background"`
}
