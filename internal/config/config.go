// internal/config/config.go
package config

import (
	"image/color"

	"golang.org/x/image/colornames"
)

const (
	ScreenWidth  = 1200
	ScreenHeight = 900
	WindowTitle  = "Pop the Balloons"

	// Турель
	TurretBodyRadius      = 25.0
	TurretCollisionRadius = 40.0 // враг ближе (40 + r): конец игры
	BarrelLength          = 40.0
	BarrelWidth           = 20.0
	BaseFireInterval      = 12 // кадров между выстрелами без улучшений
	FireIntervalStep      = 2  // каждый уровень скорострельности убирает столько кадров
	MinFireInterval       = 3
	ShotSpread            = 0.2 // радиан между стволами мульти-выстрела
	MuzzleFlashFrames     = 3
	RecoilDamping         = 0.8

	// Снаряды
	ProjectileBoundsMargin = 100.0

	// Цели
	TargetSpawnPadding = 50.0
	TargetRadiusMin    = 20.0
	TargetRadiusMax    = 30.0
	TargetSpeedMin     = 0.5
	TargetSpeedMax     = 2.0
	TargetHPMin        = 0.5
	TargetHPMax        = 1.5
	WobbleAmplitude    = 0.8 // пикселей за кадр поперёк направления движения
	WobbleFrequency    = 0.1 // радиан за кадр
	PopReward          = 10
	SeekerRewardFactor = 2

	// Частицы
	HitParticles     = 3
	PopParticles     = 10
	ParticleRadius   = 3.0
	ParticleSpeedMax = 3.0
	ParticleDecayMin = 0.02
	ParticleDecayMax = 0.05
	ParticleMaxAlive = 2000

	// Классический режим: непрерывная кривая появления
	ClassicSpawnInterval    = 90
	ClassicMinSpawnInterval = 20
	ClassicSpawnRampFrames  = 300

	// Таблица рекордов
	LeaderboardKey  = "popTheBalloons_leaderboard"
	LeaderboardSize = 10
	DefaultName     = "Anonymous"
	MaxNameLength   = 16

	GridSize = 100.0
)

var (
	BackgroundColor  = color.RGBA{76, 175, 80, 255}
	GridColor        = color.RGBA{0, 0, 0, 13}
	TurretColor      = colornames.Dimgray
	TurretStroke     = color.RGBA{34, 34, 34, 255}
	BarrelColor      = color.RGBA{51, 51, 51, 255}
	BarrelStroke     = color.RGBA{17, 17, 17, 255}
	MuzzleFlashColor = color.RGBA{255, 170, 0, 255}
	HitParticleColor = colornames.White
	ShineColor       = color.RGBA{77, 77, 77, 77} // белый, 30% (premultiplied)
	StringColor      = color.RGBA{238, 238, 238, 255}
	SeekerColor      = colornames.Darkorchid
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	TextDarkColor    = color.RGBA{20, 20, 30, 255}
	PanelColor       = color.RGBA{20, 20, 30, 220}
	ButtonColor      = color.RGBA{70, 130, 180, 255}
	ButtonHover      = color.RGBA{100, 160, 210, 255}
	ButtonDisabled   = color.RGBA{90, 90, 90, 255}
	BarColor         = colornames.Gold
	OverlayColor     = color.RGBA{0, 0, 0, 128}
	WaveTextColor    = color.RGBA{50, 100, 255, 255}
	BossWaveColor    = color.RGBA{220, 60, 60, 255}
)
