// internal/component/visual.go
package component

import (
	"balloon-popper/internal/utils"
	"image/color"
)

// Particle — косметическая частица взрыва. На игру не влияет.
type Particle struct {
	Pos   utils.Vec2
	Angle float64
	Speed float64
	Color color.RGBA
	Alpha float64
	Decay float64
}

// Beam представляет собой визуальный след лазерного выстрела.
// Попадание уже посчитано в момент выстрела, луч только гаснет.
type Beam struct {
	From, To utils.Vec2
	Color    color.RGBA
	Life     int // Сколько кадров луч ещё виден
	MaxLife  int
}
