// internal/component/target.go
package component

import (
	"balloon-popper/internal/defs"
	"balloon-popper/internal/types"
	"balloon-popper/internal/utils"
	"image/color"
)

// Target представляет шар, летящий к турели.
type Target struct {
	ID     types.EntityID
	Pos    utils.Vec2
	Radius float64
	HP     int
	MaxHP  int
	Speed  float64
	Kind   defs.TargetKind
	Color  color.RGBA
	// WobblePhase сдвигает синусоиду покачивания, чтобы шары не качались синхронно.
	WobblePhase float64
	// Wobble: амплитуда покачивания; 0 отключает его.
	Wobble float64
	Reward int
}

// Alive сообщает, остались ли у цели очки прочности.
func (t *Target) Alive() bool {
	return t.HP > 0
}
