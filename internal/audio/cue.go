// internal/audio/cue.go
package audio

//go:generate go tool mockgen -destination=./mocks/cue_sink_mock.go -package=mocks . CueSink

// Cue — короткий звуковой сигнал игрового события.
type Cue string

const (
	CueShoot           Cue = "shoot"
	CueShotgun         Cue = "shotgun-fire"
	CueLaser           Cue = "laser-fire"
	CuePop             Cue = "pop"
	CuePurchaseSuccess Cue = "purchase-success"
	CuePurchaseDenied  Cue = "purchase-denied"
	CueWaveStart       Cue = "wave-start"
	CueGameOver        Cue = "game-over"
)

// AllCues перечисляет все сигналы в стабильном порядке.
var AllCues = []Cue{
	CueShoot, CueShotgun, CueLaser, CuePop,
	CuePurchaseSuccess, CuePurchaseDenied, CueWaveStart, CueGameOver,
}

// CueSink воспроизводит сигналы. Реализация не должна блокировать игровой цикл.
type CueSink interface {
	Play(cue Cue)
}
