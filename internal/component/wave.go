// internal/component/wave.go
package component

// WavePhase — фаза директора волн.
type WavePhase int

const (
	WaveSpawning WavePhase = iota // ещё есть кого выпускать
	WaveDraining                  // квота исчерпана, но цели ещё живы
	WaveCooldown                  // пауза перед следующей волной
)

func (p WavePhase) String() string {
	switch p {
	case WaveSpawning:
		return "spawning"
	case WaveDraining:
		return "draining"
	case WaveCooldown:
		return "cooldown"
	}
	return "unknown"
}

// Wave — внутреннее состояние директора волн.
type Wave struct {
	Number         int
	Phase          WavePhase
	EnemiesToSpawn int
	SpawnTimer     int // кадров до следующего появления
	SpawnInterval  int
	CooldownTimer  int
}
