// internal/audio/playback/player.go
package playback

import (
	"balloon-popper/internal/audio"
	"log/slog"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Player проигрывает заранее синтезированные сигналы через аудиоконтекст ebiten.
type Player struct {
	ctx    *ebaudio.Context
	bank   audio.Bank
	volume float64
}

// NewPlayer создаёт аудиоконтекст. В процессе может существовать только один
// контекст ebiten, поэтому Player создаётся один раз на всё приложение.
func NewPlayer(volume float64) *Player {
	ctx := ebaudio.CurrentContext()
	if ctx == nil {
		ctx = ebaudio.NewContext(int(audio.SampleRate))
	}
	bank := audio.NewBank()
	slog.Debug("audio bank synthesized", "cues", len(bank), "sample_rate", int(audio.SampleRate))
	return &Player{ctx: ctx, bank: bank, volume: volume}
}

// Play запускает сигнал и сразу возвращается.
func (p *Player) Play(cue audio.Cue) {
	pcm, ok := p.bank[cue]
	if !ok || len(pcm) == 0 {
		return
	}
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(p.volume)
	player.Play()
}
