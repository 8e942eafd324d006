// internal/audio/speaker/speaker.go
package speaker

import (
	"balloon-popper/internal/audio"
	"time"

	"github.com/gopxl/beep"
	bspeaker "github.com/gopxl/beep/speaker"
)

// Player проигрывает сигналы через beep/speaker. Используется терминальным
// хостом, у которого нет аудиоконтекста ebiten.
type Player struct {
	buffers map[audio.Cue]*beep.Buffer
}

// NewPlayer открывает аудиоустройство и буферизует все сигналы.
// Ошибка не фатальна: игра может идти без звука.
func NewPlayer() (*Player, error) {
	if err := bspeaker.Init(audio.SampleRate, audio.SampleRate.N(time.Second/10)); err != nil {
		return nil, err
	}
	format := beep.Format{SampleRate: audio.SampleRate, NumChannels: 2, Precision: 2}
	p := &Player{buffers: make(map[audio.Cue]*beep.Buffer, len(audio.AllCues))}
	for _, c := range audio.AllCues {
		s := audio.Synthesize(c)
		if s == nil {
			continue
		}
		buf := beep.NewBuffer(format)
		buf.Append(beep.Take(audio.SampleRate.N(3*time.Second), s))
		p.buffers[c] = buf
	}
	return p, nil
}

// Play ставит сигнал в микшер speaker и сразу возвращается.
func (p *Player) Play(cue audio.Cue) {
	buf, ok := p.buffers[cue]
	if !ok || buf.Len() == 0 {
		return
	}
	bspeaker.Play(buf.Streamer(0, buf.Len()))
}

// Close останавливает воспроизведение и освобождает устройство.
func (p *Player) Close() {
	bspeaker.Clear()
	bspeaker.Close()
}
