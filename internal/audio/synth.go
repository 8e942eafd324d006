// internal/audio/synth.go
package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate — частота дискретизации всех сигналов.
const SampleRate = beep.SampleRate(44100)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates raw audio waves
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a new oscillator for wave generation
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope — линейная атака и затухание поверх потока.
type envelope struct {
	streamer beep.Streamer
	position int
	attack   int
	release  int
	total    int
}

// NewEnvelope ограничивает поток длительностью duration и сглаживает края.
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer: s,
		attack:   rate.N(attack),
		release:  rate.N(release),
		total:    rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	if e.position >= e.total {
		return 0, false
	}
	if left := e.total - e.position; len(samples) > left {
		samples = samples[:left]
	}
	n, ok = e.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		vol := 1.0
		if e.attack > 0 && e.position < e.attack {
			vol = float64(e.position) / float64(e.attack)
		}
		if releaseStart := e.total - e.release; e.release > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.total-e.position)/float64(e.release))
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume задаёт громкость в линейной шкале; 0 делает поток беззвучным.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

func note(freq float64, d time.Duration, wave WaveType) beep.Streamer {
	return NewEnvelope(NewOscillator(freq, d, wave, SampleRate), d, 4*time.Millisecond, d/2, SampleRate)
}

// tone отдаёт чистый синус из beep/generators, обрезанный до d.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(SampleRate, freq)
	if err != nil {
		return beep.Silence(SampleRate.N(d))
	}
	return NewEnvelope(beep.Take(SampleRate.N(d), sine), d, 2*time.Millisecond, d*2/3, SampleRate)
}

// mix смешивает потоки и обрезает результат до d.
func mix(d time.Duration, s ...beep.Streamer) beep.Streamer {
	return beep.Take(SampleRate.N(d), beep.Mix(s...))
}

// Synthesize строит поток для сигнала. Неизвестный сигнал даёт nil.
func Synthesize(cue Cue) beep.Streamer {
	switch cue {
	case CueShoot:
		return newVolume(note(880, 40*time.Millisecond, WaveSquare), 0.15)
	case CueShotgun:
		return newVolume(mix(120*time.Millisecond,
			note(0, 120*time.Millisecond, WaveNoise),
			newVolume(note(90, 120*time.Millisecond, WaveSaw), 0.6),
		), 0.3)
	case CueLaser:
		return newVolume(mix(150*time.Millisecond,
			tone(1200, 150*time.Millisecond),
			newVolume(tone(1800, 150*time.Millisecond), 0.4),
		), 0.25)
	case CuePop:
		return newVolume(mix(60*time.Millisecond,
			note(0, 60*time.Millisecond, WaveNoise),
			tone(600, 60*time.Millisecond),
		), 0.3)
	case CuePurchaseSuccess:
		return newVolume(beep.Seq(
			note(660, 80*time.Millisecond, WaveSquare),
			note(990, 120*time.Millisecond, WaveSquare),
		), 0.2)
	case CuePurchaseDenied:
		return newVolume(note(110, 200*time.Millisecond, WaveSaw), 0.3)
	case CueWaveStart:
		return newVolume(beep.Seq(
			tone(523.25, 100*time.Millisecond),
			tone(659.25, 100*time.Millisecond),
			tone(783.99, 160*time.Millisecond),
		), 0.35)
	case CueGameOver:
		return newVolume(beep.Seq(
			note(392, 220*time.Millisecond, WaveSaw),
			note(329.63, 220*time.Millisecond, WaveSaw),
			note(261.63, 420*time.Millisecond, WaveSaw),
		), 0.3)
	}
	return nil
}

// maxCueLength ограничивает длину любого сигнала.
const maxCueLength = 3 * time.Second

// RenderPCM прогоняет поток до конца и возвращает 16-битный стерео PCM (little endian).
func RenderPCM(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}
	s = beep.Take(SampleRate.N(maxCueLength), s)
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				v = math.Max(-1, math.Min(1, v))
				out = binary.LittleEndian.AppendUint16(out, uint16(int16(v*math.MaxInt16)))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}

// Bank — заранее отрендеренные сигналы.
type Bank map[Cue][]byte

// NewBank синтезирует все сигналы один раз при старте.
func NewBank() Bank {
	b := make(Bank, len(AllCues))
	for _, c := range AllCues {
		b[c] = RenderPCM(Synthesize(c))
	}
	return b
}
