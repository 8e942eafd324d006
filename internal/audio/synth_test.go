package audio

import (
	"testing"
	"time"
)

func TestEveryCueSynthesizes(t *testing.T) {
	bank := NewBank()
	for _, c := range AllCues {
		pcm := bank[c]
		if len(pcm) == 0 {
			t.Errorf("cue %q rendered no samples", c)
			continue
		}
		if len(pcm)%4 != 0 {
			t.Errorf("cue %q: %d bytes is not whole stereo 16-bit frames", c, len(pcm))
		}
		if limit := SampleRate.N(maxCueLength) * 4; len(pcm) > limit {
			t.Errorf("cue %q is %d bytes, longer than cap %d", c, len(pcm), limit)
		}
	}
	if Synthesize("unknown") != nil {
		t.Error("unknown cue should synthesize to nil")
	}
}

func TestOscillatorDuration(t *testing.T) {
	osc := NewOscillator(440, 10*time.Millisecond, WaveSine, SampleRate)
	pcm := RenderPCM(osc)
	if want := SampleRate.N(10*time.Millisecond) * 4; len(pcm) != want {
		t.Errorf("len = %d, want %d", len(pcm), want)
	}
}

func TestEnvelopeStartsSilent(t *testing.T) {
	env := NewEnvelope(NewOscillator(440, 50*time.Millisecond, WaveSquare, SampleRate), 50*time.Millisecond, 5*time.Millisecond, 5*time.Millisecond, SampleRate)
	samples := make([][2]float64, 8)
	n, ok := env.Stream(samples)
	if !ok || n != 8 {
		t.Fatalf("Stream = %d, %v", n, ok)
	}
	if samples[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 at start of attack", samples[0][0])
	}
	for i := 1; i < n; i++ {
		if samples[i][0] < -1 || samples[i][0] > 1 {
			t.Errorf("sample %d out of range: %v", i, samples[i][0])
		}
	}
}
