package audio_test

import (
	"balloon-popper/internal/audio"
	"balloon-popper/internal/audio/mocks"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/event"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestListenerMapsEventsToCues(t *testing.T) {
	tests := []struct {
		name string
		ev   event.Event
		want audio.Cue
	}{
		{"dart", event.Event{Type: event.ShotFired, Data: event.ShotData{Weapon: defs.WeaponStandard}}, audio.CueShoot},
		{"shotgun", event.Event{Type: event.ShotFired, Data: event.ShotData{Weapon: defs.WeaponShotgun}}, audio.CueShotgun},
		{"laser", event.Event{Type: event.ShotFired, Data: event.ShotData{Weapon: defs.WeaponLaser}}, audio.CueLaser},
		{"pop", event.Event{Type: event.TargetPopped}, audio.CuePop},
		{"bought", event.Event{Type: event.PurchaseSucceeded}, audio.CuePurchaseSuccess},
		{"denied", event.Event{Type: event.PurchaseDenied}, audio.CuePurchaseDenied},
		{"wave", event.Event{Type: event.WaveStarted}, audio.CueWaveStart},
		{"game over", event.Event{Type: event.GameOver}, audio.CueGameOver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			sink := mocks.NewMockCueSink(ctrl)
			sink.EXPECT().Play(tt.want).Times(1)

			audio.NewListener(sink).OnEvent(tt.ev)
		})
	}
}

func TestListenerIgnoresSilentEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockCueSink(ctrl)

	l := audio.NewListener(sink)
	l.OnEvent(event.Event{Type: event.TargetHit})
	l.OnEvent(event.Event{Type: event.WeaponEquipped})
	l.OnEvent(event.Event{Type: event.WaveCleared})
}

func TestListenerMute(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockCueSink(ctrl)
	sink.EXPECT().Play(audio.CuePop).Times(1)

	l := audio.NewListener(sink)
	if !l.ToggleMute() || !l.Muted() {
		t.Fatal("ToggleMute should mute")
	}
	l.OnEvent(event.Event{Type: event.TargetPopped})

	l.SetMuted(false)
	l.OnEvent(event.Event{Type: event.TargetPopped})
}

func TestListenerAttach(t *testing.T) {
	ctrl := gomock.NewController(t)
	sink := mocks.NewMockCueSink(ctrl)
	sink.EXPECT().Play(audio.CueWaveStart).Times(1)

	d := event.NewDispatcher()
	audio.NewListener(sink).Attach(subscriberFunc(d.Subscribe))
	d.Dispatch(event.Event{Type: event.WaveStarted})
	d.Dispatch(event.Event{Type: event.TargetHit})
}

type subscriberFunc func(event.Listener, ...event.EventType)

func (f subscriberFunc) Subscribe(l event.Listener, types ...event.EventType) { f(l, types...) }
