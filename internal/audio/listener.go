// internal/audio/listener.go
package audio

import (
	"balloon-popper/internal/defs"
	"balloon-popper/internal/event"
	"sync/atomic"
)

// Subscriber — всё, что нужно слушателю от игры.
type Subscriber interface {
	Subscribe(listener event.Listener, types ...event.EventType)
}

// Listener превращает игровые события в звуковые сигналы.
// Звук только сопровождает игру и никак на неё не влияет.
type Listener struct {
	sink  CueSink
	muted atomic.Bool
}

func NewListener(sink CueSink) *Listener {
	return &Listener{sink: sink}
}

// Events — события, у которых есть звук.
var Events = []event.EventType{
	event.ShotFired,
	event.TargetPopped,
	event.PurchaseSucceeded,
	event.PurchaseDenied,
	event.WaveStarted,
	event.GameOver,
}

// Attach подписывает слушателя на все события, у которых есть звук.
func (l *Listener) Attach(s Subscriber) {
	s.Subscribe(l, Events...)
}

func (l *Listener) SetMuted(muted bool) {
	l.muted.Store(muted)
}

// ToggleMute переключает звук и возвращает новое состояние.
func (l *Listener) ToggleMute() bool {
	for {
		old := l.muted.Load()
		if l.muted.CompareAndSwap(old, !old) {
			return !old
		}
	}
}

func (l *Listener) Muted() bool {
	return l.muted.Load()
}

func (l *Listener) OnEvent(e event.Event) {
	if l.muted.Load() || l.sink == nil {
		return
	}
	if cue, ok := CueFor(e); ok {
		l.sink.Play(cue)
	}
}

// CueFor возвращает сигнал для события, если он есть.
func CueFor(e event.Event) (Cue, bool) {
	switch e.Type {
	case event.ShotFired:
		data, _ := e.Data.(event.ShotData)
		switch data.Weapon {
		case defs.WeaponShotgun:
			return CueShotgun, true
		case defs.WeaponLaser:
			return CueLaser, true
		default:
			return CueShoot, true
		}
	case event.TargetPopped:
		return CuePop, true
	case event.PurchaseSucceeded:
		return CuePurchaseSuccess, true
	case event.PurchaseDenied:
		return CuePurchaseDenied, true
	case event.WaveStarted:
		return CueWaveStart, true
	case event.GameOver:
		return CueGameOver, true
	}
	return "", false
}
