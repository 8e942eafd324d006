// internal/state/env.go
package state

import (
	"balloon-popper/internal/app"
	"balloon-popper/internal/audio"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/event"
	"balloon-popper/internal/leaderboard"
	"log/slog"
)

// Env — то, что разделяют между собой все состояния.
type Env struct {
	Game    *app.Game
	Library *defs.Library
	Scores  leaderboard.Store
	Audio   *audio.Listener // nil: без звука
}

// NewEnv связывает игру со звуком. Звук есть только в режиме волн.
func NewEnv(game *app.Game, scores leaderboard.Store, listener *audio.Listener) *Env {
	if scores == nil {
		scores = leaderboard.NewMemoryStore()
	}
	env := &Env{Game: game, Library: game.Library, Scores: scores, Audio: listener}
	if listener != nil {
		game.Subscribe(wavesOnly{game: game, next: listener}, audio.Events...)
	}
	return env
}

// LoadScores читает таблицу рекордов. Ошибка не мешает игре.
func (e *Env) LoadScores() []leaderboard.Entry {
	list, err := e.Scores.Load()
	if err != nil {
		slog.Warn("leaderboard unavailable", "error", err)
		return nil
	}
	return list
}

// wavesOnly пропускает события к слушателю только в режиме волн.
type wavesOnly struct {
	game *app.Game
	next event.Listener
}

func (w wavesOnly) OnEvent(e event.Event) {
	if w.game.World.Session.Mode == defs.ModeWaves {
		w.next.OnEvent(e)
	}
}
