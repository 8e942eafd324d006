// internal/system/state.go
package system

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/entity"
	"balloon-popper/internal/event"
	"balloon-popper/internal/interfaces"
	"balloon-popper/internal/utils"
	"log/slog"

	"github.com/google/uuid"
)

// StateSystem ведёт жизненный цикл сессии: NotStarted -> Running -> Ended.
type StateSystem struct {
	world           *entity.World
	lib             *defs.Library
	gameContext     interfaces.GameContext // Используем интерфейс из interfaces
	eventDispatcher *event.Dispatcher
	economy         *EconomySystem
}

func NewStateSystem(world *entity.World, lib *defs.Library, gameContext interfaces.GameContext, eventDispatcher *event.Dispatcher, economy *EconomySystem) *StateSystem {
	return &StateSystem{
		world:           world,
		lib:             lib,
		gameContext:     gameContext,
		eventDispatcher: eventDispatcher,
		economy:         economy,
	}
}

// Start начинает новую сессию с чистого мира.
func (s *StateSystem) Start(difficulty defs.DifficultyID, mode defs.Mode) {
	if _, ok := s.lib.Difficulties[difficulty]; !ok {
		difficulty = defs.DifficultyEasy
	}
	if mode != defs.ModeWaves {
		mode = defs.ModeClassic
	}

	s.gameContext.ClearTargets()
	s.gameContext.ClearProjectiles()
	s.world.Clear()

	w, h := s.gameContext.Viewport()
	s.world.Width, s.world.Height = w, h
	s.world.Session = &component.Session{
		ID:         uuid.NewString(),
		State:      component.SessionRunning,
		Difficulty: difficulty,
		Mode:       mode,
	}
	s.world.Turret = &component.Turret{
		Center: s.world.Center(),
		Weapon: s.lib.DefaultWeapon(),
	}
	s.world.Turret.Angle = utils.Angle(s.world.Turret.Center, s.world.Pointer)
	s.economy.ResetUpgrades()

	slog.Info("session started", "session", s.world.Session.ID, "difficulty", difficulty, "mode", mode)
	s.eventDispatcher.Dispatch(event.Event{Type: event.SessionStarted, Data: sessionData(s.world.Session)})
}

// End завершает сессию. Повторные вызовы ничего не делают и возвращают false.
func (s *StateSystem) End() bool {
	if !s.world.Running() {
		return false
	}
	s.world.Session.State = component.SessionEnded
	sess := s.world.Session
	slog.Info("game over", "session", sess.ID, "score", sess.Score, "frames", sess.Frames, "wave", sess.Wave)
	s.eventDispatcher.Dispatch(event.Event{Type: event.GameOver, Data: sessionData(sess)})
	return true
}

func (s *StateSystem) Current() component.SessionState {
	return s.world.Session.State
}

func sessionData(sess *component.Session) event.SessionData {
	return event.SessionData{
		ID:         sess.ID,
		Difficulty: sess.Difficulty,
		Mode:       sess.Mode,
		Score:      sess.Score,
		Frames:     sess.Frames,
		Wave:       sess.Wave,
	}
}
