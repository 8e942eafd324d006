// internal/system/wave.go
package system

import (
	"balloon-popper/internal/component"
	"balloon-popper/internal/defs"
	"balloon-popper/internal/entity"
	"balloon-popper/internal/event"
	"balloon-popper/internal/utils"
	"log/slog"
)

// WaveSystem — директор волн: Spawning -> Draining -> Cooldown -> следующая волна.
type WaveSystem struct {
	world           *entity.World
	lib             *defs.Library
	rng             *utils.PRNGService
	spawner         *SpawnSystem
	eventDispatcher *event.Dispatcher
}

func NewWaveSystem(world *entity.World, lib *defs.Library, rng *utils.PRNGService, spawner *SpawnSystem, eventDispatcher *event.Dispatcher) *WaveSystem {
	ws := &WaveSystem{
		world:           world,
		lib:             lib,
		rng:             rng,
		spawner:         spawner,
		eventDispatcher: eventDispatcher,
	}
	eventDispatcher.Subscribe(ws, event.SessionStarted)
	return ws
}

func (s *WaveSystem) OnEvent(e event.Event) {
	if e.Type == event.SessionStarted && s.world.Session.Mode == defs.ModeWaves {
		s.StartWave(1)
	}
}

func (s *WaveSystem) Update() {
	wave := s.world.Wave
	if wave == nil {
		return
	}
	rules := s.lib.Waves

	switch wave.Phase {
	case component.WaveSpawning:
		if wave.SpawnTimer <= 0 {
			s.spawnEnemy(wave)
			wave.EnemiesToSpawn--
			wave.SpawnTimer = wave.SpawnInterval
		} else {
			wave.SpawnTimer--
		}
		if wave.EnemiesToSpawn <= 0 {
			wave.Phase = component.WaveDraining
		}
	case component.WaveDraining:
		if len(s.world.Targets) == 0 {
			wave.Phase = component.WaveCooldown
			wave.CooldownTimer = rules.CooldownFrames
			s.eventDispatcher.Dispatch(event.Event{Type: event.WaveCleared, Data: sessionData(s.world.Session)})
		}
	case component.WaveCooldown:
		wave.CooldownTimer--
		if wave.CooldownTimer <= 0 {
			s.StartWave(wave.Number + 1)
		}
	}
}

// StartWave сбрасывает директора на волну с номером n.
func (s *WaveSystem) StartWave(n int) {
	rules := s.lib.Waves
	diff := s.lib.Difficulty(s.world.Session.Difficulty)
	s.world.Wave = &component.Wave{
		Number:         n,
		Phase:          component.WaveSpawning,
		EnemiesToSpawn: rules.CountFor(n),
		SpawnInterval:  rules.SpawnIntervalFor(n, diff.SpawnFactor),
	}
	s.world.Session.Wave = n
	slog.Debug("wave started", "session", s.world.Session.ID, "wave", n, "count", s.world.Wave.EnemiesToSpawn)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: sessionData(s.world.Session)})
}

func (s *WaveSystem) spawnEnemy(wave *component.Wave) {
	rules := s.lib.Waves
	kind := defs.TargetStandard
	if wave.Number >= rules.SeekerWave {
		kind = s.rng.ChooseWeighted(rules.SeekerWeights)
	}
	s.spawner.Spawn(kind, rules.SpeedMultiplier(wave.Number), rules.HPMultiplier(wave.Number))
}
