// internal/component/session.go
package component

import "balloon-popper/internal/defs"

// SessionState — состояние игровой сессии.
type SessionState int

const (
	SessionNotStarted SessionState = iota
	SessionRunning
	SessionEnded
)

func (s SessionState) String() string {
	switch s {
	case SessionNotStarted:
		return "not_started"
	case SessionRunning:
		return "running"
	case SessionEnded:
		return "ended"
	}
	return "unknown"
}

// Session хранит счёт, кошелёк и счётчики одной игры.
type Session struct {
	ID         string
	State      SessionState
	Difficulty defs.DifficultyID
	Mode       defs.Mode
	Score      int
	Money      int
	Frames     int
	Wave       int
	Pops       int
}
