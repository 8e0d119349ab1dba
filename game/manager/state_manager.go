package manager

import (
	"fmt"
	"log"

	"github.com/google/uuid"
)

// GameState is the session phase.
type GameState int

const (
	Playing GameState = iota
	GameOver
	BoardFull
)

func (s GameState) String() string {
	switch s {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	case BoardFull:
		return "board full"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// StateManager owns the Playing / GameOver / BoardFull transitions.
type StateManager struct {
	state     GameState
	sessionID string
	sessions  int
	cause     Verdict
	log       *log.Logger
}

// NewStateManager starts in Playing. An empty sessionID gets a fresh UUID.
func NewStateManager(sessionID string, logger *log.Logger) *StateManager {
	if sessionID == "" {
		sessionID = uuid.New().String()
	}
	sm := &StateManager{
		state:     Playing,
		sessionID: sessionID,
		sessions:  1,
		log:       logger,
	}
	sm.log.Printf("session %d started", sm.sessions)
	return sm
}

func (sm *StateManager) State() GameState {
	return sm.state
}

// SessionID identifies the running game for log correlation.
func (sm *StateManager) SessionID() string {
	return sm.sessionID
}

// Sessions counts play sessions, including the current one.
func (sm *StateManager) Sessions() int {
	return sm.sessions
}

// Cause is the verdict that ended the last session.
func (sm *StateManager) Cause() Verdict {
	return sm.cause
}

// End moves Playing to GameOver. Other states are left untouched.
func (sm *StateManager) End(cause Verdict) bool {
	if sm.state != Playing {
		return false
	}
	sm.state = GameOver
	sm.cause = cause
	switch cause {
	case WallCollision:
		sm.log.Print("snake collided with wall")
	case SelfCollision:
		sm.log.Print("snake collided with itself")
	}
	sm.log.Printf("Game Over! (session %d)", sm.sessions)
	return true
}

// Fill moves Playing to BoardFull.
func (sm *StateManager) Fill() bool {
	if sm.state != Playing {
		return false
	}
	sm.state = BoardFull
	sm.cause = NoCollision
	sm.log.Printf("board full, snake wins (session %d)", sm.sessions)
	return true
}

// Restart returns to Playing from either terminal state.
func (sm *StateManager) Restart() bool {
	if sm.state == Playing {
		return false
	}
	sm.state = Playing
	sm.cause = NoCollision
	sm.sessions++
	sm.log.Printf("session %d started", sm.sessions)
	return true
}
