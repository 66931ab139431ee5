// internal/system/state.go
package system

import (
	"go-viking-defense/internal/event"
)

// Phase is the coarse state of a play session.
type Phase int

const (
	BuildPhase Phase = iota // between waves
	WavePhase
	DefeatPhase
)

func (p Phase) String() string {
	switch p {
	case WavePhase:
		return "wave"
	case DefeatPhase:
		return "defeat"
	default:
		return "build"
	}
}

// StateSystem follows wave events to know which phase the game is in.
type StateSystem struct {
	phase Phase
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	ss := &StateSystem{phase: BuildPhase}
	eventDispatcher.Subscribe(event.WaveStarted, ss)
	eventDispatcher.Subscribe(event.WaveEnded, ss)
	return ss
}

func (s *StateSystem) OnEvent(e event.Event) {
	if s.phase == DefeatPhase {
		return
	}
	switch e.Type {
	case event.WaveStarted:
		s.phase = WavePhase
	case event.WaveEnded:
		s.phase = BuildPhase
	}
}

// Defeat is final: later wave events are ignored.
func (s *StateSystem) Defeat() {
	s.phase = DefeatPhase
}

func (s *StateSystem) Current() Phase {
	return s.phase
}
