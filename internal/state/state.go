// internal/state/state.go

// Package state holds the screens of the ebiten debug viewer. Each
// screen drives an *app.Game; none of the simulation packages know
// about it.
package state

import "github.com/hajimehoshi/ebiten/v2"

type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// StateMachine forwards Update and Draw to the active screen. With no
// screen set both are no-ops.
type StateMachine struct {
	current State
}

func NewStateMachine() *StateMachine { return &StateMachine{} }

// SetState exits the old screen before entering the new one. Passing
// nil leaves the machine idle.
func (sm *StateMachine) SetState(next State) {
	if prev := sm.current; prev != nil {
		prev.Exit()
	}
	if sm.current = next; next != nil {
		next.Enter()
	}
}

func (sm *StateMachine) Current() State { return sm.current }

func (sm *StateMachine) Update(deltaTime float64) {
	if s := sm.current; s != nil {
		s.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if s := sm.current; s != nil {
		s.Draw(screen)
	}
}
