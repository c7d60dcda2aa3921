package components

import (
	"github.com/yohamta/donburi"

	"github.com/automoto/doomerang-brawl/config"
)

// StateData tracks the presentation state across ticks.
type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds in CurrentState
}

// Enter switches to next, resetting the timer. It reports whether the state changed.
func (s *StateData) Enter(next config.StateID) bool {
	if next == s.CurrentState {
		return false
	}
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
	return true
}

var State = donburi.NewComponentType[StateData]()
