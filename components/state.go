package components

import (
	"github.com/automoto/parry/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    float64 // seconds in CurrentState
}

// Enter switches to s and restarts the state timer.
func (s *StateData) Enter(next config.StateID) {
	s.PreviousState = s.CurrentState
	s.CurrentState = next
	s.StateTimer = 0
}

var State = donburi.NewComponentType[StateData]()
