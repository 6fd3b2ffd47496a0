package config

// StateID identifies a player state.
type StateID int

const (
	StateNone StateID = iota
	Idle
	Attack
	Defend
	Hurt
	Dead
)

var stateNames = map[StateID]string{
	StateNone: "none",
	Idle:      "idle",
	Attack:    "attack",
	Defend:    "defend",
	Hurt:      "hurt",
	Dead:      "dead",
}

func (s StateID) String() string {
	if n, ok := stateNames[s]; ok {
		return n
	}
	return "unknown"
}

// Interactive reports whether input may drive facing and intents in this state.
func (s StateID) Interactive() bool {
	return s == Idle || s == Attack || s == Defend
}
