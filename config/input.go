package config

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionAttack
	ActionDefend
	ActionPause
	ActionMenuUp
	ActionMenuDown
	ActionMenuSelect
	ActionMenuBack
	ActionDebugColliders
	ActionCount // Must be last - used for array sizing
)

var actionNames = [ActionCount]string{
	ActionNone:           "none",
	ActionMoveLeft:       "move_left",
	ActionMoveRight:      "move_right",
	ActionAttack:         "attack",
	ActionDefend:         "defend",
	ActionPause:          "pause",
	ActionMenuUp:         "menu_up",
	ActionMenuDown:       "menu_down",
	ActionMenuSelect:     "menu_select",
	ActionMenuBack:       "menu_back",
	ActionDebugColliders: "debug_colliders",
}

func (a ActionID) String() string {
	if a < 0 || a >= ActionCount {
		return "unknown"
	}
	return actionNames[a]
}
