package components

import "github.com/yohamta/donburi"

// PendingKind is the action a PendingActionData performs when it expires.
type PendingKind int

const (
	PendingNone PendingKind = iota
	PendingGameOver
)

// PendingActionData counts down and then fires once.
type PendingActionData struct {
	Remaining float64
	Kind      PendingKind
	Target    *donburi.Entry
	Fired     bool
}

var PendingAction = donburi.NewComponentType[PendingActionData]()

// FlowData is the per-run state read by the gameplay scene and HUD.
type FlowData struct {
	GameOver bool
	Player   *donburi.Entry
	Elapsed  float64 // seconds survived

	HealFlash float64 // seconds left on the deflect heal label
}

var Flow = donburi.NewComponentType[FlowData]()
