package factory

import (
	"github.com/automoto/parry/archetypes"
	"github.com/automoto/parry/components"
	"github.com/yohamta/donburi"
)

// CreateFlow returns the run state singleton, creating it on first call.
func CreateFlow(w donburi.World) *donburi.Entry {
	if e, ok := components.Flow.First(w); ok {
		return e
	}
	return archetypes.Flow.Spawn(w)
}

// CreatePendingAction schedules kind to fire on target after delay seconds.
func CreatePendingAction(w donburi.World, kind components.PendingKind, delay float64, target *donburi.Entry) *donburi.Entry {
	e := archetypes.PendingAction.Spawn(w)
	components.PendingAction.SetValue(e, components.PendingActionData{
		Remaining: delay,
		Kind:      kind,
		Target:    target,
	})
	return e
}
