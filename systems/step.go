package systems

import (
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/messages"
	"github.com/automoto/parry/registry"
	"github.com/automoto/parry/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// spaceCellSize is the resolv cell edge in pixels.
const spaceCellSize = 64

// InitWorld prepares w for a run: frame clock, collision space, run state
// and event subscriptions.
func InitWorld(w donburi.World, screen gamemath.Rect) {
	registry.Frame(w).Screen = screen
	factory.CreateSpace(w, int(screen.W), int(screen.H), spaceCellSize, spaceCellSize)
	factory.CreateFlow(w)
	messages.DeflectHealEvent.Subscribe(w, onDeflectHeal)
}

// Step advances the simulation by dt seconds. A failing trigger handler
// aborts the rest of the frame and its error is returned; removals queued
// so far are applied on the next successful frame.
func Step(w donburi.World, dt float64) error {
	frame := registry.Frame(w)
	frame.Delta = dt
	frame.Tick++

	UpdatePlayers(w, dt)
	UpdateSpawners(w, dt)
	if err := UpdateEnemies(w, dt); err != nil {
		return err
	}
	UpdateEffects(w, dt)
	UpdatePendingActions(w, dt)
	UpdateFlow(w, dt)

	events.ProcessAllEvents(w)
	registry.Flush(w)
	return nil
}
