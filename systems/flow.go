package systems

import (
	"fmt"
	"log"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/messages"
	"github.com/automoto/parry/registry"
	"github.com/yohamta/donburi"
)

// UpdatePendingActions counts down deferred actions and fires each once.
func UpdatePendingActions(w donburi.World, dt float64) {
	for _, e := range registry.Snapshot(w, components.PendingAction) {
		pa := components.PendingAction.Get(e)
		if pa.Fired {
			continue
		}
		pa.Remaining -= dt
		if pa.Remaining > 0 {
			continue
		}
		pa.Fired = true

		switch pa.Kind {
		case components.PendingGameOver:
			requestGameOver(w, pa.Target)
		}
		registry.Remove(w, e)
	}
}

func requestGameOver(w donburi.World, player *donburi.Entry) {
	e, ok := components.Flow.First(w)
	if !ok {
		return
	}
	flow := components.Flow.Get(e)
	if flow.GameOver {
		return
	}
	flow.GameOver = true
	log.Printf("Game over after %s", FormatElapsed(flow.Elapsed))
	messages.GameOverEvent.Publish(w, messages.GameOver{Player: player, Elapsed: flow.Elapsed})
}

// UpdateFlow advances the survival timer while the player is alive.
func UpdateFlow(w donburi.World, dt float64) {
	e, ok := components.Flow.First(w)
	if !ok {
		return
	}
	flow := components.Flow.Get(e)
	flow.HealFlash = max(0, flow.HealFlash-dt)

	if flow.GameOver || flow.Player == nil || registry.Removed(w, flow.Player) {
		return
	}
	if !components.Health.Get(flow.Player).IsDead() {
		flow.Elapsed += dt
	}
}

// GameOverRequested reports whether the deferred game over has fired.
func GameOverRequested(w donburi.World) bool {
	e, ok := components.Flow.First(w)
	return ok && components.Flow.Get(e).GameOver
}

// FormatElapsed renders seconds as mm:ss.
func FormatElapsed(seconds float64) string {
	total := max(0, int(seconds))
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

func onDeflectHeal(w donburi.World, ev messages.DeflectHeal) {
	if e, ok := components.Flow.First(w); ok {
		components.Flow.Get(e).HealFlash = cfg.UI.HealFlashTime
	}
}
