package systems

import (
	"log"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/messages"
	"github.com/automoto/parry/systems/factory"
	"github.com/yohamta/donburi"
)

// Damage applies amount to the player. It is a no-op for non-positive
// amounts, a dead player, or while the post-hit invulnerability window runs.
// It reports whether damage was dealt.
func Damage(w donburi.World, player *donburi.Entry, amount int) bool {
	h := components.Health.Get(player)
	if amount <= 0 || !h.CanTakeDamage() {
		return false
	}

	h.Current = max(0, h.Current-amount)
	h.HurtCooldown = cfg.Player.HurtInvulnTime

	if h.Current == 0 {
		onPlayerDied(w, player)
		return true
	}
	onPlayerDamaged(w, player, h.Current)
	return true
}

// Heal restores up to amount HP, capped at the maximum. Dead players stay dead.
func Heal(w donburi.World, player *donburi.Entry, amount int) {
	h := components.Health.Get(player)
	if amount <= 0 || h.IsDead() {
		return
	}
	h.Current = min(h.Max, h.Current+amount)
	messages.PlayerHealedEvent.Publish(w, messages.PlayerHealed{Player: player, HP: h.Current})
}

// SetMaxHP sets the maximum HP (at least 1) and clamps the current HP to it.
func SetMaxHP(player *donburi.Entry, maxHP int) {
	h := components.Health.Get(player)
	h.Max = max(1, maxHP)
	h.Current = min(h.Current, h.Max)
}

func onPlayerDamaged(w donburi.World, player *donburi.Entry, hp int) {
	if components.State.Get(player).CurrentState != cfg.Defend {
		enterState(player, cfg.Hurt)
	} else {
		// still blocking, no stagger
		TriggerShieldBlockFx(player)
	}
	messages.PlayerDamagedEvent.Publish(w, messages.PlayerDamaged{Player: player, HP: hp})
}

func onPlayerDied(w donburi.World, player *donburi.Entry) {
	p := components.Player.Get(player)
	enterState(player, cfg.Dead)
	p.ControlsEnabled = false

	if !p.GameOverScheduled {
		p.GameOverScheduled = true
		factory.CreatePendingAction(w, components.PendingGameOver, cfg.Player.GameOverDelay, player)
		log.Printf("Player died, game over in %.1fs", cfg.Player.GameOverDelay)
	}
	messages.PlayerDiedEvent.Publish(w, messages.PlayerDied{Player: player})
}
