package systems

import (
	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/registry"
	"github.com/automoto/parry/systems/factory"
	"github.com/automoto/parry/tags"
	"github.com/yohamta/donburi"
)

// Intents are the high-level requests read from input each frame.
type Intents struct {
	DefendHeld    bool
	AttackPressed bool
}

// SpawnPlayer creates the player at pos and wires its hitboxes to the combat
// handlers.
func SpawnPlayer(w donburi.World, pos gamemath.Vector) *donburi.Entry {
	player := factory.CreatePlayer(w, pos)
	p := components.Player.Get(player)

	components.Collider.Get(p.Sword).OnTrigger(func(w donburi.World, src *donburi.Entry) error {
		return OnSwordTrigger(w, player, src)
	})
	components.Collider.Get(p.Shield).OnTrigger(func(w donburi.World, src *donburi.Entry) error {
		return OnShieldTrigger(w, player, src)
	})
	components.Collider.Get(p.Body).OnTrigger(func(w donburi.World, src *donburi.Entry) error {
		return OnBodyTrigger(w, player, src)
	})

	if flow, ok := components.Flow.First(w); ok {
		components.Flow.Get(flow).Player = player
	}

	UpdatePlayerColliders(player)
	return player
}

// UpdatePlayers runs the player state machine once per frame.
func UpdatePlayers(w donburi.World, dt float64) {
	for _, e := range registry.Snapshot(w, tags.Player) {
		updatePlayer(e, dt)
	}
}

func updatePlayer(player *donburi.Entry, dt float64) {
	p := components.Player.Get(player)
	h := components.Health.Get(player)
	state := components.State.Get(player)
	anim := components.Animation.Get(player)

	// --------------------------------------------------------------------
	// 1. Timers
	// --------------------------------------------------------------------
	h.HurtCooldown = max(0, h.HurtCooldown-dt)
	p.AttackCooldown = max(0, p.AttackCooldown-dt)
	if p.ShieldBlockTimer > 0 {
		p.ShieldBlockTimer -= dt
		if p.ShieldBlockTimer <= 0 && state.CurrentState == cfg.Defend {
			anim.Play(cfg.ClipDefend)
		}
	}

	// --------------------------------------------------------------------
	// 2. Input
	// --------------------------------------------------------------------
	in := ReadIntents(player)
	components.Transform.Get(player).FlipX = !p.FacingRight

	// --------------------------------------------------------------------
	// 3. State machine
	// --------------------------------------------------------------------
	switch state.CurrentState {
	case cfg.Defend:
		if !in.DefendHeld {
			enterState(player, cfg.Idle)
		}
	case cfg.Idle:
		if in.DefendHeld {
			enterState(player, cfg.Defend)
		} else if in.AttackPressed && p.CanAttack() {
			enterState(player, cfg.Attack)
			p.AttackCooldown = cfg.Player.AttackCooldown
		}
	}

	// --------------------------------------------------------------------
	// 4. Animation and clip-driven exits
	// --------------------------------------------------------------------
	anim.Update(dt)
	if (state.CurrentState == cfg.Attack || state.CurrentState == cfg.Hurt) && !anim.IsAnimating() {
		enterState(player, cfg.Idle)
	}
	state.StateTimer += dt

	UpdatePlayerColliders(player)
}

// ReadIntents turns the player's input into facing and intents. Facing
// follows the direction keys in interactive states; intents are only
// emitted while controls are enabled.
func ReadIntents(player *donburi.Entry) Intents {
	p := components.Player.Get(player)
	st := components.State.Get(player).CurrentState
	input := components.Input.Get(player)

	if st.Interactive() {
		if input.Pressed(cfg.ActionMoveLeft) {
			p.FacingRight = false
		} else if input.Pressed(cfg.ActionMoveRight) {
			p.FacingRight = true
		}
	}

	if !p.ControlsEnabled || !st.Interactive() {
		return Intents{}
	}
	return Intents{
		DefendHeld:    input.Pressed(cfg.ActionDefend),
		AttackPressed: input.JustPressed(cfg.ActionAttack),
	}
}

// SetControlsEnabled toggles all player input.
func SetControlsEnabled(player *donburi.Entry, enabled bool) {
	components.Player.Get(player).ControlsEnabled = enabled
}

// TriggerShieldBlockFx swaps in the short block clip. Only plays in Defend.
func TriggerShieldBlockFx(player *donburi.Entry) {
	if components.State.Get(player).CurrentState != cfg.Defend {
		return
	}
	components.Player.Get(player).ShieldBlockTimer = cfg.Player.ShieldBlockFxTime
	components.Animation.Get(player).Play(cfg.ClipShieldBlock)
}

// enterState switches state and starts the state's clip.
func enterState(player *donburi.Entry, next cfg.StateID) {
	components.State.Get(player).Enter(next)
	if clip, ok := cfg.StateClips[next]; ok {
		components.Animation.Get(player).Play(clip)
	}
}
