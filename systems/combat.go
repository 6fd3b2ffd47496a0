package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/messages"
	"github.com/yohamta/donburi"
)

// ErrNotEnemy is returned by a hitbox handler whose source is not an enemy
// or is an enemy of an unhandled kind.
var ErrNotEnemy = errors.New("trigger source is not a known enemy")

// OnSwordTrigger deflects whatever touched the sword. Only active in Attack.
func OnSwordTrigger(w donburi.World, player, source *donburi.Entry) error {
	if components.State.Get(player).CurrentState != cfg.Attack {
		return nil
	}
	en, err := enemyOf(source)
	if err != nil {
		return fmt.Errorf("sword: %w", err)
	}

	switch en.Kind {
	case components.EnemyBomb:
		if en.IgnorePlayerCollision {
			return nil
		}
		vel := reboundBomb(en.Velocity, facingNormal(player))
		DeflectBomb(source, vel)

		// nudge out of the blade so it isn't hit again next frame
		tr := components.Transform.Get(source)
		tr.Position = tr.Position.Add(vel.Normalize().Scale(cfg.Combat.BombReboundNudge))
		RegisterDeflect(w, player)

	case components.EnemyArrow:
		if components.Arrow.Get(source).Spinning {
			return nil
		}
		n := facingNormal(player)
		StartSpin(source, bounceArrow(en.Velocity, n, n), cfg.Combat.ArrowSpinDegPerSec, cfg.Combat.ArrowSpinGravity)
		RegisterDeflect(w, player)

	default:
		return fmt.Errorf("sword: %w: kind %v", ErrNotEnemy, en.Kind)
	}
	return nil
}

// OnShieldTrigger blocks whatever touched the shield. Only active in Defend.
// Bombs detonate on the shield and cost a small penalty.
func OnShieldTrigger(w donburi.World, player, source *donburi.Entry) error {
	if components.State.Get(player).CurrentState != cfg.Defend {
		return nil
	}
	en, err := enemyOf(source)
	if err != nil {
		return fmt.Errorf("shield: %w", err)
	}

	switch en.Kind {
	case components.EnemyBomb:
		Explode(w, source, true)
		Damage(w, player, cfg.Combat.ShieldBombPenalty)
		ResetDeflectStreak(player)

	case components.EnemyArrow:
		if components.Arrow.Get(source).Spinning {
			return nil
		}
		n := facingNormal(player)
		StartSpin(source, bounceArrow(en.Velocity, n, n.Neg()), cfg.Combat.ArrowSpinDegPerSec, cfg.Combat.ArrowSpinGravity)
		RegisterDeflect(w, player)
		TriggerShieldBlockFx(player)

	default:
		return fmt.Errorf("shield: %w: kind %v", ErrNotEnemy, en.Kind)
	}
	return nil
}

// OnBodyTrigger resolves an enemy reaching the player's body. Ignored while
// the invulnerability window is running.
func OnBodyTrigger(w donburi.World, player, source *donburi.Entry) error {
	if !components.Health.Get(player).CanTakeDamage() {
		return nil
	}
	en, err := enemyOf(source)
	if err != nil {
		return fmt.Errorf("body: %w", err)
	}

	switch en.Kind {
	case components.EnemyBomb:
		// the bomb's own overlap check applies the damage
		Explode(w, source, false)
		ResetDeflectStreak(player)

	case components.EnemyArrow:
		Damage(w, player, en.Damage)
		ResetDeflectStreak(player)
		DestroyEnemy(w, source)

	default:
		return fmt.Errorf("body: %w: kind %v", ErrNotEnemy, en.Kind)
	}
	return nil
}

// RegisterDeflect counts a successful deflect. Reaching the threshold resets
// the streak and heals 1 HP.
func RegisterDeflect(w donburi.World, player *donburi.Entry) {
	p := components.Player.Get(player)
	p.DeflectStreak++
	if p.DeflectStreak < p.DeflectHealThreshold {
		return
	}
	p.DeflectStreak = 0
	Heal(w, player, 1)
	messages.DeflectHealEvent.Publish(w, messages.DeflectHeal{
		Player: player,
		HP:     components.Health.Get(player).Current,
	})
}

func ResetDeflectStreak(player *donburi.Entry) {
	components.Player.Get(player).DeflectStreak = 0
}

// SetDeflectHealThreshold changes the heal cadence and restarts the streak.
func SetDeflectHealThreshold(player *donburi.Entry, threshold int) {
	p := components.Player.Get(player)
	p.DeflectHealThreshold = max(1, threshold)
	p.DeflectStreak = 0
}

func facingNormal(player *donburi.Entry) gamemath.Vector {
	return gamemath.Vector{X: components.Player.Get(player).FacingSign()}
}

// reboundBomb sends a bomb back the way it came at no less than the minimum speed.
func reboundBomb(incoming, n gamemath.Vector) gamemath.Vector {
	if incoming.LengthSquared() < 1 {
		incoming = n.Scale(cfg.Combat.BombReboundFallbackSpeed)
	}
	speed := math.Max(incoming.Length(), cfg.Combat.BombReboundMinSpeed)
	return incoming.Neg().Normalize().Scale(speed)
}

// bounceArrow reflects incoming about n, damps it and kicks it upward. The
// result keeps a minimum horizontal speed on the facing side. fallback is the
// direction used for a near-stationary arrow.
func bounceArrow(incoming, n, fallback gamemath.Vector) gamemath.Vector {
	if incoming.LengthSquared() < 1 {
		incoming = fallback.Scale(cfg.Combat.ArrowFallbackSpeed)
	}
	bounce := incoming.Reflect(n).Scale(cfg.Combat.ArrowBounceKeep)
	bounce.Y -= cfg.Combat.ArrowBounceUpKick

	if math.Abs(bounce.X) < cfg.Combat.ArrowBounceMinX {
		bounce.X = cfg.Combat.ArrowBounceMinX
		if n.X < 0 {
			bounce.X = -bounce.X
		}
	}
	return bounce
}

func enemyOf(source *donburi.Entry) (*components.EnemyData, error) {
	if source == nil || !source.Valid() || !source.HasComponent(components.Enemy) {
		return nil, ErrNotEnemy
	}
	return components.Enemy.Get(source), nil
}
