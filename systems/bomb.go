package systems

import (
	"github.com/automoto/parry/components"
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/messages"
	"github.com/automoto/parry/systems/factory"
	"github.com/yohamta/donburi"
)

// Explode detonates a bomb once. Unless ignorePlayer is set, a bomb still
// overlapping the player's body damages it and resets the deflect streak.
// It always leaves an explosion effect behind and removes the bomb.
func Explode(w donburi.World, bomb *donburi.Entry, ignorePlayer bool) {
	if bomb == nil || !bomb.Valid() {
		return
	}
	b := components.Bomb.Get(bomb)
	if b.Exploded {
		return
	}
	b.Exploded = true

	en := components.Enemy.Get(bomb)
	en.Velocity = gamemath.Vector{}
	en.Gravity = 0
	en.IgnorePlayerCollision = true

	hit := false
	if !ignorePlayer && en.Player != nil && en.Player.Valid() && en.Player.HasComponent(components.Player) {
		body := colliderOf(components.Player.Get(en.Player).Body)
		if body != nil && components.Collider.Get(bomb).Intersects(body) {
			Damage(w, en.Player, en.Damage)
			ResetDeflectStreak(en.Player)
			hit = true
		}
	}

	pos := components.Transform.Get(bomb).Position
	factory.CreateExplosion(w, pos)
	messages.BombExplodedEvent.Publish(w, messages.BombExploded{X: pos.X, Y: pos.Y, HitPlayer: hit})

	DestroyEnemy(w, bomb)
}

// DeflectBomb redirects a bomb and stops it from hitting the body.
// It does not explode it.
func DeflectBomb(bomb *donburi.Entry, vel gamemath.Vector) {
	en := components.Enemy.Get(bomb)
	en.IgnorePlayerCollision = true
	en.Velocity = vel
}

// updateBomb spins an armed bomb.
func updateBomb(e *donburi.Entry, dt float64) {
	b := components.Bomb.Get(e)
	if b.Exploded {
		return
	}
	tr := components.Transform.Get(e)
	tr.Rotation = gamemath.WrapDegrees(tr.Rotation + b.SpinDegPerSec*dt)
}
