package systems

import (
	"fmt"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/messages"
	"github.com/automoto/parry/registry"
	"github.com/automoto/parry/tags"
	"github.com/yohamta/donburi"
)

// UpdateEnemies advances every live enemy in creation order. The walk runs
// over a snapshot, so handlers may destroy or spawn entities freely.
func UpdateEnemies(w donburi.World, dt float64) error {
	screen := registry.Screen(w)
	for _, e := range registry.Snapshot(w, tags.Enemy) {
		if err := updateEnemy(w, e, dt, screen); err != nil {
			return fmt.Errorf("update %v enemy: %w", components.Enemy.Get(e).Kind, err)
		}
	}
	return nil
}

func updateEnemy(w donburi.World, e *donburi.Entry, dt float64, screen gamemath.Rect) error {
	en := components.Enemy.Get(e)
	if !en.Alive {
		return nil
	}

	// --------------------------------------------------------------------
	// 1. Integrate velocity + gravity
	// --------------------------------------------------------------------
	if en.Gravity != 0 {
		en.Velocity.Y += en.Gravity * dt
	}
	tr := components.Transform.Get(e)
	tr.Position = tr.Position.Add(en.Velocity.Scale(dt))

	// --------------------------------------------------------------------
	// 2. Mirror the collider to the sprite and track first visibility
	// --------------------------------------------------------------------
	col := components.Collider.Get(e)
	col.SetRect(tr.Bounds())

	pad := en.OffscreenPadding
	if tr.Bounds().Intersects(screen.Inflate(-pad, -pad)) {
		en.HasEnteredViewport = true
	}

	switch en.Kind {
	case components.EnemyArrow:
		updateArrow(e, dt)
	case components.EnemyBomb:
		updateBomb(e, dt)
	}

	// --------------------------------------------------------------------
	// 3. Player interaction: sword, then shield, then body
	// --------------------------------------------------------------------
	stop, err := interactWithPlayer(w, e)
	if err != nil || stop {
		return err
	}

	// --------------------------------------------------------------------
	// 4. Despawn once seen and then fully gone
	// --------------------------------------------------------------------
	if en.Alive && en.HasEnteredViewport && !tr.Bounds().Intersects(screen.Inflate(pad, pad)) {
		onExitScreen(w, e)
	}
	return nil
}

// interactWithPlayer tests e against the player's hitboxes in priority order
// and notifies the ones it overlaps. It reports stop when the rest of the
// enemy's update must be skipped.
func interactWithPlayer(w donburi.World, e *donburi.Entry) (stop bool, err error) {
	en := components.Enemy.Get(e)
	player := en.Player
	if player == nil || registry.Removed(w, player) || !player.HasComponent(components.Player) {
		return false, nil
	}

	col := components.Collider.Get(e)
	if !col.Near(tags.ResolvPlayer) {
		return false, nil
	}
	p := components.Player.Get(player)

	for _, hb := range []*donburi.Entry{p.Sword, p.Shield} {
		target := colliderOf(hb)
		if target == nil || !col.Intersects(target) {
			continue
		}
		if err := target.Notify(w, e); err != nil {
			return true, err
		}
		if !en.Alive {
			return true, nil
		}
	}

	if en.IgnorePlayerCollision {
		return false, nil
	}
	if body := colliderOf(p.Body); body != nil && col.Intersects(body) {
		// the enemy may be destroyed by the handler, stop here either way
		return true, body.Notify(w, e)
	}
	return false, nil
}

func onExitScreen(w donburi.World, e *donburi.Entry) {
	if components.Enemy.Get(e).Kind == components.EnemyBomb && cfg.Bomb.ExplodeOnExit {
		Explode(w, e, false)
		return
	}
	DestroyEnemy(w, e)
}

// DestroyEnemy marks e dead, collapses its collider and queues it for
// removal. Only the first call has any effect.
func DestroyEnemy(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	en := components.Enemy.Get(e)
	if !en.Alive {
		return
	}
	en.Alive = false

	components.Collider.Get(e).Disable()
	registry.Remove(w, e)
	messages.EnemyDestroyedEvent.Publish(w, messages.EnemyDestroyed{Kind: en.Kind})
}
