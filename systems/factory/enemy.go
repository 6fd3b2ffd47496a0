package factory

import (
	"github.com/automoto/parry/archetypes"
	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateArrow spawns an arrow at pos flying with vel, nose first.
func CreateArrow(w donburi.World, player *donburi.Entry, pos, vel gamemath.Vector) *donburi.Entry {
	arrow := archetypes.Arrow.Spawn(w)

	components.Transform.SetValue(arrow, components.TransformData{
		Position: pos,
		Width:    cfg.Arrow.FrameWidth,
		Height:   cfg.Arrow.FrameHeight,
		Scale:    cfg.Arrow.Scale,
		Rotation: vel.Degrees(),
	})
	components.Enemy.SetValue(arrow, components.EnemyData{
		Kind:             components.EnemyArrow,
		Velocity:         vel,
		Damage:           cfg.Arrow.Damage,
		Alive:            true,
		OffscreenPadding: cfg.Enemy.OffscreenPadding,
		Player:           player,
	})
	components.Arrow.SetValue(arrow, components.ArrowData{})
	attachEnemyCollider(w, arrow, tags.ResolvArrow)

	return arrow
}

// CreateBomb spawns an armed bomb at pos thrown with vel under gravity.
func CreateBomb(w donburi.World, player *donburi.Entry, pos, vel gamemath.Vector, gravity float64) *donburi.Entry {
	bomb := archetypes.Bomb.Spawn(w)

	components.Transform.SetValue(bomb, components.TransformData{
		Position: pos,
		Width:    cfg.Bomb.FrameWidth,
		Height:   cfg.Bomb.FrameHeight,
		Scale:    cfg.Bomb.Scale,
	})
	components.Enemy.SetValue(bomb, components.EnemyData{
		Kind:             components.EnemyBomb,
		Velocity:         vel,
		Gravity:          gravity,
		Damage:           cfg.Bomb.Damage,
		Alive:            true,
		OffscreenPadding: cfg.Enemy.OffscreenPadding,
		Player:           player,
	})
	components.Bomb.SetValue(bomb, components.BombData{
		SpinDegPerSec: cfg.Bomb.SpinDegPerSec,
	})
	attachEnemyCollider(w, bomb, tags.ResolvBomb)

	return bomb
}

// attachEnemyCollider gives an enemy a trigger collider matching its sprite bounds.
func attachEnemyCollider(w donburi.World, enemy *donburi.Entry, kindTag string) {
	bounds := components.Transform.Get(enemy).Bounds()

	obj := resolv.NewObject(0, 0, 0, 0, tags.ResolvEnemy, kindTag)
	obj.Data = enemy
	addToSpace(w, obj)

	col := components.ColliderData{
		Object:    obj,
		IsTrigger: true,
		Kind:      components.ColliderEnemy,
		Owner:     enemy,
	}
	col.SetRect(bounds)
	components.Collider.SetValue(enemy, col)
}
