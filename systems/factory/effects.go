package factory

import (
	"github.com/automoto/parry/archetypes"
	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/yohamta/donburi"
)

// CreateExplosion spawns a one-shot explosion effect centred at pos.
// It removes itself when the clip finishes.
func CreateExplosion(w donburi.World, pos gamemath.Vector) *donburi.Entry {
	fx := archetypes.Explosion.Spawn(w)

	components.Transform.SetValue(fx, components.TransformData{
		Position: pos,
		Width:    cfg.Bomb.ExplosionFrameWidth,
		Height:   cfg.Bomb.ExplosionFrameHeight,
		Scale:    cfg.Bomb.ExplosionScale,
	})
	components.Animation.Get(fx).Play(cfg.ClipExplosion)
	components.AutoDestroy.SetValue(fx, components.AutoDestroyData{
		TimeRemaining:    -1,
		DestroyOnAnimEnd: true,
	})

	return fx
}
