package systems

import (
	"github.com/automoto/parry/components"
	"github.com/automoto/parry/registry"
	"github.com/automoto/parry/tags"
	"github.com/yohamta/donburi"
)

// UpdateEffects advances effect animations and removes finished effects.
func UpdateEffects(w donburi.World, dt float64) {
	for _, e := range registry.Snapshot(w, tags.Explosion) {
		anim := components.Animation.Get(e)
		anim.Update(dt)

		if components.AutoDestroy.Get(e).Expired(dt, anim) {
			registry.Remove(w, e)
		}
	}
}
