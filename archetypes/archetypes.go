package archetypes

import (
	"github.com/automoto/parry/components"
	"github.com/automoto/parry/registry"
	"github.com/automoto/parry/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Transform,
		components.Health,
		components.Animation,
		components.State,
		components.Input,
	)
	Hitbox = newArchetype(
		tags.Hitbox,
		components.Collider,
	)
	Arrow = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Arrow,
		components.Transform,
		components.Collider,
	)
	Bomb = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Bomb,
		components.Transform,
		components.Collider,
	)
	Explosion = newArchetype(
		tags.Explosion,
		components.Transform,
		components.Animation,
		components.AutoDestroy,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
	)
	Space = newArchetype(
		components.Space,
	)
	Flow = newArchetype(
		components.Flow,
	)
	PendingAction = newArchetype(
		components.PendingAction,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs and
// registers it so it takes part in ordered traversal.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs)+1)
	all = append(all, a.components...)
	all = append(all, cs...)
	all = append(all, registry.Registration)

	e := w.Entry(w.Create(all...))
	registry.Register(w, e)
	return e
}
