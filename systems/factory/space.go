package factory

import (
	"github.com/automoto/parry/archetypes"
	"github.com/automoto/parry/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

func CreateSpace(w donburi.World, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// addToSpace registers obj with the world's space, if there is one.
func addToSpace(w donburi.World, obj *resolv.Object) {
	if e, ok := components.Space.First(w); ok {
		components.Space.Get(e).Add(obj)
	}
}
