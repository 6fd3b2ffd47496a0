package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene interface{})
}

// layerDefault is the only render layer; renderers draw in registration order.
const layerDefault ecs.LayerID = 0

// frameDelta is the fixed simulation step in seconds.
func frameDelta() float64 {
	return 1 / float64(ebiten.TPS())
}
