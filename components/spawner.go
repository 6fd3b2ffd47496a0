package components

import (
	"math/rand"

	"github.com/automoto/parry/gamemath"
	"github.com/yohamta/donburi"
)

type SpawnerData struct {
	Paused bool // external pause
	Armed  bool // false until a valid player is wired

	Timer  float64 // seconds until next spawn
	Points []gamemath.Vector
	Player *donburi.Entry
	Rand   *rand.Rand
}

var Spawner = donburi.NewComponentType[SpawnerData]()
