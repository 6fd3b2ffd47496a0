package systems

import (
	"testing"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

const frame = 1.0 / 60.0

var center = gamemath.Vector{X: 960, Y: 540}

// newTestWorld returns a world prepared for a 1920x1080 run with default tuning.
func newTestWorld(t *testing.T) donburi.World {
	t.Helper()
	cfg.Reset()
	t.Cleanup(cfg.Reset)

	w := donburi.NewWorld()
	InitWorld(w, gamemath.NewRect(0, 0, 1920, 1080))
	return w
}

// newTestPlayer spawns a right-facing player at the centre of the screen.
func newTestPlayer(t *testing.T, w donburi.World) *donburi.Entry {
	t.Helper()
	return SpawnPlayer(w, center)
}

// forceState puts the player in s and resizes its hitboxes.
func forceState(player *donburi.Entry, s cfg.StateID) {
	enterState(player, s)
	UpdatePlayerColliders(player)
}

func hold(player *donburi.Entry, a cfg.ActionID) {
	components.Input.Get(player).Current[a] = true
}

func release(player *donburi.Entry, a cfg.ActionID) {
	in := components.Input.Get(player)
	in.Current[a] = false
	in.Previous[a] = false
}

func stepN(t *testing.T, w donburi.World, n int) {
	t.Helper()
	for range n {
		if err := Step(w, frame); err != nil {
			t.Fatalf("step: %v", err)
		}
	}
}

func countWith(w donburi.World, c donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(c)).Count(w)
}

func countEnemies(w donburi.World) int {
	return countWith(w, tags.Enemy)
}
