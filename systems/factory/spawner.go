package factory

import (
	"errors"
	"math/rand"
	"time"

	"github.com/automoto/parry/archetypes"
	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/registry"
	"github.com/yohamta/donburi"
)

// ErrNoPlayer is returned when a spawner is created without a live player.
var ErrNoPlayer = errors.New("spawner requires a player")

// CreateSpawner arms an enemy spawner aimed at player. Without points it
// falls back to one point past each side of the screen at mid height.
// A nil rng is replaced by a time-seeded source.
func CreateSpawner(w donburi.World, player *donburi.Entry, points []gamemath.Vector, rng *rand.Rand) (*donburi.Entry, error) {
	if player == nil || !player.Valid() || !player.HasComponent(components.Player) {
		return nil, ErrNoPlayer
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(points) == 0 {
		points = DefaultSpawnPoints(registry.Screen(w))
	}

	e := archetypes.Spawner.Spawn(w)
	components.Spawner.SetValue(e, components.SpawnerData{
		Armed:  true,
		Timer:  NextSpawnInterval(rng),
		Points: append([]gamemath.Vector(nil), points...),
		Player: player,
		Rand:   rng,
	})
	return e, nil
}

// DefaultSpawnPoints sits one point past each side of screen at mid height.
func DefaultSpawnPoints(screen gamemath.Rect) []gamemath.Vector {
	mid := screen.Center().Y
	return []gamemath.Vector{
		{X: screen.X - cfg.Spawner.SideOffset, Y: mid},
		{X: screen.Right() + cfg.Spawner.SideOffset, Y: mid},
	}
}

// NextSpawnInterval draws a countdown uniformly in [MinInterval, MaxInterval].
func NextSpawnInterval(rng *rand.Rand) float64 {
	return gamemath.Lerp(cfg.Spawner.MinInterval, cfg.Spawner.MaxInterval, rng.Float64())
}
