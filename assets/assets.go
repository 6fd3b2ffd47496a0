package assets

import (
	"embed"

	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/leveldata"
)

//go:embed all:levels
var assetFS embed.FS

// LoadSpawnPoints reads the enemy spawn points of the embedded level at levelPath.
func LoadSpawnPoints(levelPath string) ([]gamemath.Vector, error) {
	arena, err := leveldata.LoadArena(assetFS, levelPath)
	if err != nil {
		return nil, err
	}

	points := make([]gamemath.Vector, 0, len(arena.Spawns))
	for _, s := range arena.Spawns {
		points = append(points, gamemath.Vector{X: s.X, Y: s.Y})
	}
	return points, nil
}
