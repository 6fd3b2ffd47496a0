package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/lafriks/go-tiled"
)

// SpawnGroup is the object group holding enemy spawn points.
const SpawnGroup = "EnemySpawn"

// ErrNoSpawns is returned when a level has no usable enemy spawn points.
var ErrNoSpawns = errors.New("no enemy spawn points")

// LoadArena parses a TMX file and returns its enemy spawn points. It takes
// an fs.FS so callers can pass embed.FS or os.DirFS.
func LoadArena(fsys fs.FS, tmxPath string) (*Arena, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	arena := &Arena{
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		if og.Name != SpawnGroup {
			continue
		}
		for _, o := range og.Objects {
			// rectangles spawn from their centre, points from themselves
			arena.Spawns = append(arena.Spawns, SpawnPoint{
				X:    o.X + o.Width/2,
				Y:    o.Y + o.Height/2,
				Name: o.Name,
			})
		}
	}
	if len(arena.Spawns) == 0 {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawns)
	}

	// Sort spawns left-to-right, then top-to-bottom, for stable indexing
	sort.SliceStable(arena.Spawns, func(i, j int) bool {
		a, b := arena.Spawns[i], arena.Spawns[j]
		if a.X != b.X {
			return a.X < b.X
		}
		return a.Y < b.Y
	})

	return arena, nil
}
