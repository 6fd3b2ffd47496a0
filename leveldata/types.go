// Package leveldata parses Tiled (TMX) arenas. It has no dependencies on
// ebitengine, donburi, or resolv; pure data only.
package leveldata

// Arena holds the data the combat core reads from a TMX level file.
type Arena struct {
	Spawns    []SpawnPoint
	MapWidth  int
	MapHeight int
}

// SpawnPoint is an enemy launch position in map pixels.
type SpawnPoint struct {
	X, Y float64
	Name string
}
