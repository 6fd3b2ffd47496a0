package assets

import (
	"testing"

	"github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArenaSpawnPointsAreOffscreen(t *testing.T) {
	config.Reset()
	points, err := LoadSpawnPoints(config.Spawner.LevelPath)
	require.NoError(t, err)
	require.Len(t, points, 8)

	screen := gamemath.NewRect(0, 0, float64(config.C.Width), float64(config.C.Height))
	for _, p := range points {
		assert.False(t, screen.Contains(p), "%v", p)
	}
	assert.Equal(t, gamemath.Vector{X: -100, Y: 300}, points[0])
}

func TestLoadSpawnPointsUnknownLevel(t *testing.T) {
	_, err := LoadSpawnPoints("levels/missing.tmx")
	assert.Error(t, err)
}
