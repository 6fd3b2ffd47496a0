package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverridesKeepsAbsentKeys(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	doc := `
player:
  max_hp: 8
spawner:
  min_interval: 0.5
bomb:
  explode_on_exit: true
`
	require.NoError(t, LoadOverrides(strings.NewReader(doc)))

	assert.Equal(t, 8, Player.MaxHP)
	assert.Equal(t, 0.85, Player.AttackCooldown)
	assert.Equal(t, 0.5, Spawner.MinInterval)
	assert.Equal(t, 2.5, Spawner.MaxInterval)
	assert.True(t, Bomb.ExplodeOnExit)
	assert.Equal(t, 2, Bomb.Damage)
	assert.Equal(t, 1920, C.Width)
}

func TestLoadOverridesEmptyDocument(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	require.NoError(t, LoadOverrides(strings.NewReader("")))
	assert.Equal(t, 5, Player.MaxHP)
}

func TestLoadOverridesRejectsUnknownKeys(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	err := LoadOverrides(strings.NewReader("player:\n  lives: 3\n"))
	require.Error(t, err)
	assert.Equal(t, 5, Player.MaxHP)
}

func TestLoadOverridesValidates(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	cases := map[string]string{
		"max_hp":   "player:\n  max_hp: 0\n",
		"interval": "spawner:\n  min_interval: 3\n",
		"chance":   "spawner:\n  arrow_chance: 1.5\n",
		"screen":   "screen:\n  width: 0\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			require.Error(t, LoadOverrides(strings.NewReader(doc)))
			assert.Equal(t, 5, Player.MaxHP)
			assert.Equal(t, 1.2, Spawner.MinInterval)
			assert.Equal(t, 1920, C.Width)
		})
	}
}

func TestLoadOverridesFile(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	path := filepath.Join(t.TempDir(), "tuning.yaml")
	require.NoError(t, os.WriteFile(path, []byte("debug:\n  show_colliders: true\n"), 0o600))

	require.NoError(t, LoadOverridesFile(path))
	assert.True(t, Debug.ShowColliders)

	err := LoadOverridesFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestStateInteractive(t *testing.T) {
	assert.True(t, Idle.Interactive())
	assert.True(t, Attack.Interactive())
	assert.True(t, Defend.Interactive())
	assert.False(t, Hurt.Interactive())
	assert.False(t, Dead.Interactive())
	assert.Equal(t, "defend", Defend.String())
}
