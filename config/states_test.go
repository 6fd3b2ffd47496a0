package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEveryStateHasAClip(t *testing.T) {
	for _, s := range []StateID{Idle, Attack, Defend, Hurt, Dead} {
		clip, ok := StateClips[s]
		assert.True(t, ok, s.String())
		assert.Contains(t, Animations, clip, s.String())
	}
}

func TestInteractiveStates(t *testing.T) {
	assert.True(t, Idle.Interactive())
	assert.True(t, Attack.Interactive())
	assert.True(t, Defend.Interactive())
	assert.False(t, Hurt.Interactive())
	assert.False(t, Dead.Interactive())
	assert.Equal(t, "unknown", StateID(42).String())
}

func TestEveryActionHasAName(t *testing.T) {
	for a := ActionNone; a < ActionCount; a++ {
		assert.NotEmpty(t, a.String())
		assert.NotEqual(t, "unknown", a.String())
	}
	assert.Equal(t, "unknown", ActionCount.String())
}
