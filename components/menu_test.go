package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

func TestMenuMoveWraps(t *testing.T) {
	var m MenuData
	m.Move(-1, 2)
	assert.Equal(t, 1, m.SelectedIndex)
	m.Move(1, 2)
	assert.Equal(t, 0, m.SelectedIndex)
	m.Move(5, 2)
	assert.Equal(t, 1, m.SelectedIndex)
	m.Move(1, 0)
	assert.Equal(t, 0, m.SelectedIndex)
}

func TestMenuSlideFinishes(t *testing.T) {
	var m MenuData
	assert.False(t, m.Sliding())

	m.Transition = gween.New(0, 1080, 0.6, ease.OutCubic)
	assert.True(t, m.Sliding())

	offset, done := m.Transition.Update(0.3)
	assert.False(t, done)
	// out-cubic is past the halfway mark at half time
	assert.Greater(t, offset, float32(540))

	offset, done = m.Transition.Update(0.4)
	assert.True(t, done)
	assert.Equal(t, float32(1080), offset)
}

func TestGameOverMoveWraps(t *testing.T) {
	g := GameOverData{SelectedOption: GameOverRetry}
	g.Move(-1)
	assert.Equal(t, GameOverMenu, g.SelectedOption)
	g.Move(1)
	assert.Equal(t, GameOverRetry, g.SelectedOption)
}
