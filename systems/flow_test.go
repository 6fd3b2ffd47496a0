package systems

import (
	"testing"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/registry"
	"github.com/automoto/parry/systems/factory"
	"github.com/automoto/parry/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "00:00", FormatElapsed(0))
	assert.Equal(t, "00:00", FormatElapsed(-4))
	assert.Equal(t, "00:59", FormatElapsed(59.99))
	assert.Equal(t, "02:05", FormatElapsed(125.7))
	assert.Equal(t, "61:01", FormatElapsed(3661))
}

func TestSurvivalTimerStopsOnDeath(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	stepN(t, w, 60)
	flow, ok := components.Flow.First(w)
	require.True(t, ok)
	elapsed := components.Flow.Get(flow).Elapsed
	assert.InDelta(t, 1, elapsed, 1e-6)

	Damage(w, player, 99)
	stepN(t, w, 30)
	assert.Equal(t, elapsed, components.Flow.Get(flow).Elapsed)
}

func TestHealFlashDecays(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)
	SetDeflectHealThreshold(player, 1)

	RegisterDeflect(w, player)
	stepN(t, w, 1)

	flow, _ := components.Flow.First(w)
	f := components.Flow.Get(flow)
	assert.InDelta(t, cfg.UI.HealFlashTime, f.HealFlash, 1e-9)

	stepN(t, w, 90)
	assert.Zero(t, f.HealFlash)
}

func TestPendingActionFiresOnce(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	pending := factory.CreatePendingAction(w, components.PendingGameOver, 0.1, player)
	stepN(t, w, 3)
	assert.False(t, GameOverRequested(w))
	assert.True(t, pending.Valid())

	stepN(t, w, 5)
	assert.True(t, GameOverRequested(w))
	assert.False(t, pending.Valid())
}

func TestExplosionRemovesItselfAfterClip(t *testing.T) {
	w := newTestWorld(t)

	fx := factory.CreateExplosion(w, gamemath.Vector{X: 500, Y: 500})
	stepN(t, w, 10)
	require.True(t, fx.Valid())
	assert.True(t, components.Animation.Get(fx).IsAnimating())

	stepN(t, w, 60)
	assert.False(t, fx.Valid())
	assert.Zero(t, countWith(w, tags.Explosion))
}

func TestTimedEffectExpires(t *testing.T) {
	w := newTestWorld(t)

	fx := factory.CreateExplosion(w, gamemath.Vector{X: 500, Y: 500})
	components.AutoDestroy.SetValue(fx, components.AutoDestroyData{TimeRemaining: 0.05})

	stepN(t, w, 2)
	assert.True(t, fx.Valid())
	stepN(t, w, 2)
	assert.False(t, fx.Valid())
}

func TestStepAdvancesClock(t *testing.T) {
	w := newTestWorld(t)

	stepN(t, w, 3)
	clock := registry.Frame(w)
	assert.Equal(t, uint64(3), clock.Tick)
	assert.InDelta(t, frame, clock.Delta, 1e-12)
	assert.Equal(t, gamemath.NewRect(0, 0, 1920, 1080), clock.Screen)
}
