package systems

import (
	"testing"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/messages"
	"github.com/automoto/parry/registry"
	"github.com/automoto/parry/systems/factory"
	"github.com/automoto/parry/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestDestroyEnemyIsIdempotent(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	var kinds []components.EnemyKind
	messages.EnemyDestroyedEvent.Subscribe(w, func(_ donburi.World, ev messages.EnemyDestroyed) {
		kinds = append(kinds, ev.Kind)
	})

	arrow := factory.CreateArrow(w, player, gamemath.Vector{X: 200, Y: 200}, gamemath.Vector{X: 100})
	DestroyEnemy(w, arrow)
	DestroyEnemy(w, arrow)

	assert.False(t, components.Collider.Get(arrow).Enabled())
	assert.True(t, registry.Removed(w, arrow))

	events.ProcessAllEvents(w)
	assert.Equal(t, []components.EnemyKind{components.EnemyArrow}, kinds)

	assert.Equal(t, 1, registry.Flush(w))
	assert.False(t, arrow.Valid())
	DestroyEnemy(w, arrow)
}

func TestEnemyIntegratesGravity(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	bomb := factory.CreateBomb(w, player, gamemath.Vector{X: 200, Y: 200}, gamemath.Vector{X: 60, Y: -120}, 600)
	require.NoError(t, UpdateEnemies(w, 0.5))

	en := components.Enemy.Get(bomb)
	assert.InDelta(t, 180, en.Velocity.Y, 1e-9)
	pos := components.Transform.Get(bomb).Position
	assert.InDelta(t, 230, pos.X, 1e-9)
	assert.InDelta(t, 290, pos.Y, 1e-9)

	// the collider follows the sprite
	assert.Equal(t, components.Transform.Get(bomb).Bounds(), components.Collider.Get(bomb).Rect())
}

func TestBallisticAimLandsOnTarget(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	const gravity, flight = 500.0, 1.0
	target := gamemath.Vector{X: 400, Y: 0}
	vel := gamemath.CalculateBallisticVelocity(gamemath.Vector{}, target, gravity, flight, cfg.Spawner.BombMinFlightTime)
	bomb := factory.CreateBomb(w, player, gamemath.Vector{}, vel, gravity)

	// wide enough that the arc never counts as leaving the screen
	screen := gamemath.NewRect(-10000, -10000, 20000, 20000)
	const dt = 0.001
	for range 1000 {
		require.NoError(t, updateEnemy(w, bomb, dt, screen))
	}

	// semi-implicit Euler overshoots the closed form by g*T*dt/2 in y
	pos := components.Transform.Get(bomb).Position
	assert.InDelta(t, target.X, pos.X, 1e-6)
	assert.InDelta(t, target.Y, pos.Y, 0.5)
	assert.True(t, components.Enemy.Get(bomb).Alive)
}

func TestArrowFacesVelocity(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	arrow := factory.CreateArrow(w, player, gamemath.Vector{X: 200, Y: 200}, gamemath.Vector{Y: 600})
	assert.InDelta(t, 90, components.Transform.Get(arrow).Rotation, 1e-9)

	components.Enemy.Get(arrow).Velocity = gamemath.Vector{X: -600}
	require.NoError(t, UpdateEnemies(w, frame))
	assert.InDelta(t, 180, components.Transform.Get(arrow).Rotation, 1e-9)
}

func TestSpinningArrowRotates(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	arrow := factory.CreateArrow(w, player, gamemath.Vector{X: 200, Y: 200}, gamemath.Vector{X: 600})
	StartSpin(arrow, gamemath.Vector{X: -100, Y: -300}, 720, 1400)
	components.Transform.Get(arrow).Rotation = 350

	require.NoError(t, UpdateEnemies(w, 0.25))
	assert.InDelta(t, 170, components.Transform.Get(arrow).Rotation, 1e-9)
}

func TestBombSpins(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	bomb := factory.CreateBomb(w, player, gamemath.Vector{X: 200, Y: 200}, gamemath.Vector{}, 0)
	require.NoError(t, UpdateEnemies(w, 0.5))
	assert.InDelta(t, 270, components.Transform.Get(bomb).Rotation, 1e-9)
}

func TestEnemyDespawnsAfterLeavingScreen(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	arrow := factory.CreateArrow(w, player, gamemath.Vector{X: 1700, Y: 100}, gamemath.Vector{X: 6000})
	id := arrow.Entity()

	stepN(t, w, 1)
	require.True(t, w.Valid(id))
	assert.True(t, components.Enemy.Get(arrow).HasEnteredViewport)

	stepN(t, w, 5)
	assert.False(t, w.Valid(id))
	assert.Equal(t, 5, components.Health.Get(player).Current)
}

func TestEnemyOutsideScreenWaitsToEnter(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	// flying away from the screen, never seen
	arrow := factory.CreateArrow(w, player, gamemath.Vector{X: -300, Y: 540}, gamemath.Vector{X: -100})
	stepN(t, w, 30)

	assert.True(t, arrow.Valid())
	assert.False(t, components.Enemy.Get(arrow).HasEnteredViewport)
}

func TestBombExplodesOnExitWhenConfigured(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)
	cfg.Bomb.ExplodeOnExit = true

	var hits []bool
	messages.BombExplodedEvent.Subscribe(w, func(_ donburi.World, ev messages.BombExploded) {
		hits = append(hits, ev.HitPlayer)
	})

	bomb := factory.CreateBomb(w, player, gamemath.Vector{X: 1800, Y: 100}, gamemath.Vector{X: 6000}, 0)
	stepN(t, w, 6)

	assert.False(t, bomb.Valid())
	assert.Equal(t, []bool{false}, hits)
}

func TestBombRemovedOnExitByDefault(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	exploded := 0
	messages.BombExplodedEvent.Subscribe(w, func(donburi.World, messages.BombExploded) {
		exploded++
	})

	bomb := factory.CreateBomb(w, player, gamemath.Vector{X: 1800, Y: 100}, gamemath.Vector{X: 6000}, 0)
	stepN(t, w, 6)

	assert.False(t, bomb.Valid())
	assert.Zero(t, exploded)
	assert.Zero(t, countWith(w, tags.Explosion))
}

func TestDeflectedBombPassesThroughBody(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	bomb := factory.CreateBomb(w, player, center, gamemath.Vector{}, 0)
	DeflectBomb(bomb, gamemath.Vector{X: 10})
	stepN(t, w, 1)

	assert.True(t, components.Enemy.Get(bomb).Alive)
	assert.Equal(t, 5, components.Health.Get(player).Current)
}

func TestEnemiesRunInCreationOrder(t *testing.T) {
	w := newTestWorld(t)
	player := newTestPlayer(t, w)

	// both reach the body on the same frame; only the first lands
	first := factory.CreateArrow(w, player, center, gamemath.Vector{X: 60})
	second := factory.CreateArrow(w, player, center, gamemath.Vector{X: -60})
	stepN(t, w, 1)

	assert.False(t, first.Valid())
	assert.True(t, second.Valid())
	assert.Equal(t, 4, components.Health.Get(player).Current)
	assert.Equal(t, 1, countEnemies(w))
}
