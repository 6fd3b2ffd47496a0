package components

import (
	"errors"
	"testing"

	"github.com/automoto/parry/gamemath"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
)

func TestNotifyRunsHandlersInOrder(t *testing.T) {
	w := donburi.NewWorld()
	src := w.Entry(w.Create(Transform))

	var calls []string
	c := &ColliderData{IsTrigger: true}
	c.OnTrigger(func(donburi.World, *donburi.Entry) error { calls = append(calls, "a"); return nil })
	c.OnTrigger(func(donburi.World, *donburi.Entry) error { calls = append(calls, "b"); return nil })
	c.OnCollision(func(donburi.World, *donburi.Entry) error { calls = append(calls, "solid"); return nil })

	assert.NoError(t, c.Notify(w, src))
	assert.Equal(t, []string{"a", "b"}, calls)

	calls = nil
	c.IsTrigger = false
	assert.NoError(t, c.Notify(w, src))
	assert.Equal(t, []string{"solid"}, calls)
}

func TestNotifyStopsAtFirstError(t *testing.T) {
	w := donburi.NewWorld()
	errFirst := errors.New("first")

	var calls int
	c := &ColliderData{IsTrigger: true}
	c.OnTrigger(func(donburi.World, *donburi.Entry) error { calls++; return errFirst })
	c.OnTrigger(func(donburi.World, *donburi.Entry) error { calls++; return nil })

	assert.ErrorIs(t, c.Notify(w, nil), errFirst)
	assert.Equal(t, 1, calls)
}

func TestNotifyWithoutHandlers(t *testing.T) {
	c := &ColliderData{IsTrigger: true}
	assert.NoError(t, c.Notify(donburi.NewWorld(), nil))
}

func TestDisabledColliderOverlapsNothing(t *testing.T) {
	a := &ColliderData{}
	b := &ColliderData{}
	a.SetRect(gamemath.NewRect(0, 0, 10, 10))
	b.SetRect(gamemath.NewRect(5, 5, 10, 10))
	assert.True(t, a.Intersects(b))
	assert.True(t, b.Intersects(a))

	a.Disable()
	assert.False(t, a.Enabled())
	assert.False(t, a.Intersects(b))
	assert.False(t, b.Intersects(a))
	assert.False(t, a.Intersects(a))
	assert.False(t, a.Intersects(nil))
}

func TestSetRectPadsBroadPhaseProxy(t *testing.T) {
	space := resolv.NewSpace(640, 480, 32, 32)
	obj := resolv.NewObject(0, 0, 0, 0)
	space.Add(obj)

	c := &ColliderData{Object: obj}
	c.SetRect(gamemath.NewRect(100, 50, 20, 10))

	assert.Equal(t, gamemath.NewRect(100, 50, 20, 10), c.Rect())
	assert.InDelta(t, 100-BroadPhaseMargin, obj.X, 1e-9)
	assert.InDelta(t, 50-BroadPhaseMargin, obj.Y, 1e-9)
	assert.InDelta(t, 20+2*BroadPhaseMargin, obj.W, 1e-9)
	assert.InDelta(t, 10+2*BroadPhaseMargin, obj.H, 1e-9)

	c.Disable()
	assert.Zero(t, obj.W)
	assert.Zero(t, obj.H)
}

func TestNearWithoutSpace(t *testing.T) {
	c := &ColliderData{}
	assert.True(t, c.Near("Player"))

	c.Object = resolv.NewObject(0, 0, 4, 4)
	assert.True(t, c.Near("Player"))
}

func TestNearFindsTaggedNeighbour(t *testing.T) {
	space := resolv.NewSpace(640, 480, 32, 32)
	c := &ColliderData{Object: resolv.NewObject(0, 0, 0, 0)}
	space.Add(c.Object)
	c.SetRect(gamemath.NewRect(100, 100, 10, 10))

	assert.False(t, c.Near("Player"))

	other := resolv.NewObject(105, 105, 10, 10, "Player")
	space.Add(other)
	assert.True(t, c.Near("Player"))
	assert.False(t, c.Near("Enemy"))
}

func TestNearPastSpaceEdge(t *testing.T) {
	space := resolv.NewSpace(640, 480, 32, 32)
	c := &ColliderData{Object: resolv.NewObject(0, 0, 0, 0)}
	space.Add(c.Object)

	// resolv keeps no cells past the grid, so the broad phase cannot rule it out
	c.SetRect(gamemath.NewRect(620, 100, 40, 10))
	assert.True(t, c.Near("Player"))

	c.SetRect(gamemath.NewRect(-30, 100, 40, 10))
	assert.True(t, c.Near("Player"))

	c.SetRect(gamemath.NewRect(300, 100, 40, 10))
	assert.False(t, c.Near("Player"))

	c.Disable()
	assert.False(t, c.Near("Player"))
}
