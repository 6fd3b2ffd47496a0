package registry_test

import (
	"testing"

	"github.com/automoto/parry/components"
	"github.com/automoto/parry/registry"
	"github.com/solarlune/resolv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
)

func spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	e := w.Entry(w.Create(append(cs, registry.Registration)...))
	registry.Register(w, e)
	return e
}

func TestSnapshotKeepsCreationOrder(t *testing.T) {
	w := donburi.NewWorld()

	var want []*donburi.Entry
	for range 5 {
		want = append(want, spawn(w, components.Transform))
	}
	// a different layout in between must not change the order
	spawn(w, components.Transform, components.Health)
	unregistered := w.Entry(w.Create(components.Transform))

	got := registry.Snapshot(w, components.Transform)
	require.Len(t, got, 6)
	for i, e := range want {
		assert.Same(t, e, got[i])
	}
	assert.NotContains(t, got, unregistered)
}

func TestRemoveIsDeferredUntilFlush(t *testing.T) {
	w := donburi.NewWorld()
	a := spawn(w, components.Transform)
	b := spawn(w, components.Transform)

	registry.Remove(w, a)
	registry.Remove(w, a)

	assert.True(t, a.Valid())
	assert.True(t, registry.Removed(w, a))
	assert.False(t, registry.Removed(w, b))

	got := registry.Snapshot(w, components.Transform)
	require.Len(t, got, 1)
	assert.Same(t, b, got[0])

	assert.Equal(t, 1, registry.Flush(w))
	assert.False(t, a.Valid())
	assert.True(t, b.Valid())
	assert.True(t, registry.Removed(w, a))

	assert.Zero(t, registry.Flush(w))
}

func TestRemoveNilOrGone(t *testing.T) {
	w := donburi.NewWorld()
	registry.Remove(w, nil)
	assert.True(t, registry.Removed(w, nil))
	assert.Zero(t, registry.Flush(w))
}

func TestFlushTakesColliderOutOfSpace(t *testing.T) {
	w := donburi.NewWorld()

	spaceEntry := w.Entry(w.Create(components.Space))
	space := resolv.NewSpace(640, 480, 32, 32)
	components.Space.Set(spaceEntry, space)
	require.Same(t, space, registry.Space(w))

	obj := resolv.NewObject(10, 10, 16, 16, "Enemy")
	space.Add(obj)

	e := spawn(w, components.Collider)
	components.Collider.SetValue(e, components.ColliderData{Object: obj})

	probe := resolv.NewObject(12, 12, 4, 4)
	space.Add(probe)
	require.NotNil(t, probe.Check(0, 0, "Enemy"))

	registry.Remove(w, e)
	require.Equal(t, 1, registry.Flush(w))
	assert.Nil(t, probe.Check(0, 0, "Enemy"))
}

func TestScreenFallsBackToConfig(t *testing.T) {
	w := donburi.NewWorld()
	s := registry.Screen(w)
	assert.Equal(t, 1920.0, s.W)
	assert.Equal(t, 1080.0, s.H)
	assert.Nil(t, registry.Space(w))
}
