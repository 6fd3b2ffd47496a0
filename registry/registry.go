// Package registry keeps the ordered set of live gameplay entities. Entities
// are traversed in creation order and removed only when Flush runs, so
// handlers may destroy anything mid-frame without invalidating the walk.
package registry

import (
	"sort"

	"github.com/automoto/parry/components"
	"github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// RegistrationData records the creation order of an entity.
type RegistrationData struct {
	Seq uint64
}

var Registration = donburi.NewComponentType[RegistrationData]()

type registryData struct {
	nextSeq uint64
	pending []donburi.Entity
	marked  map[donburi.Entity]struct{}
}

var registryState = donburi.NewComponentType[registryData]()

// FrameData is the per-frame clock and viewport shared by all systems.
type FrameData struct {
	Delta  float64 // seconds
	Tick   uint64
	Screen gamemath.Rect
}

var Clock = donburi.NewComponentType[FrameData]()

func state(w donburi.World) *registryData {
	if e, ok := registryState.First(w); ok {
		return registryState.Get(e)
	}
	e := w.Entry(w.Create(registryState))
	registryState.SetValue(e, registryData{marked: map[donburi.Entity]struct{}{}})
	return registryState.Get(e)
}

// Register stamps e with the next sequence number.
func Register(w donburi.World, e *donburi.Entry) {
	st := state(w)
	st.nextSeq++
	if !e.HasComponent(Registration) {
		e.AddComponent(Registration)
	}
	Registration.SetValue(e, RegistrationData{Seq: st.nextSeq})
}

// Snapshot returns the registered entries carrying every component in cs,
// ordered by creation. Entries already queued for removal are left out.
func Snapshot(w donburi.World, cs ...donburi.IComponentType) []*donburi.Entry {
	st := state(w)
	q := donburi.NewQuery(filter.Contains(append([]donburi.IComponentType{Registration}, cs...)...))

	var out []*donburi.Entry
	q.Each(w, func(e *donburi.Entry) {
		if _, gone := st.marked[e.Entity()]; gone {
			return
		}
		out = append(out, e)
	})
	sort.Slice(out, func(i, j int) bool {
		return Registration.Get(out[i]).Seq < Registration.Get(out[j]).Seq
	})
	return out
}

// Remove queues e for removal at the next Flush. Removing twice is a no-op.
func Remove(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	st := state(w)
	id := e.Entity()
	if _, ok := st.marked[id]; ok {
		return
	}
	st.marked[id] = struct{}{}
	st.pending = append(st.pending, id)
}

// Removed reports whether e is gone or queued for removal.
func Removed(w donburi.World, e *donburi.Entry) bool {
	if e == nil || !e.Valid() {
		return true
	}
	_, ok := state(w).marked[e.Entity()]
	return ok
}

// Flush removes every queued entity from the world, taking its collider out
// of the resolv space first. It returns the number of entities removed.
func Flush(w donburi.World) int {
	st := state(w)
	if len(st.pending) == 0 {
		return 0
	}

	space := Space(w)
	removed := 0
	for _, id := range st.pending {
		if !w.Valid(id) {
			continue
		}
		e := w.Entry(id)
		if e.HasComponent(components.Collider) {
			if obj := components.Collider.Get(e).Object; obj != nil && space != nil && obj.Space != nil {
				space.Remove(obj)
			}
		}
		w.Remove(id)
		removed++
	}

	st.pending = st.pending[:0]
	clear(st.marked)
	return removed
}

// Space returns the world's resolv space, or nil when none was created.
func Space(w donburi.World) *resolv.Space {
	e, ok := components.Space.First(w)
	if !ok {
		return nil
	}
	return components.Space.Get(e)
}

// Frame returns the world's frame clock, creating it on first use.
func Frame(w donburi.World) *FrameData {
	if e, ok := Clock.First(w); ok {
		return Clock.Get(e)
	}
	e := w.Entry(w.Create(Clock))
	return Clock.Get(e)
}

// Screen returns the viewport rect, falling back to the configured window
// size before the first frame sets it.
func Screen(w donburi.World) gamemath.Rect {
	if s := Frame(w).Screen; !s.Empty() {
		return s
	}
	return gamemath.NewRect(0, 0, float64(config.C.Width), float64(config.C.Height))
}
