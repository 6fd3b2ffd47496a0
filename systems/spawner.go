package systems

import (
	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/registry"
	"github.com/automoto/parry/systems/factory"
	"github.com/automoto/parry/tags"
	"github.com/yohamta/donburi"
)

// UpdateSpawners counts down every spawner and fires one enemy each time a
// countdown runs out. Spawners idle while paused, before they are armed, or
// while their player is dead or has controls disabled.
func UpdateSpawners(w donburi.World, dt float64) {
	for _, e := range registry.Snapshot(w, tags.Spawner) {
		sp := components.Spawner.Get(e)
		if !spawnerActive(w, sp) {
			continue
		}

		sp.Timer -= dt
		if sp.Timer <= 0 {
			spawnOne(w, sp)
			sp.Timer = factory.NextSpawnInterval(sp.Rand)
		}
	}
}

func spawnerActive(w donburi.World, sp *components.SpawnerData) bool {
	if !sp.Armed || sp.Paused || len(sp.Points) == 0 {
		return false
	}
	if sp.Player == nil || registry.Removed(w, sp.Player) {
		return false
	}
	if components.Health.Get(sp.Player).Current <= 0 {
		return false
	}
	return components.Player.Get(sp.Player).ControlsEnabled
}

// SetSpawnerPaused pauses or resumes every spawner in the world.
func SetSpawnerPaused(w donburi.World, paused bool) {
	components.Spawner.Each(w, func(e *donburi.Entry) {
		components.Spawner.Get(e).Paused = paused
	})
}

// ToggleSpawnerPaused flips the pause flag of every spawner and returns the new state.
func ToggleSpawnerPaused(w donburi.World) bool {
	paused := false
	components.Spawner.Each(w, func(e *donburi.Entry) {
		sp := components.Spawner.Get(e)
		sp.Paused = !sp.Paused
		paused = sp.Paused
	})
	return paused
}

// spawnOne picks a point, keeps it off the screen and launches an arrow or a bomb.
func spawnOne(w donburi.World, sp *components.SpawnerData) *donburi.Entry {
	rng := sp.Rand
	spawn := sp.Points[rng.Intn(len(sp.Points))]

	screen := registry.Screen(w)
	if screen.Contains(spawn) {
		spawn = gamemath.PushOffscreen(spawn, screen, cfg.Spawner.OffscreenPad)
	}

	target := components.Transform.Get(sp.Player).Position
	if rng.Float64() < cfg.Spawner.ArrowChance {
		speed := gamemath.Lerp(cfg.Spawner.ArrowSpeedMin, cfg.Spawner.ArrowSpeedMax, rng.Float64())
		vel := gamemath.CalculateDirectVelocity(spawn, target, speed)
		return factory.CreateArrow(w, sp.Player, spawn, vel)
	}

	t := gamemath.Lerp(cfg.Spawner.BombTimeMin, cfg.Spawner.BombTimeMax, rng.Float64())
	g := cfg.Spawner.BombGravity
	vel := gamemath.CalculateBallisticVelocity(spawn, target, g, t, cfg.Spawner.BombMinFlightTime)
	return factory.CreateBomb(w, sp.Player, spawn, vel, g)
}
