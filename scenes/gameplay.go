package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/automoto/parry/assets"
	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/controls"
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/render"
	"github.com/automoto/parry/systems"
	"github.com/automoto/parry/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameplayScene runs one survival round in the arena.
type GameplayScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	paused       bool
	once         sync.Once
}

// NewGameplayScene creates a fresh round
func NewGameplayScene(sc SceneChanger) *GameplayScene {
	return &GameplayScene{sceneChanger: sc}
}

func (gs *GameplayScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()

	if systems.GameOverRequested(gs.ecs.World) {
		gs.sceneChanger.ChangeScene(NewGameOverScene(gs.sceneChanger, gs.elapsed()))
	}
}

func (gs *GameplayScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameplayScene) configure() {
	w := donburi.NewWorld()
	gs.ecs = ecs.NewECS(w)

	screen := gamemath.NewRect(0, 0, float64(cfg.C.Width), float64(cfg.C.Height))
	systems.InitWorld(w, screen)
	player := systems.SpawnPlayer(w, screen.Center())

	points, err := assets.LoadSpawnPoints(cfg.Spawner.LevelPath)
	if err != nil {
		log.Printf("Warning: could not load spawn points, using defaults: %v", err)
	}
	if _, err := factory.CreateSpawner(w, player, points, nil); err != nil {
		log.Printf("Warning: spawner disabled: %v", err)
	}

	gs.ecs.AddSystem(controls.UpdateInput)
	gs.ecs.AddSystem(gs.updateToggles)
	gs.ecs.AddSystem(gs.step)

	gs.ecs.AddRenderer(layerDefault, func(_ *ecs.ECS, screen *ebiten.Image) {
		screen.Fill(cfg.Background)
	})
	gs.ecs.AddRenderer(layerDefault, render.DrawWorld)
	gs.ecs.AddRenderer(layerDefault, render.DrawColliders)
	gs.ecs.AddRenderer(layerDefault, render.DrawHUD)
	gs.ecs.AddRenderer(layerDefault, func(_ *ecs.ECS, screen *ebiten.Image) {
		if gs.paused {
			render.DrawSpawnerPaused(screen)
		}
	})
}

// updateToggles handles the spawner pause and the collider overlay keys.
func (gs *GameplayScene) updateToggles(e *ecs.ECS) {
	input := controls.Input(e.World)
	if input.JustPressed(cfg.ActionPause) {
		gs.paused = systems.ToggleSpawnerPaused(e.World)
	}
	if input.JustPressed(cfg.ActionDebugColliders) {
		cfg.Debug.ShowColliders = !cfg.Debug.ShowColliders
	}
}

// step advances the simulation and applies the dispatch error policy.
func (gs *GameplayScene) step(e *ecs.ECS) {
	if err := systems.Step(e.World, frameDelta()); err != nil {
		if cfg.Debug.StrictDispatch {
			panic(err)
		}
		log.Printf("Warning: frame aborted: %v", err)
	}
}

func (gs *GameplayScene) elapsed() float64 {
	if entry, ok := components.Flow.First(gs.ecs.World); ok {
		return components.Flow.Get(entry).Elapsed
	}
	return 0
}
