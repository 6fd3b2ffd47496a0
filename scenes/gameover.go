package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/controls"
	"github.com/automoto/parry/render"
	"github.com/automoto/parry/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	elapsed      float64
	once         sync.Once
}

// NewGameOverScene creates a game over scene for a run that lasted elapsed seconds
func NewGameOverScene(sc SceneChanger, elapsed float64) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, elapsed: elapsed}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
	render.DrawSurvived(screen, systems.FormatElapsed(gs.elapsed))
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())
	entry := gs.ecs.World.Entry(gs.ecs.World.Create(components.GameOver))
	components.GameOver.SetValue(entry, components.GameOverData{
		SelectedOption: components.GameOverRetry,
	})

	gs.ecs.AddSystem(controls.UpdateInput)
	gs.ecs.AddSystem(gs.updateGameOver)

	gs.ecs.AddRenderer(layerDefault, render.DrawGameOver)
}

func (gs *GameOverScene) updateGameOver(e *ecs.ECS) {
	entry, _ := components.GameOver.First(e.World)
	gameOver := components.GameOver.Get(entry)
	input := controls.Input(e.World)

	if input.JustPressed(cfg.ActionMenuUp) {
		gameOver.Move(-1)
	}
	if input.JustPressed(cfg.ActionMenuDown) {
		gameOver.Move(1)
	}

	if input.JustPressed(cfg.ActionMenuSelect) {
		switch gameOver.SelectedOption {
		case components.GameOverRetry:
			gs.sceneChanger.ChangeScene(NewGameplayScene(gs.sceneChanger))
		case components.GameOverMenu:
			gs.sceneChanger.ChangeScene(NewMenuScene(gs.sceneChanger))
		}
	}
}
