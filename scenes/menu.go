package scenes

import (
	"image/color"
	"os"
	"sync"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/controls"
	"github.com/automoto/parry/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MenuScene displays the main menu
type MenuScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	once         sync.Once
}

// NewMenuScene creates a new menu scene
func NewMenuScene(sc SceneChanger) *MenuScene {
	return &MenuScene{sceneChanger: sc}
}

func (ms *MenuScene) Update() {
	ms.once.Do(ms.configure)
	ms.ecs.Update()
}

func (ms *MenuScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ms.ecs == nil {
		return
	}
	ms.ecs.Draw(screen)
}

func (ms *MenuScene) configure() {
	ms.ecs = ecs.NewECS(donburi.NewWorld())
	ms.ecs.World.Entry(ms.ecs.World.Create(components.Menu))

	ms.ecs.AddSystem(controls.UpdateInput)
	ms.ecs.AddSystem(ms.updateMenu)

	ms.ecs.AddRenderer(layerDefault, render.DrawMenu)
}

func (ms *MenuScene) updateMenu(e *ecs.ECS) {
	entry, _ := components.Menu.First(e.World)
	menu := components.Menu.Get(entry)

	// Slide out, then start the run
	if menu.Sliding() {
		offset, done := menu.Transition.Update(float32(frameDelta()))
		menu.Offset = float64(offset)
		if done && !menu.Done {
			menu.Done = true
			ms.sceneChanger.ChangeScene(NewGameplayScene(ms.sceneChanger))
		}
		return
	}

	input := controls.Input(e.World)
	numOptions := len(cfg.Menu.MenuOptions)
	if input.JustPressed(cfg.ActionMenuUp) {
		menu.Move(-1, numOptions)
	}
	if input.JustPressed(cfg.ActionMenuDown) {
		menu.Move(1, numOptions)
	}

	if input.JustPressed(cfg.ActionMenuSelect) {
		switch components.MainMenuOption(menu.SelectedIndex) {
		case components.MainMenuStart:
			menu.Transition = gween.New(0, float32(cfg.C.Height), float32(cfg.Menu.TransitionTime), ease.OutCubic)
		case components.MainMenuExit:
			os.Exit(0)
		}
	}

	// Allow back/escape to exit
	if input.JustPressed(cfg.ActionMenuBack) {
		os.Exit(0)
	}
}
