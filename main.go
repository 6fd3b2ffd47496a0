package main

import (
	"errors"
	"flag"
	"image"
	"io/fs"
	"log"

	"github.com/automoto/parry/config"
	"github.com/automoto/parry/fonts"
	"github.com/automoto/parry/scenes"
	"github.com/hajimehoshi/ebiten/v2"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	bounds image.Rectangle
	scene  Scene
}

// ChangeScene switches to a new scene
func (g *Game) ChangeScene(scene interface{}) {
	g.scene = scene.(Scene)
}

func NewGame() *Game {
	if err := fonts.LoadDefaults(config.UI.HUDFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	g := &Game{
		bounds: image.Rectangle{},
	}

	if config.Debug.SkipMenu {
		g.scene = scenes.NewGameplayScene(g)
	} else {
		g.scene = scenes.NewMenuScene(g)
	}

	return g
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	g.bounds = image.Rect(0, 0, config.C.Width, config.C.Height)
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML file overriding the default tuning")
	skipMenu := flag.Bool("skipmenu", false, "start directly in the arena")
	showColliders := flag.Bool("colliders", false, "outline every collider")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadOverridesFile(*configPath); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				log.Fatalf("Failed to load config: %v", err)
			}
			log.Printf("Warning: config %s not found, using defaults", *configPath)
		}
	}
	// flags win over the file
	if *skipMenu {
		config.Debug.SkipMenu = true
	}
	if *showColliders {
		config.Debug.ShowColliders = true
	}

	ebiten.SetWindowSize(config.C.Width/2, config.C.Height/2)
	ebiten.SetWindowTitle("Parry")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
