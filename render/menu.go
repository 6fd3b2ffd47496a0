package render

import (
	"image/color"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// DrawMenu renders the main menu, shifted up by the slide-out offset.
func DrawMenu(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.Menu.First(e.World)
	if !ok {
		return
	}
	menu := components.Menu.Get(entry)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.Menu.BackgroundColor, false)

	off := -menu.Offset
	drawCentered(screen, "PARRY", fonts.Title.Get(), int(cfg.Menu.TitleY+off), cfg.Menu.TitleColor)
	drawOptions(screen, cfg.Menu.MenuOptions, menu.SelectedIndex,
		cfg.Menu.MenuStartY+off, cfg.Menu.MenuItemHeight+cfg.Menu.MenuItemGap,
		cfg.Menu.TextColorNormal, cfg.Menu.TextColorSelected)

	drawCentered(screen, "A/D turn   J attack   K defend   P pause", fonts.Small.Get(), int(float64(height)-48+off), cfg.Menu.TextColorNormal)
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.GameOver.First(e.World)
	if !ok {
		return
	}
	gameOver := components.GameOver.Get(entry)

	width := float32(screen.Bounds().Dx())
	height := float32(screen.Bounds().Dy())
	vector.FillRect(screen, 0, 0, width, height, cfg.GameOver.BackgroundColor, false)

	drawCentered(screen, "YOU DIED", fonts.Title.Get(), int(cfg.GameOver.TitleY), cfg.GameOver.TitleColor)
	drawOptions(screen, cfg.GameOver.MenuOptions, int(gameOver.SelectedOption),
		cfg.GameOver.MenuStartY, cfg.GameOver.MenuItemHeight+cfg.GameOver.MenuItemGap,
		cfg.GameOver.TextColorNormal, cfg.GameOver.TextColorSelected)
}

// DrawSurvived prints the final survival time under the game over title.
func DrawSurvived(screen *ebiten.Image, elapsed string) {
	drawCentered(screen, "SURVIVED "+elapsed, fonts.Bold.Get(), int(cfg.GameOver.TitleY)+80, cfg.White)
}

func drawOptions(screen *ebiten.Image, options []string, selected int, startY, step float64,
	normal, highlight color.Color) {
	face := fonts.Bold.Get()
	for i, option := range options {
		c := normal
		if i == selected {
			c = highlight
		}
		y := startY + float64(i)*step
		drawCentered(screen, option, face, int(y), c)
	}
}
