package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/fonts"
	"github.com/automoto/parry/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
	"golang.org/x/image/font"
)

// DrawHUD renders hearts, the deflect streak and the survival timer.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	flowEntry, ok := components.Flow.First(e.World)
	if !ok {
		return
	}
	flow := components.Flow.Get(flowEntry)
	if flow.Player == nil || !flow.Player.Valid() {
		return
	}

	hp := components.Health.Get(flow.Player)
	p := components.Player.Get(flow.Player)
	margin := float32(cfg.UI.HUDMargin)
	size := float32(cfg.UI.HeartSize)

	for i := range hp.Max {
		c := cfg.UI.HeartEmptyColor
		if i < hp.Current {
			c = cfg.UI.HeartFullColor
		}
		x := margin + float32(i)*(size+float32(cfg.UI.HeartGap))
		vector.FillRect(screen, x, margin, size, size, c, false)
	}

	face := fonts.Regular.Get()
	line := int(margin+size) + face.Metrics().Height.Ceil()
	streak := fmt.Sprintf("DEFLECTS %d/%d", p.DeflectStreak, p.DeflectHealThreshold)
	text.Draw(screen, streak, face, int(margin), line, cfg.UI.HUDTextColor)

	if flow.HealFlash > 0 {
		heartsW := float32(hp.Max) * (size + float32(cfg.UI.HeartGap))
		text.Draw(screen, "+1", face, int(margin+heartsW), int(margin+size), cfg.UI.HeartFullColor)
	}

	timer := systems.FormatElapsed(flow.Elapsed)
	w := font.MeasureString(face, timer).Ceil()
	text.Draw(screen, timer, face, screen.Bounds().Dx()-w-int(margin), int(margin+size), cfg.UI.HUDTextColor)
}

// DrawSpawnerPaused labels the top of the screen while spawning is held.
func DrawSpawnerPaused(screen *ebiten.Image) {
	drawCentered(screen, "SPAWNS PAUSED", fonts.Bold.Get(), int(cfg.UI.HUDMargin)+48, cfg.Yellow)
}

// drawCentered draws s horizontally centred with its baseline at y.
func drawCentered(screen *ebiten.Image, s string, face font.Face, y int, clr color.Color) {
	w := font.MeasureString(face, s).Ceil()
	text.Draw(screen, s, face, (screen.Bounds().Dx()-w)/2, y, clr)
}
