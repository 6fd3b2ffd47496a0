package render

import (
	"image/color"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawColliders outlines every enabled collider when the debug overlay is on.
func DrawColliders(e *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowColliders {
		return
	}

	components.Collider.Each(e.World, func(entry *donburi.Entry) {
		col := components.Collider.Get(entry)
		if !col.Enabled() {
			return
		}
		c, ok := cfg.UI.DebugColliderColors[col.Kind.String()]
		if !ok {
			c = color.RGBA{0, 255, 255, 255} // Cyan default
		}

		r := col.Rect()
		x, y, w, h := float32(r.X), float32(r.Y), float32(r.W), float32(r.H)
		vector.FillRect(screen, x, y, w, 1, c, false)     // Top
		vector.FillRect(screen, x, y+h-1, w, 1, c, false) // Bottom
		vector.FillRect(screen, x, y, 1, h, c, false)     // Left
		vector.FillRect(screen, x+w-1, y, 1, h, c, false) // Right
	})
}
