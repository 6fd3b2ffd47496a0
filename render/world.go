// Package render draws the combat world with ebiten vector primitives.
package render

import (
	"image/color"
	"math"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	playerColors = map[cfg.StateID]color.RGBA{
		cfg.Idle:   {R: 200, G: 200, B: 220, A: 255},
		cfg.Attack: {R: 255, G: 230, B: 140, A: 255},
		cfg.Defend: {R: 140, G: 190, B: 255, A: 255},
		cfg.Hurt:   {R: 255, G: 90, B: 90, A: 255},
		cfg.Dead:   {R: 90, G: 90, B: 100, A: 255},
	}
	bladeColor  = color.RGBA{R: 235, G: 235, B: 255, A: 255}
	shieldColor = color.RGBA{R: 90, G: 140, B: 230, A: 255}
	arrowColor  = color.RGBA{R: 200, G: 150, B: 90, A: 255}
	bombColor   = color.RGBA{R: 40, G: 40, B: 48, A: 255}
	fuseColor   = color.RGBA{R: 255, G: 160, B: 0, A: 255}
)

// DrawWorld renders the player, enemies and effects.
func DrawWorld(e *ecs.ECS, screen *ebiten.Image) {
	tags.Player.Each(e.World, func(entry *donburi.Entry) {
		drawPlayer(screen, entry)
	})
	tags.Enemy.Each(e.World, func(entry *donburi.Entry) {
		en := components.Enemy.Get(entry)
		switch en.Kind {
		case components.EnemyArrow:
			drawArrow(screen, entry)
		case components.EnemyBomb:
			drawBomb(screen, entry)
		}
	})
	tags.Explosion.Each(e.World, func(entry *donburi.Entry) {
		drawExplosion(screen, entry)
	})
}

func drawPlayer(screen *ebiten.Image, entry *donburi.Entry) {
	p := components.Player.Get(entry)
	state := components.State.Get(entry).CurrentState

	body := components.Collider.Get(p.Body).Rect()
	c := playerColors[state]
	if components.Health.Get(entry).HurtCooldown > 0 && state != cfg.Dead {
		// blink while invulnerable
		if int(components.Health.Get(entry).HurtCooldown*20)%2 == 0 {
			c.A = 120
		}
	}
	vector.FillRect(screen, float32(body.X), float32(body.Y), float32(body.W), float32(body.H), c, false)

	if sword := components.Collider.Get(p.Sword); sword.Enabled() {
		r := sword.Rect()
		// blade sweeps down over the attack clip
		anim := components.Animation.Get(entry)
		t := float64(anim.Frame) / float64(max(anim.Frames-1, 1))
		y := r.Y + r.H*t
		x0, x1 := r.X, r.Right()
		if !p.FacingRight {
			x0, x1 = x1, x0
		}
		vector.StrokeLine(screen, float32(x0), float32(r.Center().Y), float32(x1), float32(y), 6, bladeColor, true)
	}

	if shield := components.Collider.Get(p.Shield); shield.Enabled() {
		r := shield.Rect()
		c := shieldColor
		if p.ShieldBlockTimer > 0 {
			c = cfg.White
		}
		vector.FillRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c, false)
	}
}

func drawArrow(screen *ebiten.Image, entry *donburi.Entry) {
	tr := components.Transform.Get(entry)
	half := tr.Width * tr.Scale / 2
	rad := tr.Rotation * math.Pi / 180
	dx, dy := math.Cos(rad)*half, math.Sin(rad)*half

	x, y := tr.Position.X, tr.Position.Y
	vector.StrokeLine(screen, float32(x-dx), float32(y-dy), float32(x+dx), float32(y+dy), 4, arrowColor, true)
	vector.FillCircle(screen, float32(x+dx), float32(y+dy), 4, cfg.White, true)
}

func drawBomb(screen *ebiten.Image, entry *donburi.Entry) {
	tr := components.Transform.Get(entry)
	r := tr.Width * tr.Scale / 2
	x, y := tr.Position.X, tr.Position.Y
	vector.FillCircle(screen, float32(x), float32(y), float32(r), bombColor, true)

	// spinning fuse
	rad := tr.Rotation * math.Pi / 180
	fx, fy := x+math.Cos(rad)*r, y+math.Sin(rad)*r
	vector.FillCircle(screen, float32(fx), float32(fy), float32(r/5), fuseColor, true)
}

func drawExplosion(screen *ebiten.Image, entry *donburi.Entry) {
	tr := components.Transform.Get(entry)
	anim := components.Animation.Get(entry)

	t := float64(anim.Frame+1) / float64(anim.Frames)
	r := tr.Width * tr.Scale / 2 * t
	c := color.RGBA{R: 255, G: uint8(200 - 140*t), B: 0, A: uint8(255 - 180*t)}
	vector.FillCircle(screen, float32(tr.Position.X), float32(tr.Position.Y), float32(r), c, true)
}
