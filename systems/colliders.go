package systems

import (
	"math"

	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/yohamta/donburi"
)

// BodyRect is the shrunken, slightly lowered hurtbox inside sprite bounds r.
func BodyRect(r gamemath.Rect) gamemath.Rect {
	bw := r.W * cfg.Hitbox.BodyWidthScale
	bh := r.H * cfg.Hitbox.BodyHeightScale
	c := r.Center()
	return gamemath.NewRect(c.X-bw/2, c.Y-bh/2+cfg.Hitbox.BodyOffsetY, bw, bh)
}

// SwordRect extends from the leading edge of body, overlapping it slightly so
// the blade starts flush with the body.
func SwordRect(body gamemath.Rect, facingRight bool) gamemath.Rect {
	w := body.W * cfg.Hitbox.SwordWidthScale
	h := body.H
	y := body.Center().Y - h/2
	overlap := math.Max(cfg.Hitbox.SwordMinOverlap, body.W*cfg.Hitbox.SwordOverlapScale)

	x := body.X - w + overlap
	if facingRight {
		x = body.Right() - overlap
	}
	return gamemath.NewRect(x, y, w, h)
}

// ShieldRect is a narrow plate from the centre of sprite bounds r toward the
// facing side.
func ShieldRect(r gamemath.Rect, facingRight bool) gamemath.Rect {
	w := r.W * cfg.Hitbox.ShieldWidthScale
	h := r.H * cfg.Hitbox.ShieldHeightScale
	c := r.Center()

	x := c.X - w
	if facingRight {
		x = c.X
	}
	return gamemath.NewRect(x, c.Y-h/2, w, h)
}

// UpdatePlayerColliders resizes the player's hitboxes from its sprite bounds
// and state. The sword is live only in Attack and the shield only in Defend;
// inactive hitboxes are collapsed, never removed.
func UpdatePlayerColliders(player *donburi.Entry) {
	p := components.Player.Get(player)
	state := components.State.Get(player).CurrentState
	bounds := components.Transform.Get(player).Bounds()

	body := BodyRect(bounds)
	if c := colliderOf(p.Body); c != nil {
		c.SetRect(body)
	}

	if c := colliderOf(p.Sword); c != nil {
		if state == cfg.Attack {
			base := body
			if base.Empty() {
				base = bounds
			}
			c.SetRect(SwordRect(base, p.FacingRight))
		} else {
			c.Disable()
		}
	}

	if c := colliderOf(p.Shield); c != nil {
		if state == cfg.Defend {
			c.SetRect(ShieldRect(bounds, p.FacingRight))
		} else {
			c.Disable()
		}
	}
}

// colliderOf returns e's collider or nil when e is gone.
func colliderOf(e *donburi.Entry) *components.ColliderData {
	if e == nil || !e.Valid() || !e.HasComponent(components.Collider) {
		return nil
	}
	return components.Collider.Get(e)
}
