package components

import (
	"github.com/automoto/parry/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ColliderHandler receives the entity that touched a collider.
type ColliderHandler func(w donburi.World, source *donburi.Entry) error

// ColliderKind labels a collider for hitbox selection and debug drawing.
type ColliderKind int

const (
	ColliderEnemy ColliderKind = iota
	ColliderBody
	ColliderSword
	ColliderShield
)

func (k ColliderKind) String() string {
	switch k {
	case ColliderBody:
		return "body"
	case ColliderSword:
		return "sword"
	case ColliderShield:
		return "shield"
	}
	return "enemy"
}

// BroadPhaseMargin pads the resolv proxy around the exact rect so sub-pixel
// overlaps at cell boundaries still share a cell.
const BroadPhaseMargin = 1.0

// ColliderData is an axis-aligned box. Overlap tests use the exact rect; the
// resolv object is a padded proxy used only for the broad phase.
// A trigger collider notifies its trigger handlers, a solid one its collision
// handlers. Handlers run in registration order. Every collider the game
// creates is a trigger; the solid path is only taken by callers that clear
// IsTrigger themselves.
type ColliderData struct {
	Object    *resolv.Object
	IsTrigger bool
	Kind      ColliderKind
	Owner     *donburi.Entry

	rect        gamemath.Rect
	onTrigger   []ColliderHandler
	onCollision []ColliderHandler
}

func (c *ColliderData) Rect() gamemath.Rect {
	return c.rect
}

// SetRect stores r and moves the broad phase proxy to match.
func (c *ColliderData) SetRect(r gamemath.Rect) {
	c.rect = r
	if c.Object == nil {
		return
	}
	if r.Empty() {
		c.Object.X, c.Object.Y, c.Object.W, c.Object.H = r.X, r.Y, 0, 0
	} else {
		c.Object.X, c.Object.Y = r.X-BroadPhaseMargin, r.Y-BroadPhaseMargin
		c.Object.W, c.Object.H = r.W+2*BroadPhaseMargin, r.H+2*BroadPhaseMargin
	}
	if c.Object.Space != nil {
		c.Object.Update()
	}
}

// Near reports whether the broad phase finds any object carrying one of tags
// in a cell shared with this collider. It reports true without a space, and
// when the proxy reaches past the space grid, where resolv keeps no cells.
func (c *ColliderData) Near(tags ...string) bool {
	if c.Object == nil || c.Object.Space == nil {
		return true
	}
	if c.Enabled() && c.beyondSpace() {
		return true
	}
	return c.Object.Check(0, 0, tags...) != nil
}

func (c *ColliderData) beyondSpace() bool {
	sp := c.Object.Space
	cx, cy, ex, ey := c.Object.BoundsToSpace(0, 0)
	return cx < 0 || cy < 0 || ex >= sp.Width() || ey >= sp.Height()
}

// Disable collapses the collider to an empty rect so it overlaps nothing
// while keeping its handlers attached.
func (c *ColliderData) Disable() {
	c.SetRect(gamemath.Rect{})
}

func (c *ColliderData) Enabled() bool {
	return !c.Rect().Empty()
}

// Intersects reports whether the two colliders overlap with positive area.
func (c *ColliderData) Intersects(o *ColliderData) bool {
	if o == nil {
		return false
	}
	return c.Rect().Intersects(o.Rect())
}

func (c *ColliderData) OnTrigger(h ColliderHandler) {
	c.onTrigger = append(c.onTrigger, h)
}

func (c *ColliderData) OnCollision(h ColliderHandler) {
	c.onCollision = append(c.onCollision, h)
}

// Notify dispatches source to the trigger or collision handlers. Dispatch
// stops at the first handler that returns an error.
func (c *ColliderData) Notify(w donburi.World, source *donburi.Entry) error {
	handlers := c.onCollision
	if c.IsTrigger {
		handlers = c.onTrigger
	}
	for _, h := range handlers {
		if err := h(w, source); err != nil {
			return err
		}
	}
	return nil
}

var Collider = donburi.NewComponentType[ColliderData]()
