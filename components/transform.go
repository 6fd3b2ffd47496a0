package components

import (
	"github.com/automoto/parry/gamemath"
	"github.com/yohamta/donburi"
)

// TransformData is the visual placement of an entity. Position is the centre
// of the sprite; Width and Height are the unscaled frame size.
type TransformData struct {
	Position gamemath.Vector
	Width    float64
	Height   float64
	Scale    float64
	Rotation float64 // degrees
	FlipX    bool
}

// Bounds returns the scaled sprite rectangle centred on Position.
func (t *TransformData) Bounds() gamemath.Rect {
	return gamemath.RectCentered(t.Position, t.Width*t.Scale, t.Height*t.Scale)
}

var Transform = donburi.NewComponentType[TransformData]()
