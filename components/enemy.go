package components

import (
	"github.com/automoto/parry/gamemath"
	"github.com/yohamta/donburi"
)

// EnemyKind is the closed set of projectile enemies.
type EnemyKind int

const (
	EnemyArrow EnemyKind = iota + 1
	EnemyBomb
)

func (k EnemyKind) String() string {
	switch k {
	case EnemyArrow:
		return "arrow"
	case EnemyBomb:
		return "bomb"
	}
	return "unknown"
}

type EnemyData struct {
	Kind     EnemyKind
	Velocity gamemath.Vector // px/sec
	Gravity  float64         // px/sec^2, applied to Y
	Damage   int
	Alive    bool

	// Skip body hits (set after a deflect or once a bomb has exploded)
	IgnorePlayerCollision bool

	// Despawn only after having been visible once
	HasEnteredViewport bool
	OffscreenPadding   float64

	Player *donburi.Entry // target
}

var Enemy = donburi.NewComponentType[EnemyData]()

// ArrowData is the Flying/Spinning state of an arrow.
type ArrowData struct {
	Spinning     bool
	AngularSpeed float64 // deg/sec while spinning
}

var Arrow = donburi.NewComponentType[ArrowData]()

// BombData holds the explode latch and visual spin of a bomb.
type BombData struct {
	Exploded      bool
	SpinDegPerSec float64
}

var Bomb = donburi.NewComponentType[BombData]()
