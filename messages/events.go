// Package messages defines the notifications the combat core raises for the
// HUD, effects and game flow. Events are queued on publish and delivered when
// the frame pipeline processes them.
package messages

import (
	"github.com/automoto/parry/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

type PlayerDamaged struct {
	Player *donburi.Entry
	HP     int
}

type PlayerHealed struct {
	Player *donburi.Entry
	HP     int
}

type PlayerDied struct {
	Player *donburi.Entry
}

// DeflectHeal is raised when a deflect streak reaches its threshold.
type DeflectHeal struct {
	Player *donburi.Entry
	HP     int // after the heal
}

type EnemyDestroyed struct {
	Kind components.EnemyKind
}

type BombExploded struct {
	X, Y      float64
	HitPlayer bool
}

// GameOver is raised once when the deferred game over fires.
type GameOver struct {
	Player  *donburi.Entry
	Elapsed float64
}

var (
	PlayerDamagedEvent  = events.NewEventType[PlayerDamaged]()
	PlayerHealedEvent   = events.NewEventType[PlayerHealed]()
	PlayerDiedEvent     = events.NewEventType[PlayerDied]()
	DeflectHealEvent    = events.NewEventType[DeflectHeal]()
	EnemyDestroyedEvent = events.NewEventType[EnemyDestroyed]()
	BombExplodedEvent   = events.NewEventType[BombExploded]()
	GameOverEvent       = events.NewEventType[GameOver]()
)
