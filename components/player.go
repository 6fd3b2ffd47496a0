package components

import (
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	FacingRight     bool
	ControlsEnabled bool

	AttackCooldown float64 // seconds until Attack can start again

	DeflectStreak        int
	DeflectHealThreshold int

	ShieldBlockTimer float64 // seconds left on the shield block clip

	// Hitbox entities, each carrying a Collider owned by the player
	Body   *donburi.Entry
	Sword  *donburi.Entry
	Shield *donburi.Entry

	GameOverScheduled bool
}

func (p *PlayerData) CanAttack() bool {
	return p.AttackCooldown <= 0
}

// FacingSign is +1 when facing right and -1 when facing left.
func (p *PlayerData) FacingSign() float64 {
	if p.FacingRight {
		return 1
	}
	return -1
}

var Player = donburi.NewComponentType[PlayerData]()
