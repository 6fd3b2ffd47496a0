package components

import "github.com/yohamta/donburi"

type HealthData struct {
	Current int
	Max     int

	// Seconds left in the post-hit invulnerability window
	HurtCooldown float64
}

func (h *HealthData) IsDead() bool {
	return h.Current <= 0
}

func (h *HealthData) CanTakeDamage() bool {
	return h.HurtCooldown <= 0 && !h.IsDead()
}

var Health = donburi.NewComponentType[HealthData]()
