package tags

import "github.com/yohamta/donburi"

var (
	Player    = donburi.NewTag().SetName("Player")
	Hitbox    = donburi.NewTag().SetName("Hitbox")
	Enemy     = donburi.NewTag().SetName("Enemy")
	Explosion = donburi.NewTag().SetName("Explosion")
	Spawner   = donburi.NewTag().SetName("Spawner")
)

// Resolv tags for collider broad phase
const (
	ResolvPlayer = "Player"
	ResolvEnemy  = "Enemy"
	ResolvArrow  = "Arrow"
	ResolvBomb   = "Bomb"
)
