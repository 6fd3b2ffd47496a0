package factory

import (
	"github.com/automoto/parry/archetypes"
	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/automoto/parry/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player centred at pos with its three hitboxes.
// Hitboxes start empty; the player system sizes them every frame.
func CreatePlayer(w donburi.World, pos gamemath.Vector) *donburi.Entry {
	player := archetypes.Player.Spawn(w)

	components.Transform.SetValue(player, components.TransformData{
		Position: pos,
		Width:    cfg.Player.FrameWidth,
		Height:   cfg.Player.FrameHeight,
		Scale:    cfg.Player.Scale,
	})
	components.Health.SetValue(player, components.HealthData{
		Current: cfg.Player.MaxHP,
		Max:     cfg.Player.MaxHP,
	})
	components.State.SetValue(player, components.StateData{
		CurrentState:  cfg.Idle,
		PreviousState: cfg.StateNone,
	})
	components.Animation.Get(player).Play(cfg.ClipIdle)

	body := CreateHitbox(w, player, components.ColliderBody)
	sword := CreateHitbox(w, player, components.ColliderSword)
	shield := CreateHitbox(w, player, components.ColliderShield)

	components.Player.SetValue(player, components.PlayerData{
		FacingRight:          true,
		ControlsEnabled:      true,
		DeflectHealThreshold: cfg.Player.DeflectHealThreshold,
		Body:                 body,
		Sword:                sword,
		Shield:               shield,
	})

	return player
}

// CreateHitbox spawns a trigger collider owned by owner.
func CreateHitbox(w donburi.World, owner *donburi.Entry, kind components.ColliderKind) *donburi.Entry {
	hitbox := archetypes.Hitbox.Spawn(w)

	obj := resolv.NewObject(0, 0, 0, 0, tags.ResolvPlayer)
	obj.Data = hitbox
	addToSpace(w, obj)

	components.Collider.SetValue(hitbox, components.ColliderData{
		Object:    obj,
		IsTrigger: true,
		Kind:      kind,
		Owner:     owner,
	})
	return hitbox
}
