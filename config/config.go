package config

import "image/color"

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	MaxHP int `yaml:"max_hp"`

	// Timing (seconds)
	AttackCooldown    float64 `yaml:"attack_cooldown"`
	HurtInvulnTime    float64 `yaml:"hurt_invuln_time"`
	ShieldBlockFxTime float64 `yaml:"shield_block_fx_time"`
	GameOverDelay     float64 `yaml:"game_over_delay"`

	// Deflects needed for a 1 HP heal
	DeflectHealThreshold int `yaml:"deflect_heal_threshold"`

	// Dimensions
	FrameWidth  float64 `yaml:"frame_width"`
	FrameHeight float64 `yaml:"frame_height"`
	Scale       float64 `yaml:"scale"`
}

// HitboxConfig shapes the player's body, sword and shield rectangles.
type HitboxConfig struct {
	BodyWidthScale  float64 `yaml:"body_width_scale"`
	BodyHeightScale float64 `yaml:"body_height_scale"`
	BodyOffsetY     float64 `yaml:"body_offset_y"`

	SwordWidthScale   float64 `yaml:"sword_width_scale"`   // relative to body width
	SwordOverlapScale float64 `yaml:"sword_overlap_scale"` // relative to body width
	SwordMinOverlap   float64 `yaml:"sword_min_overlap"`

	ShieldWidthScale  float64 `yaml:"shield_width_scale"`  // relative to sprite width
	ShieldHeightScale float64 `yaml:"shield_height_scale"` // relative to sprite height
}

// CombatConfig contains deflect and block tuning
type CombatConfig struct {
	// Sword vs bomb
	BombReboundFallbackSpeed float64 `yaml:"bomb_rebound_fallback_speed"`
	BombReboundMinSpeed      float64 `yaml:"bomb_rebound_min_speed"`
	BombReboundNudge         float64 `yaml:"bomb_rebound_nudge"`

	// Sword/shield vs arrow
	ArrowBounceKeep    float64 `yaml:"arrow_bounce_keep"`
	ArrowBounceUpKick  float64 `yaml:"arrow_bounce_up_kick"`
	ArrowBounceMinX    float64 `yaml:"arrow_bounce_min_x"`
	ArrowFallbackSpeed float64 `yaml:"arrow_fallback_speed"`
	ArrowSpinGravity   float64 `yaml:"arrow_spin_gravity"`
	ArrowSpinDegPerSec float64 `yaml:"arrow_spin_deg_per_sec"`

	// Shield vs bomb
	ShieldBombPenalty int `yaml:"shield_bomb_penalty"`
}

// EnemyConfig contains behavior shared by every projectile enemy
type EnemyConfig struct {
	OffscreenPadding float64 `yaml:"offscreen_padding"`
	FaceDeadZoneSq   float64 `yaml:"face_dead_zone_sq"`
}

// ArrowConfig contains arrow projectile configuration
type ArrowConfig struct {
	Damage      int     `yaml:"damage"`
	FrameWidth  float64 `yaml:"frame_width"`
	FrameHeight float64 `yaml:"frame_height"`
	Scale       float64 `yaml:"scale"`
}

// BombConfig contains bomb projectile configuration
type BombConfig struct {
	Damage        int     `yaml:"damage"`
	SpinDegPerSec float64 `yaml:"spin_deg_per_sec"`
	FrameWidth    float64 `yaml:"frame_width"`
	FrameHeight   float64 `yaml:"frame_height"`
	Scale         float64 `yaml:"scale"`

	// Explode instead of silently despawning when leaving the screen
	ExplodeOnExit bool `yaml:"explode_on_exit"`

	ExplosionScale       float64 `yaml:"explosion_scale"`
	ExplosionFrameWidth  float64 `yaml:"explosion_frame_width"`
	ExplosionFrameHeight float64 `yaml:"explosion_frame_height"`
}

// SpawnerConfig contains enemy spawn cadence and aiming configuration
type SpawnerConfig struct {
	MinInterval float64 `yaml:"min_interval"`
	MaxInterval float64 `yaml:"max_interval"`

	ArrowSpeedMin float64 `yaml:"arrow_speed_min"`
	ArrowSpeedMax float64 `yaml:"arrow_speed_max"`
	ArrowChance   float64 `yaml:"arrow_chance"` // 0..1, rest are bombs

	BombGravity       float64 `yaml:"bomb_gravity"`
	BombTimeMin       float64 `yaml:"bomb_time_min"`
	BombTimeMax       float64 `yaml:"bomb_time_max"`
	BombMinFlightTime float64 `yaml:"bomb_min_flight_time"`

	OffscreenPad float64 `yaml:"offscreen_pad"`
	SideOffset   float64 `yaml:"side_offset"` // default points sit this far past the left/right edges

	LevelPath string `yaml:"level_path"`
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
	TransitionTime    float64 // seconds for the slide-out tween
}

// GameOverConfig contains game over screen configuration values
type GameOverConfig struct {
	BackgroundColor   color.RGBA
	TitleColor        color.RGBA
	TextColorNormal   color.RGBA
	TextColorSelected color.RGBA
	TitleY            float64
	MenuStartY        float64
	MenuItemHeight    float64
	MenuItemGap       float64
	MenuOptions       []string
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HeartSize   float64
	HeartGap    float64
	HUDMargin   float64
	HUDFontSize float64

	HeartFullColor  color.RGBA
	HeartEmptyColor color.RGBA
	HUDTextColor    color.RGBA
	HealFlashTime   float64 // seconds the "+1" deflect heal label stays up

	// Debug colors
	DebugColliderColors map[string]color.RGBA
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu      bool `yaml:"skip_menu"`      // Skip menu and go directly to game
	ShowColliders bool `yaml:"show_colliders"` // Outline every collider rect
	// StrictDispatch turns a failing trigger handler into a panic instead of a logged warning.
	StrictDispatch bool `yaml:"strict_dispatch"`
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Hitbox HitboxConfig
var Combat CombatConfig
var Enemy EnemyConfig
var Arrow ArrowConfig
var Bomb BombConfig
var Spawner SpawnerConfig
var Menu MenuConfig
var GameOver GameOverConfig
var UI UIConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Grey         = color.RGBA{R: 70, G: 70, B: 80, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255} // Selected menu items
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}  // Unselected menu items
	Background   = color.RGBA{R: 24, G: 22, B: 34, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration block to its defaults.
func Reset() {
	C = &Config{
		Width:  1920,
		Height: 1080,
	}

	// Player Config
	Player = PlayerConfig{
		MaxHP: 5,

		AttackCooldown:    0.85,
		HurtInvulnTime:    0.30,
		ShieldBlockFxTime: 0.25,
		GameOverDelay:     2.0,

		DeflectHealThreshold: 5,

		FrameWidth:  128,
		FrameHeight: 128,
		Scale:       1.5,
	}

	Hitbox = HitboxConfig{
		BodyWidthScale:  0.25,
		BodyHeightScale: 0.70,
		BodyOffsetY:     6,

		SwordWidthScale:   1.5,
		SwordOverlapScale: 0.02,
		SwordMinOverlap:   1,

		ShieldWidthScale:  0.15,
		ShieldHeightScale: 0.5,
	}

	Combat = CombatConfig{
		BombReboundFallbackSpeed: 300,
		BombReboundMinSpeed:      300,
		BombReboundNudge:         8,

		ArrowBounceKeep:    0.45,
		ArrowBounceUpKick:  420,
		ArrowBounceMinX:    120,
		ArrowFallbackSpeed: 450,
		ArrowSpinGravity:   1400,
		ArrowSpinDegPerSec: 1080,

		ShieldBombPenalty: 1,
	}

	Enemy = EnemyConfig{
		OffscreenPadding: 48,
		FaceDeadZoneSq:   0.0001,
	}

	Arrow = ArrowConfig{
		Damage:      1,
		FrameWidth:  160,
		FrameHeight: 32,
		Scale:       0.4,
	}

	Bomb = BombConfig{
		Damage:        2,
		SpinDegPerSec: 540,
		FrameWidth:    400,
		FrameHeight:   400,
		Scale:         0.15,

		ExplodeOnExit: false,

		ExplosionScale:       0.7,
		ExplosionFrameWidth:  192,
		ExplosionFrameHeight: 192,
	}

	Spawner = SpawnerConfig{
		MinInterval: 1.2,
		MaxInterval: 2.5,

		ArrowSpeedMin: 550,
		ArrowSpeedMax: 750,
		ArrowChance:   0.5,

		BombGravity:       450,
		BombTimeMin:       0.9,
		BombTimeMax:       1.6,
		BombMinFlightTime: 0.2,

		OffscreenPad: 64,
		SideOffset:   100,

		LevelPath: "levels/arena.tmx",
	}

	Menu = MenuConfig{
		BackgroundColor:   Background,
		TitleColor:        White,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            340,
		MenuStartY:        560,
		MenuItemHeight:    48,
		MenuItemGap:       24,
		MenuOptions:       []string{"START", "EXIT"},
		TransitionTime:    0.6,
	}

	GameOver = GameOverConfig{
		BackgroundColor:   BlackOverlay,
		TitleColor:        Red,
		TextColorNormal:   DarkBlue,
		TextColorSelected: LightBlue,
		TitleY:            360,
		MenuStartY:        600,
		MenuItemHeight:    48,
		MenuItemGap:       24,
		MenuOptions:       []string{"RETRY", "MAIN MENU"},
	}

	UI = UIConfig{
		HeartSize:   36,
		HeartGap:    12,
		HUDMargin:   32,
		HUDFontSize: 36,

		HeartFullColor:  Red,
		HeartEmptyColor: Grey,
		HUDTextColor:    White,
		HealFlashTime:   1.0,

		DebugColliderColors: map[string]color.RGBA{
			"body":   Green,
			"sword":  Orange,
			"shield": LightBlue,
			"enemy":  Magenta,
		},
	}

	Debug = DebugConfig{}
}
