package config

// ClipID names an animation clip.
type ClipID int

const (
	ClipNone ClipID = iota
	ClipIdle
	ClipAttack
	ClipDefend
	ClipHurt
	ClipDeath
	ClipShieldBlock
	ClipExplosion
)

type AnimationDef struct {
	Frames int
	FPS    float64
	Loop   bool
}

// Animations maps every clip to its frame count and playback rate.
var Animations = map[ClipID]AnimationDef{
	ClipIdle:        {Frames: 8, FPS: 8, Loop: true},
	ClipAttack:      {Frames: 8, FPS: 12},
	ClipDefend:      {Frames: 8, FPS: 8, Loop: true},
	ClipHurt:        {Frames: 4, FPS: 12},
	ClipDeath:       {Frames: 6, FPS: 12},
	ClipShieldBlock: {Frames: 4, FPS: 14},
	ClipExplosion:   {Frames: 8, FPS: 12},
}

// StateClips is the clip each player state plays on entry.
var StateClips = map[StateID]ClipID{
	Idle:   ClipIdle,
	Attack: ClipAttack,
	Defend: ClipDefend,
	Hurt:   ClipHurt,
	Dead:   ClipDeath,
}
