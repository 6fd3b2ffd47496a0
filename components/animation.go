package components

import (
	"github.com/automoto/parry/config"
	"github.com/yohamta/donburi"
)

// AnimationData steps through the frames of a single clip.
type AnimationData struct {
	Clip      config.ClipID
	Frame     int
	Frames    int
	FPS       float64
	Loop      bool
	Animating bool

	frameTimer float64
}

// Play restarts playback on clip using its definition in config.Animations.
func (a *AnimationData) Play(clip config.ClipID) {
	def := config.Animations[clip]
	a.PlayWith(clip, def.Frames, def.FPS, def.Loop)
}

func (a *AnimationData) PlayWith(clip config.ClipID, frames int, fps float64, loop bool) {
	a.Clip = clip
	a.Frames = max(frames, 1)
	a.FPS = fps
	a.Loop = loop
	a.Frame = 0
	a.frameTimer = 0
	a.Animating = true
}

// Update advances at most one frame per call once more than 1/FPS seconds
// have accumulated. A one-shot clip stops after its last frame.
func (a *AnimationData) Update(dt float64) {
	if !a.Animating || a.FPS <= 0 {
		return
	}
	a.frameTimer += dt
	if a.frameTimer <= 1/a.FPS {
		return
	}
	a.frameTimer = 0

	if a.Loop {
		a.Frame = (a.Frame + 1) % a.Frames
		return
	}
	if a.Frame+1 < a.Frames {
		a.Frame++
		return
	}
	a.Animating = false
}

func (a *AnimationData) IsAnimating() bool {
	return a.Animating
}

var Animation = donburi.NewComponentType[AnimationData]()
