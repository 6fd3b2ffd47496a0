package components

import "github.com/yohamta/donburi"

// AutoDestroyData marks effects that remove themselves after a duration or
// when their one-shot clip ends.
type AutoDestroyData struct {
	TimeRemaining    float64 // seconds until destruction (<0 = use animation)
	DestroyOnAnimEnd bool
}

// Expired advances the timer by dt and reports whether the effect is done.
// anim may be nil for effects without a clip.
func (a *AutoDestroyData) Expired(dt float64, anim *AnimationData) bool {
	if a.DestroyOnAnimEnd && anim != nil && !anim.IsAnimating() {
		return true
	}
	if a.TimeRemaining < 0 {
		return false
	}
	a.TimeRemaining -= dt
	return a.TimeRemaining <= 0
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
