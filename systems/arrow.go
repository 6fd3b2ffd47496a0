package systems

import (
	"github.com/automoto/parry/components"
	cfg "github.com/automoto/parry/config"
	"github.com/automoto/parry/gamemath"
	"github.com/yohamta/donburi"
)

// StartSpin switches an arrow into its spinning fall. Calling it again just
// overwrites the motion.
func StartSpin(arrow *donburi.Entry, vel gamemath.Vector, degPerSec, gravity float64) {
	en := components.Enemy.Get(arrow)
	en.Velocity = vel
	en.Gravity = gravity
	en.IgnorePlayerCollision = true

	a := components.Arrow.Get(arrow)
	a.Spinning = true
	a.AngularSpeed = degPerSec
}

// updateArrow keeps a flying arrow nose first and turns a spinning one.
func updateArrow(e *donburi.Entry, dt float64) {
	a := components.Arrow.Get(e)
	tr := components.Transform.Get(e)

	if a.Spinning {
		tr.Rotation = gamemath.WrapDegrees(tr.Rotation + a.AngularSpeed*dt)
		return
	}

	vel := components.Enemy.Get(e).Velocity
	if vel.LengthSquared() > cfg.Enemy.FaceDeadZoneSq {
		tr.Rotation = vel.Degrees()
	}
}
