package gamemath

import "math"

// minAimDistanceSq is the squared distance under which an aim direction is
// treated as undefined.
const minAimDistanceSq = 0.0001

// CalculateDirectVelocity returns a velocity of the given speed pointing from
// spawn toward target. When the two points coincide the direction falls back
// to +X.
func CalculateDirectVelocity(spawn, target Vector, speed float64) Vector {
	dir := target.Sub(spawn)
	if dir.LengthSquared() < minAimDistanceSq {
		dir = Vector{X: 1}
	}
	return dir.Normalize().Scale(speed)
}

// CalculateBallisticVelocity solves for the launch velocity that carries a
// projectile from spawn to target in flightTime seconds under a constant
// downward gravity. flightTime is floored at minTime.
func CalculateBallisticVelocity(spawn, target Vector, gravity, flightTime, minTime float64) Vector {
	t := math.Max(flightTime, minTime)
	d := target.Sub(spawn)
	return Vector{
		X: d.X / t,
		Y: (d.Y - 0.5*gravity*t*t) / t,
	}
}

// PushOffscreen moves p just past the nearest edge of screen, pad pixels out.
func PushOffscreen(p Vector, screen Rect, pad float64) Vector {
	left := math.Abs(p.X - screen.X)
	right := math.Abs(screen.Right() - p.X)
	top := math.Abs(p.Y - screen.Y)
	bottom := math.Abs(screen.Bottom() - p.Y)

	m := math.Min(math.Min(left, right), math.Min(top, bottom))

	switch m {
	case left:
		return Vector{X: screen.X - pad, Y: p.Y}
	case right:
		return Vector{X: screen.Right() + pad, Y: p.Y}
	case top:
		return Vector{X: p.X, Y: screen.Y - pad}
	}
	return Vector{X: p.X, Y: screen.Bottom() + pad}
}
