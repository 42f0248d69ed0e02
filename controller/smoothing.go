package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	dmath "github.com/yohamta/donburi/features/math"
)

// minSmoothTime keeps omega finite when a smoothing time of zero is configured.
const minSmoothTime = 0.0001

// SmoothDamp moves current toward target with a critically damped spring.
// velocity carries the spring state between calls and must belong to the
// value being smoothed. The result never overshoots target.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime
	exp := decay(omega * dt)

	change := current - target
	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	output := target + (change+temp)*exp

	if (target-current > 0) == (output > target) {
		output = target
		*velocity = 0
	}
	return output
}

// SmoothDampVec2 is the two-dimensional SmoothDamp. The overshoot guard is
// applied to the vector as a whole, so both components snap together.
func SmoothDampVec2(current, target dmath.Vec2, velocity *dmath.Vec2, smoothTime, dt float64) dmath.Vec2 {
	if dt <= 0 {
		return current
	}
	smoothTime = math.Max(minSmoothTime, smoothTime)
	omega := 2 / smoothTime
	exp := decay(omega * dt)

	changeX := current.X - target.X
	changeY := current.Y - target.Y

	tempX := (velocity.X + omega*changeX) * dt
	tempY := (velocity.Y + omega*changeY) * dt

	velocity.X = (velocity.X - omega*tempX) * exp
	velocity.Y = (velocity.Y - omega*tempY) * exp

	out := dmath.Vec2{
		X: target.X + (changeX+tempX)*exp,
		Y: target.Y + (changeY+tempY)*exp,
	}

	// Snap when the step crossed the target.
	toTargetX := target.X - current.X
	toTargetY := target.Y - current.Y
	pastX := out.X - target.X
	pastY := out.Y - target.Y
	if toTargetX*pastX+toTargetY*pastY > 0 {
		out = target
		velocity.X = 0
		velocity.Y = 0
	}
	return out
}

// decay approximates exp(-x) with the polynomial used by game-engine damping.
func decay(x float64) float64 {
	return 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)
}

// Lerp interpolates from a to b by t clamped to [0, 1].
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*mgl64.Clamp(t, 0, 1)
}

func finite(v dmath.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// normalized returns v scaled to unit length, or zero for tiny vectors.
func normalized(v dmath.Vec2) dmath.Vec2 {
	l := math.Hypot(v.X, v.Y)
	if l < 1e-5 {
		return dmath.Vec2{}
	}
	return dmath.Vec2{X: v.X / l, Y: v.Y / l}
}
