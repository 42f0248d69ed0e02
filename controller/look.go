package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
	dmath "github.com/yohamta/donburi/features/math"
)

// updateMouseLook smooths the pointer delta, pitches the camera within the
// pitch limit and yaws the body. Non-finite input is read as no movement,
// and a filter that overflows is reset, so pitch and yaw stay finite.
func (c *Controller) updateMouseLook(dt float64) {
	in := c.host.Input
	target := dmath.Vec2{X: in.Axis(AxisMouseX), Y: in.Axis(AxisMouseY)}
	if !finite(target) {
		target = dmath.Vec2{}
	}

	c.mouseDelta = SmoothDampVec2(c.mouseDelta, target, &c.mouseDeltaVelocity, c.settings.MouseSmoothTime, dt)
	if !finite(c.mouseDelta) || !finite(c.mouseDeltaVelocity) {
		c.mouseDelta = dmath.Vec2{}
		c.mouseDeltaVelocity = dmath.Vec2{}
	}

	limit := c.settings.PitchLimit
	if pitch := c.pitch - c.mouseDelta.Y*c.settings.MouseSensitivity; !math.IsNaN(pitch) {
		c.pitch = mgl64.Clamp(pitch, -limit, limit)
	}
	c.host.Camera.SetLocalPitch(c.pitch)

	if yaw := c.mouseDelta.X * c.settings.MouseSensitivity; !math.IsInf(yaw, 0) && !math.IsNaN(yaw) {
		c.host.Transform.Rotate(yaw)
	}
}
