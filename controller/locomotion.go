package controller

import (
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

func (c *Controller) updateMovement(dt float64, f *Frame) {
	in := c.host.Input
	body := c.host.Body

	target := normalized(dmath.Vec2{X: in.AxisRaw(AxisHorizontal), Y: in.AxisRaw(AxisVertical)})
	c.dir = SmoothDampVec2(c.dir, target, &c.dirVelocity, c.settings.MoveSmoothTime, dt)

	if body.IsGrounded() {
		c.velocityY = 0
	}
	c.velocityY += c.settings.Gravity * dt

	tr := c.host.Transform
	horizontal := tr.Forward().Mul(c.dir.Y).Add(tr.Right().Mul(c.dir.X)).Mul(c.movementSpeed)
	f.Velocity = horizontal.Add(Up.Mul(c.velocityY))
	body.Move(f.Velocity.Mul(dt))

	c.updateMovementSpeed(dt)
	c.handleJumpInput(dt, f)
	c.handleCrouchInput(f)

	if c.isCrouching {
		c.isJumping = false
		c.movementSpeed = c.settings.CrouchSpeed
	}
	// Re-derived from the body every frame, so an external height change
	// also changes the crouch state.
	c.isCrouching = body.Height() == c.settings.CrouchHeight
}

func (c *Controller) updateMovementSpeed(dt float64) {
	t := dt * c.settings.RunBuildUpSpeed
	if !c.isCrouching && c.host.Input.Held(ActionRun) {
		c.movementSpeed = Lerp(c.movementSpeed, c.settings.RunSpeed, t)
		return
	}
	c.movementSpeed = Lerp(c.movementSpeed, c.settings.WalkSpeed, t)
}

func (c *Controller) handleJumpInput(dt float64, f *Frame) {
	if !c.host.Input.Pressed(ActionJump) {
		return
	}
	if !c.host.Body.IsGrounded() || c.isCrouching || c.isJumping {
		return
	}

	c.isJumping = true
	c.airborne = &AirborneState{}
	c.airborne.Step(c.host.Body, c.settings.JumpFalloff, c.settings.JumpMultiplier, dt)
	f.JumpStarted = true
	c.log.Debug("jump started", zap.Float64("force", c.airborne.LastForce))
}

func (c *Controller) handleCrouchInput(f *Frame) {
	in := c.host.Input
	body := c.host.Body

	if in.Pressed(ActionCrouch) {
		body.SetHeight(c.settings.CrouchHeight)
		c.movementSpeed = c.settings.CrouchSpeed
		c.isCrouching = true
		f.CrouchEntered = true
		c.log.Debug("crouch entered", zap.Float64("height", c.settings.CrouchHeight))
	}
	if in.Released(ActionCrouch) {
		body.SetHeight(c.settings.StandingHeight)
		c.movementSpeed = c.settings.WalkSpeed
		c.isCrouching = false
		f.CrouchExited = true
		c.log.Debug("crouch exited", zap.Float64("height", c.settings.StandingHeight))
	}
}
