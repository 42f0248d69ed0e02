package controller

import (
	"errors"

	"github.com/go-gl/mathgl/mgl64"
	dmath "github.com/yohamta/donburi/features/math"
	"go.uber.org/zap"
)

var (
	ErrNoBody      = errors.New("controller: collision body is required")
	ErrNoTransform = errors.New("controller: transform is required")
	ErrNoCamera    = errors.New("controller: camera node is required")
	ErrNoInput     = errors.New("controller: input source is required")
)

// Controller is a first-person mouse-look and locomotion controller for one
// character. It is not safe for concurrent use; the host ticks it once per
// frame from its update loop.
type Controller struct {
	settings Settings
	host     Host
	log      *zap.Logger

	// look
	pitch              float64
	mouseDelta         dmath.Vec2
	mouseDeltaVelocity dmath.Vec2
	cursorLocked       bool

	// locomotion
	dir           dmath.Vec2
	dirVelocity   dmath.Vec2
	movementSpeed float64
	velocityY     float64
	isCrouching   bool
	isJumping     bool
	airborne      *AirborneState
}

// Frame is what happened during one Update.
type Frame struct {
	Pitch         float64
	MovementSpeed float64
	VelocityY     float64
	Velocity      mgl64.Vec3
	Flags         CollisionFlags
	Grounded      bool
	Crouching     bool
	Jumping       bool
	JumpStarted   bool
	JumpFinished  bool
	CrouchEntered bool
	CrouchExited  bool
}

type Option func(*Controller)

// WithLogger routes controller diagnostics to l.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		c.log = l
	}
}

// New validates the settings and the required collaborators.
func New(settings Settings, host Host, opts ...Option) (*Controller, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	switch {
	case host.Body == nil:
		return nil, ErrNoBody
	case host.Transform == nil:
		return nil, ErrNoTransform
	case host.Camera == nil:
		return nil, ErrNoCamera
	case host.Input == nil:
		return nil, ErrNoInput
	}

	c := &Controller{
		settings: settings,
		host:     host,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}

	if settings.CrouchHeight == settings.StandingHeight {
		c.log.Warn("crouch height equals standing height; the body will always read as crouched",
			zap.Float64("height", settings.CrouchHeight))
	}
	return c, nil
}

// Start prepares the body and cursor. Call it once before the first Update.
func (c *Controller) Start() {
	c.host.Body.SetHeight(c.settings.StandingHeight)
	c.movementSpeed = c.settings.WalkSpeed
	c.host.Camera.SetLocalPitch(c.pitch)
	if c.settings.LockCursor {
		c.SetCursorLocked(true)
	}
}

// Update advances look and locomotion by dt seconds.
func (c *Controller) Update(dt float64) Frame {
	var f Frame

	c.updateMouseLook(dt)
	c.updateMovement(dt, &f)

	if c.airborne != nil && !f.JumpStarted {
		if c.airborne.Advance(c.host.Body, c.settings.JumpFalloff, c.settings.JumpMultiplier, dt) {
			c.log.Debug("jump finished",
				zap.Int("steps", c.airborne.Steps),
				zap.Float64("airTime", c.airborne.Elapsed))
			c.airborne = nil
			c.isJumping = false
			f.JumpFinished = true
		}
	}

	f.Pitch = c.pitch
	f.MovementSpeed = c.movementSpeed
	f.VelocityY = c.velocityY
	f.Flags = c.host.Body.CollisionFlags()
	f.Grounded = c.host.Body.IsGrounded()
	f.Crouching = c.isCrouching
	f.Jumping = c.isJumping
	return f
}

// SetCursorLocked locks or releases the pointer. While released the mouse
// delta is ignored by the host input, not by the controller.
func (c *Controller) SetCursorLocked(locked bool) {
	c.cursorLocked = locked
	if c.host.Cursor == nil {
		return
	}
	if locked {
		c.host.Cursor.Lock()
	} else {
		c.host.Cursor.Unlock()
	}
}

func (c *Controller) CursorLocked() bool       { return c.cursorLocked }
func (c *Controller) Settings() Settings       { return c.settings }
func (c *Controller) Pitch() float64           { return c.pitch }
func (c *Controller) MovementSpeed() float64   { return c.movementSpeed }
func (c *Controller) IsJumping() bool          { return c.isJumping }
func (c *Controller) IsCrouching() bool        { return c.isCrouching }
func (c *Controller) Direction() dmath.Vec2    { return c.dir }
func (c *Controller) MouseDelta() dmath.Vec2   { return c.mouseDelta }
func (c *Controller) Airborne() *AirborneState { return c.airborne }
