package controller

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Up is the world up axis.
var Up = mgl64.Vec3{0, 1, 0}

// CollisionFlags reports which sides of the body touched geometry during
// the last Move.
type CollisionFlags uint8

const (
	CollidedSides CollisionFlags = 1 << iota
	CollidedAbove
	CollidedBelow

	CollidedNone CollisionFlags = 0
)

func (f CollisionFlags) Has(flag CollisionFlags) bool {
	return f&flag != 0
}

// Axis identifies an analog input.
type Axis int

const (
	AxisMouseX Axis = iota
	AxisMouseY
	AxisHorizontal
	AxisVertical
)

// Action identifies a digital input the controller reacts to.
type Action int

const (
	ActionRun Action = iota
	ActionJump
	ActionCrouch
)

// CollisionBody is the collision volume the controller drives.
type CollisionBody interface {
	IsGrounded() bool
	Height() float64
	SetHeight(h float64)
	// Move displaces the body by delta with collision resolution and
	// returns the flags of this move.
	Move(delta mgl64.Vec3) CollisionFlags
	// CollisionFlags returns the flags of the most recent Move.
	CollisionFlags() CollisionFlags
}

// Transform is the body orientation. Yaw is applied here and movement is
// expressed in its forward/right basis.
type Transform interface {
	Rotate(yawDegrees float64)
	Forward() mgl64.Vec3
	Right() mgl64.Vec3
}

// CameraNode receives the look pitch as its local rotation.
type CameraNode interface {
	SetLocalPitch(degrees float64)
}

// InputSource is polled once per tick.
type InputSource interface {
	Axis(a Axis) float64
	AxisRaw(a Axis) float64
	Held(a Action) bool
	Pressed(a Action) bool
	Released(a Action) bool
}

// CursorLock is optional; hosts without a pointer leave it nil.
type CursorLock interface {
	Lock()
	Unlock()
}

// Host bundles the collaborators a Controller borrows. The controller never
// creates or destroys them.
type Host struct {
	Body      CollisionBody
	Transform Transform
	Camera    CameraNode
	Input     InputSource
	Cursor    CursorLock
}

// YawBody is a Transform rotating about the world up axis. Yaw is in degrees,
// clockwise when seen from above, with zero facing +Z.
type YawBody struct {
	Yaw float64
}

func (b *YawBody) Rotate(yawDegrees float64) {
	b.Yaw = math.Mod(b.Yaw+yawDegrees, 360)
}

func (b *YawBody) Forward() mgl64.Vec3 {
	s, c := math.Sincos(b.Yaw * math.Pi / 180)
	return mgl64.Vec3{s, 0, c}
}

func (b *YawBody) Right() mgl64.Vec3 {
	s, c := math.Sincos(b.Yaw * math.Pi / 180)
	return mgl64.Vec3{c, 0, -s}
}

// PitchCamera stores the pitch pushed by the controller. Positive pitch looks down.
type PitchCamera struct {
	Pitch float64
}

func (c *PitchCamera) SetLocalPitch(degrees float64) {
	c.Pitch = degrees
}
