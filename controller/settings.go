package controller

import (
	"errors"
	"fmt"
)

// Settings are the tunables of a Controller. Angles are in degrees, lengths
// in metres and times in seconds.
type Settings struct {
	// Look
	MouseSensitivity float64
	MouseSmoothTime  float64
	PitchLimit       float64
	LockCursor       bool

	// Movement
	MoveSmoothTime  float64
	Gravity         float64 // negative pulls down
	WalkSpeed       float64
	RunSpeed        float64
	RunBuildUpSpeed float64

	// Jump
	JumpMultiplier float64
	JumpFalloff    Curve

	// Crouch
	CrouchHeight   float64
	StandingHeight float64
	CrouchSpeed    float64
}

func DefaultSettings() Settings {
	return Settings{
		MouseSensitivity: 3.5,
		MouseSmoothTime:  0.03,
		PitchLimit:       90,
		LockCursor:       true,

		MoveSmoothTime:  0.3,
		Gravity:         -13,
		WalkSpeed:       5,
		RunSpeed:        10,
		RunBuildUpSpeed: 0.5,

		JumpMultiplier: 10,
		JumpFalloff:    DefaultJumpFalloff(),

		CrouchHeight:   1,
		StandingHeight: 2,
		CrouchSpeed:    2.5,
	}
}

var ErrNoFalloff = errors.New("jump falloff curve is required")

// Validate reports the first setting that cannot drive a controller.
func (s Settings) Validate() error {
	switch {
	case s.JumpFalloff == nil:
		return ErrNoFalloff
	case s.MouseSmoothTime < 0:
		return fmt.Errorf("mouse smooth time must not be negative, got %v", s.MouseSmoothTime)
	case s.MoveSmoothTime < 0:
		return fmt.Errorf("move smooth time must not be negative, got %v", s.MoveSmoothTime)
	case s.PitchLimit <= 0 || s.PitchLimit > 90:
		return fmt.Errorf("pitch limit must be in (0, 90], got %v", s.PitchLimit)
	case s.WalkSpeed <= 0, s.RunSpeed <= 0, s.CrouchSpeed <= 0:
		return fmt.Errorf("speeds must be positive (walk %v, run %v, crouch %v)", s.WalkSpeed, s.RunSpeed, s.CrouchSpeed)
	case s.RunBuildUpSpeed < 0:
		return fmt.Errorf("run build-up speed must not be negative, got %v", s.RunBuildUpSpeed)
	case s.CrouchHeight <= 0 || s.StandingHeight <= 0:
		return fmt.Errorf("capsule heights must be positive (crouch %v, standing %v)", s.CrouchHeight, s.StandingHeight)
	}
	return nil
}
