package config

import (
	"fmt"
	"image/color"

	"github.com/automoto/firstperson/controller"
)

// Config holds general window configuration
type Config struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	TPS    int    `yaml:"tps"` // fixed update rate; the controller steps by 1/TPS
}

// FalloffConfig describes the jump force curve. When Keys is non-empty the
// keyframes are used; otherwise Peak eases to zero over Duration.
type FalloffConfig struct {
	Ease     string                `yaml:"ease"`
	Duration float64               `yaml:"duration"` // seconds
	Peak     float64               `yaml:"peak"`
	Keys     []controller.Keyframe `yaml:"keys"`
}

// Curve builds the falloff curve described by f.
func (f FalloffConfig) Curve() (controller.Curve, error) {
	if len(f.Keys) > 0 {
		return controller.NewKeyframeCurve(f.Keys...), nil
	}
	fn, err := controller.EaseFunc(f.Ease)
	if err != nil {
		return nil, fmt.Errorf("jump falloff: %w", err)
	}
	if f.Duration <= 0 {
		return nil, fmt.Errorf("jump falloff: duration must be positive, got %v", f.Duration)
	}
	return controller.NewTweenCurve(f.Peak, f.Duration, fn), nil
}

// ControllerConfig contains the first-person controller tunables
type ControllerConfig struct {
	// Look
	MouseSensitivity float64 `yaml:"mouseSensitivity"`
	MouseSmoothTime  float64 `yaml:"mouseSmoothTime"` // seconds
	PitchLimit       float64 `yaml:"pitchLimit"`      // degrees
	LockCursor       bool    `yaml:"lockCursor"`

	// Movement
	MoveSmoothTime  float64 `yaml:"moveSmoothTime"`
	Gravity         float64 `yaml:"gravity"` // m/s^2, negative is down
	WalkSpeed       float64 `yaml:"walkSpeed"`
	RunSpeed        float64 `yaml:"runSpeed"`
	RunBuildUpSpeed float64 `yaml:"runBuildUpSpeed"`

	// Jump
	JumpMultiplier float64       `yaml:"jumpMultiplier"`
	JumpFalloff    FalloffConfig `yaml:"jumpFalloff"`

	// Crouch
	CrouchHeight   float64 `yaml:"crouchHeight"`
	StandingHeight float64 `yaml:"standingHeight"`
	CrouchSpeed    float64 `yaml:"crouchSpeed"`
}

// Settings converts the configuration into validated controller settings.
func (c ControllerConfig) Settings() (controller.Settings, error) {
	curve, err := c.JumpFalloff.Curve()
	if err != nil {
		return controller.Settings{}, err
	}
	s := controller.Settings{
		MouseSensitivity: c.MouseSensitivity,
		MouseSmoothTime:  c.MouseSmoothTime,
		PitchLimit:       c.PitchLimit,
		LockCursor:       c.LockCursor,
		MoveSmoothTime:   c.MoveSmoothTime,
		Gravity:          c.Gravity,
		WalkSpeed:        c.WalkSpeed,
		RunSpeed:         c.RunSpeed,
		RunBuildUpSpeed:  c.RunBuildUpSpeed,
		JumpMultiplier:   c.JumpMultiplier,
		JumpFalloff:      curve,
		CrouchHeight:     c.CrouchHeight,
		StandingHeight:   c.StandingHeight,
		CrouchSpeed:      c.CrouchSpeed,
	}
	if err := s.Validate(); err != nil {
		return controller.Settings{}, fmt.Errorf("controller settings: %w", err)
	}
	return s, nil
}

// PhysicsConfig contains collision world configuration
type PhysicsConfig struct {
	CapsuleRadius float64 `yaml:"capsuleRadius"` // metres
	StepOffset    float64 `yaml:"stepOffset"`    // tallest ledge walked onto
	Skin          float64 `yaml:"skin"`
	Scale         float64 `yaml:"scale"`    // space units per metre
	CellSize      int     `yaml:"cellSize"` // broad-phase cell edge in space units
	KillPlaneY    float64 `yaml:"killPlaneY"`
}

// CameraConfig contains first-person view configuration
type CameraConfig struct {
	FOV          float64 `yaml:"fov"` // vertical, degrees
	Near         float64 `yaml:"near"`
	EyeOffset    float64 `yaml:"eyeOffset"`    // below the top of the capsule
	MinimapScale float64 `yaml:"minimapScale"` // pixels per metre
}

// UIConfig contains HUD configuration values
type UIConfig struct {
	HUDFontSize   float64
	DebugFontSize float64
	HUDMargin     float64

	Background    color.RGBA
	FloorColor    color.RGBA
	WallColor     color.RGBA
	HUDTextColor  color.RGBA
	CrosshairSize float64

	MinimapBackground color.RGBA
}

// LevelConfig selects the arena to play. An empty Dir uses the embedded
// levels.
type LevelConfig struct {
	Name string `yaml:"name"`
	Dir  string `yaml:"dir"`
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	ShowMinimap bool `yaml:"showMinimap"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level       string `yaml:"level"`  // debug, info, warn, error
	Format      string `yaml:"format"` // console or json
	Development bool   `yaml:"development"`
}

// Global configuration instances
var C *Config
var Controller ControllerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var UI UIConfig
var Level LevelConfig
var Debug DebugConfig
var Log LogConfig

// Shared RGBA color constants
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	LightBlue = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue  = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

func init() {
	Reset()
}

// Reset restores every configuration block to its defaults.
func Reset() {
	C = &Config{
		Width:  960,
		Height: 540,
		Title:  "First Person",
		TPS:    60,
	}

	// Controller Config
	Controller = ControllerConfig{
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
		JumpFalloff: FalloffConfig{
			Ease:     "outQuad",
			Duration: 0.35,
			Peak:     1,
		},

		CrouchHeight:   1,
		StandingHeight: 2,
		CrouchSpeed:    2.5,
	}

	// Physics Config
	Physics = PhysicsConfig{
		CapsuleRadius: 0.4,
		StepOffset:    0.3,
		Skin:          1e-4,
		Scale:         100, // resolv cells are computed in whole units
		CellSize:      50,
		KillPlaneY:    -20,
	}

	// Camera Config
	Camera = CameraConfig{
		FOV:          70,
		Near:         0.05,
		EyeOffset:    0.2,
		MinimapScale: 6,
	}

	UI = UIConfig{
		HUDFontSize:   14,
		DebugFontSize: 10,
		HUDMargin:     10,

		Background:    color.RGBA{R: 18, G: 20, B: 28, A: 255},
		FloorColor:    DarkBlue,
		WallColor:     LightBlue,
		HUDTextColor:  White,
		CrosshairSize: 6,

		MinimapBackground: color.RGBA{R: 0, G: 0, B: 0, A: 160},
	}

	Level = LevelConfig{
		Name: "arena",
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		ShowMinimap: false,
	}

	Log = LogConfig{
		Level:  "info",
		Format: "console",
	}

	resetInput()
}
