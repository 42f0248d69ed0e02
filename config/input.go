package config

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// ActionID represents a logical input action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveForward
	ActionMoveBack
	ActionMoveLeft
	ActionMoveRight
	ActionRun
	ActionJump
	ActionCrouch
	ActionReleaseCursor
	ActionToggleDebug
	ActionCount // Must be last - used for array sizing
)

var actionNames = map[ActionID]string{
	ActionMoveForward:   "moveForward",
	ActionMoveBack:      "moveBack",
	ActionMoveLeft:      "moveLeft",
	ActionMoveRight:     "moveRight",
	ActionRun:           "run",
	ActionJump:          "jump",
	ActionCrouch:        "crouch",
	ActionReleaseCursor: "releaseCursor",
	ActionToggleDebug:   "toggleDebug",
}

func (a ActionID) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return fmt.Sprintf("ActionID(%d)", int(a))
}

// MarshalText implements encoding.TextMarshaler so actions can key YAML maps.
func (a ActionID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *ActionID) UnmarshalText(text []byte) error {
	for id, name := range actionNames {
		if name == string(text) {
			*a = id
			return nil
		}
	}
	return fmt.Errorf("unknown action %q", text)
}

// InputBinding represents the keys and buttons bound to an action.
// Keys are written in YAML by ebiten key name, e.g. "Space" or "ShiftLeft".
// Gamepad buttons have no text form and decode as raw
// ebiten.StandardGamepadButton values, e.g. 0 for the bottom face button.
type InputBinding struct {
	Keys                   []ebiten.Key                   `yaml:"keys"`
	StandardGamepadButtons []ebiten.StandardGamepadButton `yaml:"gamepadButtons"`
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding `yaml:"bindings"`
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64 `yaml:"analogDeadzone"`
	// MouseScale converts cursor pixels per frame into look axis units.
	MouseScale float64 `yaml:"mouseScale"`
	// StickLookSpeed is the look axis value at full right-stick deflection.
	StickLookSpeed float64 `yaml:"stickLookSpeed"`
	// CaptureButton captures the cursor when clicked inside the window.
	CaptureButton ebiten.MouseButton `yaml:"-"`
}

// Input is the global input configuration
var Input InputConfig

func resetInput() {
	Input = InputConfig{
		AnalogDeadzone: 0.25,
		MouseScale:     0.1,
		StickLookSpeed: 2.5,
		CaptureButton:  ebiten.MouseButtonLeft,
		Bindings: map[ActionID]InputBinding{
			ActionMoveForward: {
				Keys: []ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp},
				// D-pad Up (analog stick handled separately)
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftTop,
				},
			},
			ActionMoveBack: {
				Keys: []ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftBottom,
				},
			},
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionRun: {
				Keys: []ebiten.Key{ebiten.KeyShiftLeft},
				// Left stick press
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftStick,
				},
			},
			ActionJump: {
				Keys: []ebiten.Key{ebiten.KeySpace},
				// A / Cross button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightBottom,
				},
			},
			ActionCrouch: {
				Keys: []ebiten.Key{ebiten.KeyControlLeft, ebiten.KeyC},
				// B / Circle button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightRight,
				},
			},
			ActionReleaseCursor: {
				Keys: []ebiten.Key{ebiten.KeyEscape},
				// Start / Options button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonCenterRight,
				},
			},
			ActionToggleDebug: {
				Keys: []ebiten.Key{ebiten.KeyF3},
			},
		},
	}
}

// cloneBindings copies the binding map so an overlay can be decoded without
// touching the live configuration.
func cloneBindings(src map[ActionID]InputBinding) map[ActionID]InputBinding {
	dst := make(map[ActionID]InputBinding, len(src))
	for id, b := range src {
		dst[id] = InputBinding{
			Keys:                   append([]ebiten.Key(nil), b.Keys...),
			StandardGamepadButtons: append([]ebiten.StandardGamepadButton(nil), b.StandardGamepadButtons...),
		}
	}
	return dst
}
