package systems

import (
	"math"
	"strings"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// Cache controller types to avoid string allocation every frame
var controllerTypeCache = make(map[ebiten.GamepadID]components.InputMethod)

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdateController in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	// Get connected gamepads
	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	var keyboardUsed, gamepadUsed bool
	var activeGamepadID ebiten.GamepadID

	// Poll all actions - only set Pressed state
	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
				keyboardUsed = true
			}
		}

		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
					gamepadUsed = true
					activeGamepadID = gpID
				}
			}
		}
	}

	sticks, stickGpID, stickUsed := readSticks(gamepadIDs, cfg.Input.AnalogDeadzone)
	if stickUsed {
		gamepadUsed = true
		activeGamepadID = stickGpID
	}

	input.Move = moveAxes(&input.Current, sticks.left)

	look := stickLook(sticks.right, cfg.Input.StickLookSpeed)
	if input.CursorCaptured {
		x, y := ebiten.CursorPosition()
		if input.CursorKnown {
			mouse := mouseLook(x-input.CursorX, y-input.CursorY, cfg.Input.MouseScale)
			look.X += mouse.X
			look.Y += mouse.Y
		}
		input.CursorX, input.CursorY = x, y
		input.CursorKnown = true
	}
	input.Look = look

	// Update last input method - gamepad takes priority if both used
	if gamepadUsed {
		input.LastInputMethod = getControllerType(activeGamepadID)
	} else if keyboardUsed {
		input.LastInputMethod = components.InputKeyboard
	}
}

type stickState struct {
	left, right dmath.Vec2
}

// readSticks returns the deflection of both sticks of the first gamepad
// pushed past the deadzone. Screen-down is positive on the vertical axes.
func readSticks(gamepads []ebiten.GamepadID, deadzone float64) (s stickState, gpID ebiten.GamepadID, used bool) {
	for _, id := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(id) {
			continue
		}
		left := dmath.Vec2{
			X: applyDeadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal), deadzone),
			Y: applyDeadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical), deadzone),
		}
		right := dmath.Vec2{
			X: applyDeadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickHorizontal), deadzone),
			Y: applyDeadzone(ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisRightStickVertical), deadzone),
		}
		if left != (dmath.Vec2{}) || right != (dmath.Vec2{}) {
			return stickState{left: left, right: right}, id, true
		}
	}
	return stickState{}, 0, false
}

// applyDeadzone zeroes v inside the deadzone and rescales the rest so the
// output still spans [-1, 1].
func applyDeadzone(v, deadzone float64) float64 {
	if deadzone >= 1 {
		return 0
	}
	a := math.Abs(v)
	if a <= deadzone {
		return 0
	}
	out := (math.Min(a, 1) - deadzone) / (1 - deadzone)
	return math.Copysign(out, v)
}

// moveAxes merges the digital direction actions with the left stick.
// X is strafe (right positive) and Y is forward.
func moveAxes(current *[cfg.ActionCount]bool, stick dmath.Vec2) dmath.Vec2 {
	var m dmath.Vec2
	if current[cfg.ActionMoveRight] {
		m.X++
	}
	if current[cfg.ActionMoveLeft] {
		m.X--
	}
	if current[cfg.ActionMoveForward] {
		m.Y++
	}
	if current[cfg.ActionMoveBack] {
		m.Y--
	}
	m.X = clampUnit(m.X + stick.X)
	m.Y = clampUnit(m.Y - stick.Y)
	return m
}

// mouseLook converts a cursor delta in pixels into look axes. Moving the
// mouse up looks up.
func mouseLook(dx, dy int, scale float64) dmath.Vec2 {
	return dmath.Vec2{X: float64(dx) * scale, Y: -float64(dy) * scale}
}

func stickLook(stick dmath.Vec2, speed float64) dmath.Vec2 {
	return dmath.Vec2{X: stick.X * speed, Y: -stick.Y * speed}
}

func clampUnit(v float64) float64 {
	return math.Max(-1, math.Min(1, v))
}

// getControllerType returns cached controller type, detecting on first access
func getControllerType(gpID ebiten.GamepadID) components.InputMethod {
	if method, ok := controllerTypeCache[gpID]; ok {
		return method
	}

	name := strings.ToLower(ebiten.GamepadName(gpID))
	var method components.InputMethod
	if strings.Contains(name, "ps4") || strings.Contains(name, "ps5") ||
		strings.Contains(name, "playstation") || strings.Contains(name, "dualshock") ||
		strings.Contains(name, "dualsense") {
		method = components.InputPlayStation
	} else {
		// Default gamepad to Xbox-style
		method = components.InputXbox
	}

	controllerTypeCache[gpID] = method
	return method
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	entry, ok := components.Input.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Input))
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *components.InputData, id cfg.ActionID) components.ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return components.ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
