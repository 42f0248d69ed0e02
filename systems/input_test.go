package systems

import (
	"testing"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestApplyDeadzone(t *testing.T) {
	cases := []struct {
		in, dz, want float64
	}{
		{0.1, 0.25, 0},
		{-0.25, 0.25, 0},
		{1, 0.25, 1},
		{-1, 0.25, -1},
		{0.625, 0.25, 0.5},
		{1.2, 0.25, 1},
		{0.9, 1, 0},
	}
	for _, tc := range cases {
		assert.InDelta(t, tc.want, applyDeadzone(tc.in, tc.dz), 1e-9, "in=%v dz=%v", tc.in, tc.dz)
	}
}

func TestMoveAxesMergesKeysAndStick(t *testing.T) {
	var current [cfg.ActionCount]bool
	assert.Equal(t, dmath.Vec2{}, moveAxes(&current, dmath.Vec2{}))

	current[cfg.ActionMoveForward] = true
	current[cfg.ActionMoveLeft] = true
	assert.Equal(t, dmath.Vec2{X: -1, Y: 1}, moveAxes(&current, dmath.Vec2{}))

	current[cfg.ActionMoveRight] = true
	assert.Equal(t, dmath.Vec2{X: 0, Y: 1}, moveAxes(&current, dmath.Vec2{}))

	// stick up is negative on the gamepad axis and walks forward
	var none [cfg.ActionCount]bool
	assert.Equal(t, dmath.Vec2{X: 0.5, Y: 0.75}, moveAxes(&none, dmath.Vec2{X: 0.5, Y: -0.75}))

	// keys and stick together never exceed one
	assert.Equal(t, 1.0, moveAxes(&current, dmath.Vec2{Y: -1}).Y)
}

func TestMouseLookUpIsPositive(t *testing.T) {
	l := mouseLook(10, -20, 0.1)
	assert.InDelta(t, 1, l.X, 1e-9)
	assert.InDelta(t, 2, l.Y, 1e-9)

	s := stickLook(dmath.Vec2{X: -1, Y: -1}, 2.5)
	assert.Equal(t, dmath.Vec2{X: -2.5, Y: 2.5}, s)
}

func TestInputSourceMapping(t *testing.T) {
	in := &components.InputData{
		Move: dmath.Vec2{X: 0.25, Y: -1},
		Look: dmath.Vec2{X: 3, Y: -4},
	}
	assert.Equal(t, 3.0, inputAxis(in, controller.AxisMouseX))
	assert.Equal(t, -4.0, inputAxis(in, controller.AxisMouseY))
	assert.Equal(t, 0.25, inputAxis(in, controller.AxisHorizontal))
	assert.Equal(t, -1.0, inputAxis(in, controller.AxisVertical))

	in.Current[cfg.ActionJump] = true
	in.Previous[cfg.ActionCrouch] = true
	in.Current[cfg.ActionRun] = true
	in.Previous[cfg.ActionRun] = true

	assert.Equal(t, components.ActionState{Pressed: true, JustPressed: true}, inputAction(in, controller.ActionJump))
	assert.Equal(t, components.ActionState{JustReleased: true}, inputAction(in, controller.ActionCrouch))
	assert.Equal(t, components.ActionState{Pressed: true}, inputAction(in, controller.ActionRun))
	assert.Equal(t, components.ActionState{}, inputAction(in, controller.Action(99)))
}

func TestCursorTransition(t *testing.T) {
	cases := []struct {
		name                              string
		locked, enabled, release, capture bool
		wantNext, wantChanged             bool
	}{
		{"release while locked", true, true, true, false, false, true},
		{"capture while free", false, true, false, true, true, true},
		{"capture disabled", false, false, false, true, false, false},
		{"release while free", false, true, true, false, false, false},
		{"click while locked", true, true, false, true, true, false},
		{"idle", true, true, false, false, true, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			next, changed := cursorTransition(tc.locked, tc.enabled, tc.release, tc.capture)
			assert.Equal(t, tc.wantNext, next)
			assert.Equal(t, tc.wantChanged, changed)
		})
	}
}
