package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var controllerActions = map[controller.Action]cfg.ActionID{
	controller.ActionRun:    cfg.ActionRun,
	controller.ActionJump:   cfg.ActionJump,
	controller.ActionCrouch: cfg.ActionCrouch,
}

// InputSource exposes the polled Input component to a controller.
type InputSource struct {
	ecs *ecs.ECS
}

var _ controller.InputSource = (*InputSource)(nil)

func NewInputSource(ecs *ecs.ECS) *InputSource {
	return &InputSource{ecs: ecs}
}

func (s *InputSource) Axis(a controller.Axis) float64 {
	return inputAxis(getOrCreateInput(s.ecs), a)
}

// AxisRaw is Axis: the polled axes are not smoothed.
func (s *InputSource) AxisRaw(a controller.Axis) float64 {
	return inputAxis(getOrCreateInput(s.ecs), a)
}

func (s *InputSource) Held(a controller.Action) bool {
	return inputAction(getOrCreateInput(s.ecs), a).Pressed
}

func (s *InputSource) Pressed(a controller.Action) bool {
	return inputAction(getOrCreateInput(s.ecs), a).JustPressed
}

func (s *InputSource) Released(a controller.Action) bool {
	return inputAction(getOrCreateInput(s.ecs), a).JustReleased
}

func inputAxis(input *components.InputData, a controller.Axis) float64 {
	switch a {
	case controller.AxisMouseX:
		return input.Look.X
	case controller.AxisMouseY:
		return input.Look.Y
	case controller.AxisHorizontal:
		return input.Move.X
	case controller.AxisVertical:
		return input.Move.Y
	}
	return 0
}

func inputAction(input *components.InputData, a controller.Action) components.ActionState {
	id, ok := controllerActions[a]
	if !ok {
		return components.ActionState{}
	}
	return GetAction(input, id)
}

// CursorMode abstracts ebiten's cursor mode so capture can be tested
// headless.
type CursorMode interface {
	SetCursorMode(ebiten.CursorModeType)
}

type ebitenCursorMode struct{}

func (ebitenCursorMode) SetCursorMode(m ebiten.CursorModeType) { ebiten.SetCursorMode(m) }

// Cursor captures and releases the pointer for a controller.
type Cursor struct {
	ecs  *ecs.ECS
	mode CursorMode
}

var _ controller.CursorLock = (*Cursor)(nil)

func NewCursor(ecs *ecs.ECS) *Cursor {
	return &Cursor{ecs: ecs, mode: ebitenCursorMode{}}
}

// Lock captures the cursor. The first sample after capture only records the
// cursor position so the jump to the capture point is not read as a look.
func (c *Cursor) Lock() {
	c.mode.SetCursorMode(ebiten.CursorModeCaptured)
	input := getOrCreateInput(c.ecs)
	input.CursorCaptured = true
	input.CursorKnown = false
}

func (c *Cursor) Unlock() {
	c.mode.SetCursorMode(ebiten.CursorModeVisible)
	input := getOrCreateInput(c.ecs)
	input.CursorCaptured = false
	input.CursorKnown = false
	input.Look = dmath.Vec2{}
}
