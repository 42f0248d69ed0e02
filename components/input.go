package components

import (
	cfg "github.com/automoto/firstperson/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// InputMethod represents the type of input device being used
type InputMethod int

const (
	InputKeyboard InputMethod = iota
	InputXbox
	InputPlayStation
)

func (m InputMethod) String() string {
	switch m {
	case InputKeyboard:
		return "keyboard"
	case InputXbox:
		return "xbox"
	case InputPlayStation:
		return "playstation"
	}
	return "unknown"
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions plus this frame's analog axes.
// JustPressed/JustReleased are computed on-demand by comparing frames.
type InputData struct {
	Current         [cfg.ActionCount]bool // Current frame's Pressed state
	Previous        [cfg.ActionCount]bool // Previous frame's Pressed state
	LastInputMethod InputMethod           // Most recently used input method

	Move math.Vec2 // X strafes right, Y walks forward; each in [-1, 1]
	Look math.Vec2 // X turns right, Y looks up; look axis units this frame

	// Cursor tracking for mouse-look. CursorKnown is false until a position
	// has been sampled since the cursor was captured.
	CursorX, CursorY int
	CursorKnown      bool
	CursorCaptured   bool
}

var Input = donburi.NewComponentType[InputData]()
