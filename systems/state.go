package systems

import (
	"math"

	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/automoto/firstperson/controller"
	"github.com/automoto/firstperson/logger"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"go.uber.org/zap"
)

// minMoveSpeed is the horizontal speed below which a grounded player is idle.
const minMoveSpeed = 0.05

// UpdateStates derives the locomotion state from the last controller frame
// and keeps the matching state tag on the entity.
func UpdateStates(ecs *ecs.ECS) {
	components.Controller.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Controller.Get(e)
		state := components.State.Get(e)

		state.CurrentState = locomotionState(c.Last, c.Settings().WalkSpeed)
		if state.CurrentState == state.PreviousState {
			state.StateTimer++
			return
		}
		logger.Named("state").Debug("state changed",
			zap.Stringer("from", state.PreviousState),
			zap.Stringer("to", state.CurrentState),
			zap.Int("frames", state.StateTimer))
		updatePlayerStateTags(e, state)
	})
}

func locomotionState(f controller.Frame, walkSpeed float64) cfg.StateID {
	horizontal := math.Hypot(f.Velocity.X(), f.Velocity.Z())
	switch {
	case f.Crouching:
		return cfg.Crouch
	case f.Jumping:
		return cfg.Jump
	case !f.Grounded:
		return cfg.Fall
	case horizontal < minMoveSpeed:
		return cfg.Idle
	case f.MovementSpeed > walkSpeed+0.5:
		return cfg.Running
	}
	return cfg.Walk
}

func updatePlayerStateTags(e *donburi.Entry, state *components.StateData) {
	removeAllStateTags(e)

	switch state.CurrentState {
	case cfg.Idle:
		donburi.Add(e, components.Idle, &components.IdleState{})
	case cfg.Walk:
		donburi.Add(e, components.Walking, &components.WalkingState{})
	case cfg.Running:
		donburi.Add(e, components.Running, &components.RunningState{})
	case cfg.Jump:
		donburi.Add(e, components.Jumping, &components.JumpingState{})
	case cfg.Fall:
		donburi.Add(e, components.Falling, &components.FallingState{})
	case cfg.Crouch:
		donburi.Add(e, components.Crouching, &components.CrouchingState{})
	}

	state.PreviousState = state.CurrentState
	state.StateTimer = 0
}

func removeAllStateTags(e *donburi.Entry) {
	donburi.Remove[components.IdleState](e, components.Idle)
	donburi.Remove[components.WalkingState](e, components.Walking)
	donburi.Remove[components.RunningState](e, components.Running)
	donburi.Remove[components.JumpingState](e, components.Jumping)
	donburi.Remove[components.FallingState](e, components.Falling)
	donburi.Remove[components.CrouchingState](e, components.Crouching)
}
