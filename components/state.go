package components

import (
	"github.com/automoto/firstperson/config"
	"github.com/yohamta/donburi"
)

type StateData struct {
	CurrentState  config.StateID
	PreviousState config.StateID
	StateTimer    int
}

var State = donburi.NewComponentType[StateData]()

type IdleState struct{}
type WalkingState struct{}
type RunningState struct{}
type JumpingState struct{}
type FallingState struct{}
type CrouchingState struct{}

var Idle = donburi.NewComponentType[IdleState]()
var Walking = donburi.NewComponentType[WalkingState]()
var Running = donburi.NewComponentType[RunningState]()
var Jumping = donburi.NewComponentType[JumpingState]()
var Falling = donburi.NewComponentType[FallingState]()
var Crouching = donburi.NewComponentType[CrouchingState]()
