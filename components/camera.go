package components

import (
	"github.com/automoto/firstperson/controller"
	"github.com/yohamta/donburi"
)

// BodyData is the yaw of a character's body.
type BodyData struct {
	*controller.YawBody
}

var Body = donburi.NewComponentType[BodyData]()

// CameraData is the first-person camera mounted on a body.
type CameraData struct {
	*controller.PitchCamera
	// EyeOffset is the distance from the top of the capsule to the eye.
	EyeOffset float64
}

var Camera = donburi.NewComponentType[CameraData]()
