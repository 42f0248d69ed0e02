package components

import (
	"github.com/automoto/firstperson/controller"
	"github.com/yohamta/donburi"
)

type ControllerData struct {
	*controller.Controller
	Last    controller.Frame // result of the most recent Update
	Respawn int              // times the player fell out of the level
}

var Controller = donburi.NewComponentType[ControllerData]()
