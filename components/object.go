package components

import (
	"github.com/automoto/firstperson/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// SolidData links a level box to its broad-phase object.
type SolidData struct {
	*resolv.Object
	Box *physics.Box
}

var Solid = donburi.NewComponentType[SolidData]()
