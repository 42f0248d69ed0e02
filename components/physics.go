package components

import (
	"github.com/automoto/firstperson/physics"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type CapsuleData struct {
	*physics.Capsule
}

var Capsule = donburi.NewComponentType[CapsuleData]()

// SpaceData is the broad-phase space shared by solids and capsules.
type SpaceData struct {
	*resolv.Space
}

var Space = donburi.NewComponentType[SpaceData]()
