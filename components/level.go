package components

import (
	"github.com/automoto/firstperson/assets"
	"github.com/automoto/firstperson/physics"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	Arena *assets.Arena
	World *physics.World
	Spawn assets.Spawn // where the player returns after falling out
}

var Level = donburi.NewComponentType[LevelData]()
