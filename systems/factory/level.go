package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/assets"
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision world for arena and spawns one solid
// entity per box. The first spawn point becomes the respawn point.
func CreateLevel(ecs *ecs.ECS, arena *assets.Arena, opts physics.Options) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	world := physics.NewWorld(arena.Width, arena.Depth, opts)
	for _, box := range arena.Boxes {
		CreateSolid(ecs, world, box)
	}

	components.Level.SetValue(level, components.LevelData{
		Arena: arena,
		World: world,
		Spawn: arena.Spawns[0],
	})
	return level
}

func CreateSolid(ecs *ecs.ECS, world *physics.World, box physics.Box) *donburi.Entry {
	solid := archetypes.Solid.Spawn(ecs)

	obj := world.AddBox(box)
	b, _ := obj.Data.(*physics.Box)
	components.Solid.SetValue(solid, components.SolidData{Object: obj, Box: b})

	return solid
}

func CreateSettings(ecs *ecs.ECS, showMinimap bool) *donburi.Entry {
	settings := archetypes.Settings.Spawn(ecs)
	components.Settings.SetValue(settings, components.SettingsData{ShowMinimap: showMinimap})
	return settings
}
