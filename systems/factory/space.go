package factory

import (
	"github.com/automoto/firstperson/archetypes"
	"github.com/automoto/firstperson/components"
	"github.com/automoto/firstperson/physics"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSpace publishes the world's broad-phase space as an entity so
// renderers can reach it without the level.
func CreateSpace(ecs *ecs.ECS, world *physics.World) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{Space: world.Space})
	return space
}
