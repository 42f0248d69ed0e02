package systems

import (
	"github.com/automoto/firstperson/components"
	cfg "github.com/automoto/firstperson/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSettings applies runtime toggles.
func UpdateSettings(ecs *ecs.ECS) {
	settings := GetOrCreateSettings(ecs)
	input := getOrCreateInput(ecs)

	if GetAction(input, cfg.ActionToggleDebug).JustPressed {
		settings.ShowMinimap = !settings.ShowMinimap
	}
}

// GetOrCreateSettings returns the singleton Settings component, seeding it
// from the debug configuration.
func GetOrCreateSettings(ecs *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{
			ShowMinimap: cfg.Debug.ShowMinimap,
		})
	}
	return components.Settings.Get(entry)
}
