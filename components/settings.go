package components

import "github.com/yohamta/donburi"

// SettingsData holds runtime toggles changed from the keyboard.
type SettingsData struct {
	ShowMinimap bool
}

var Settings = donburi.NewComponentType[SettingsData]()
