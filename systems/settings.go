package systems

import (
	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/yohamta/donburi/ecs"
)

// GetOrCreateSettings returns the singleton Settings component. Debug starts
// from config.Debug.Enabled.
func GetOrCreateSettings(e *ecs.ECS) *components.SettingsData {
	entry, ok := components.Settings.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Settings))
		components.Settings.SetValue(entry, components.SettingsData{Debug: cfg.Debug.Enabled})
	}
	return components.Settings.Get(entry)
}

// UpdateSettings toggles the debug overlay.
func UpdateSettings(e *ecs.ECS) {
	settings := GetOrCreateSettings(e)
	if GetAction(getOrCreateInput(e), cfg.ActionToggleDebug).JustPressed {
		settings.Debug = !settings.Debug
		logger.Debug().Bool("debug", settings.Debug).Msg("debug overlay toggled")
	}
}
