package systems

import (
	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/systems/factory"
	"github.com/automoto/skidmark/tags"
	"github.com/automoto/skidmark/vehicle"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateVehicles runs one control frame on every vehicle. Only the player's
// vehicle reads input; others coast.
func UpdateVehicles(e *ecs.ECS) {
	input := getOrCreateInput(e)
	playerInput := VehicleInput(input)
	reset := GetAction(input, cfg.ActionReset).JustPressed
	dt := cfg.C.FrameDuration()

	tags.Vehicle.Each(e.World, func(entry *donburi.Entry) {
		data := components.Vehicle.Get(entry)
		isPlayer := entry.HasComponent(tags.Player)

		if isPlayer && (reset || data.Destroyed()) {
			respawnPlayer(e, entry)
		}
		if data.Destroyed() {
			return
		}

		var in vehicle.Input
		if isPlayer {
			in = playerInput
		}
		data.UpdateVehicle(in, dt)

		scraping := data.Scraping()
		if scraping && !data.WasScraping {
			TriggerScreenShake(e, cfg.Camera.ScrapeShakeIntensity, cfg.Camera.ScrapeShakeFrames)
		}
		data.WasScraping = scraping
	})
}

func respawnPlayer(e *ecs.ECS, entry *donburi.Entry) {
	worldEntry, ok := components.PhysicsWorld.First(e.World)
	if !ok {
		return
	}
	trackEntry, ok := components.Track.First(e.World)
	if !ok {
		return
	}
	world := components.PhysicsWorld.Get(worldEntry).World
	track := components.Track.Get(trackEntry)

	spawn := factory.SpawnFor(track.Spawn)
	if err := factory.RespawnVehicle(world, entry, spawn, VehicleRenderer, logger); err != nil {
		logger.Error().Err(err).Msg("respawn failed")
		return
	}
	syncProbe(components.Vehicle.Get(entry))
	logger.Info().Str("track", track.Name).Msg("player respawned")
}
