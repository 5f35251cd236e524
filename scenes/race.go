// Package scenes wires tracks, entities and systems into playable scenes.
package scenes

import (
	"fmt"
	"image/color"

	"github.com/automoto/skidmark/assets"
	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/shared/trackdata"
	"github.com/automoto/skidmark/systems"
	"github.com/automoto/skidmark/systems/factory"
	"github.com/automoto/skidmark/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Trigger grid cell size in pixels
const spaceCellSize = 16

// RaceScene is a single player driving laps on one track.
type RaceScene struct {
	ecs   *ecs.ECS
	track *trackdata.Track
}

// NewRaceScene builds the world for the named embedded track. The vehicle
// profile comes from the track's spawn point when it names one, otherwise
// from config.C.PlayerProfile.
func NewRaceScene(trackName string, logger zerolog.Logger) (*RaceScene, error) {
	tracks, names, err := assets.LoadTracks(cfg.C.TracksDir)
	if err != nil {
		return nil, err
	}
	track, ok := tracks[trackName]
	if !ok {
		return nil, fmt.Errorf("track %q not found, have %v", trackName, names)
	}

	profileName := cfg.C.PlayerProfile
	if track.Spawn.Profile != "" {
		profileName = track.Spawn.Profile
	}
	profile, err := cfg.Vehicles.Profile(profileName)
	if err != nil {
		return nil, fmt.Errorf("track %s: %w", track.Name, err)
	}

	background, err := assets.LoadBackground(track, logger)
	if err != nil {
		return nil, err
	}

	rs := &RaceScene{
		ecs:   newRaceECS(),
		track: track,
	}
	if err := rs.populate(profile, background, logger); err != nil {
		return nil, err
	}

	logger.Info().
		Str("track", track.Name).
		Str("profile", profile.Name).
		Int("walls", len(track.Walls)).
		Int("checkpoints", len(track.Checkpoints)).
		Msg("race scene ready")
	return rs, nil
}

// newRaceECS registers systems in frame order: input, vehicles, one physics
// step, trails, checkpoints, camera, effects.
func newRaceECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())

	e.AddSystem(systems.UpdateInput)
	e.AddSystem(systems.UpdateSettings)
	e.AddSystem(systems.UpdateVehicles)
	e.AddSystem(systems.UpdatePhysics)
	e.AddSystem(systems.UpdateTrails)
	e.AddSystem(systems.UpdateCheckpoints)
	e.AddSystem(systems.UpdateCamera)
	e.AddSystem(systems.UpdateEffects)

	e.AddRenderer(cfg.Default, systems.DrawTrack)
	e.AddRenderer(cfg.Default, systems.DrawTrails)
	e.AddRenderer(cfg.Default, systems.DrawVehicles)
	e.AddRenderer(cfg.Default, systems.DrawHUD)
	e.AddRenderer(cfg.Default, systems.DrawDebug)
	return e
}

func (rs *RaceScene) populate(profile cfg.VehicleProfile, background *ebiten.Image, logger zerolog.Logger) error {
	t := rs.track

	factory.CreateTrack(rs.ecs, t, background)
	factory.CreateSpace(rs.ecs, t.Width, t.Height, spaceCellSize, spaceCellSize)
	worldEntry := factory.CreatePhysicsWorld(rs.ecs)
	world := components.PhysicsWorld.Get(worldEntry).World

	for _, w := range t.Walls {
		if _, err := factory.CreateWall(rs.ecs, world, w); err != nil {
			return err
		}
	}
	for i, cp := range t.Checkpoints {
		factory.CreateCheckpoint(rs.ecs, cp, i)
	}
	if t.FinishLine != nil {
		factory.CreateFinishLine(rs.ecs, *t.FinishLine)
	}

	spawn := factory.SpawnFor(t.Spawn)
	if _, err := factory.CreateVehicle(rs.ecs, world, profile, spawn, systems.VehicleRenderer, logger, tags.Player); err != nil {
		return err
	}

	factory.CreateCamera(rs.ecs, t.Spawn.X, t.Spawn.Y)
	factory.CreateRace(rs.ecs, t, profile.Name, systems.StoredBestLap(t.Name, profile.Name))
	return nil
}

func (rs *RaceScene) Update() {
	rs.ecs.Update()
}

func (rs *RaceScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)
	rs.ecs.Draw(screen)
}

// ECS exposes the scene's world to tests.
func (rs *RaceScene) ECS() *ecs.ECS {
	return rs.ecs
}
