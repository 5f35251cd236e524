package factory

import (
	stdmath "math"

	"github.com/automoto/skidmark/archetypes"
	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/physics"
	"github.com/automoto/skidmark/shared/trackdata"
	"github.com/automoto/skidmark/tags"
	"github.com/automoto/skidmark/vehicle"
	"github.com/rs/zerolog"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// SpawnFor converts a track spawn point in pixels and degrees to a vehicle
// spawn in meters and radians.
func SpawnFor(sp trackdata.SpawnPoint) vehicle.Spawn {
	return vehicle.Spawn{
		Position: math.Vec2{X: cfg.C.ToMeters(sp.X), Y: cfg.C.ToMeters(sp.Y)},
		Rotation: sp.Rotation * stdmath.Pi / 180,
	}
}

// CreateVehicle builds a vehicle in the physics world and attaches a trigger
// probe covering its chassis. extra components (tags.Player) are added to the
// entity.
func CreateVehicle(
	ecs *ecs.ECS,
	world *physics.World,
	profile cfg.VehicleProfile,
	spawn vehicle.Spawn,
	renderer vehicle.Renderer,
	logger zerolog.Logger,
	extra ...donburi.IComponentType,
) (*donburi.Entry, error) {
	v, err := vehicle.New(world, profile, spawn, logger)
	if err != nil {
		return nil, err
	}
	v.SetRenderer(renderer)

	entry := archetypes.Vehicle.Spawn(ecs, extra...)

	size := cfg.C.ToPixels(profile.ChassisWidth)
	x := cfg.C.ToPixels(spawn.Position.X) - size/2
	y := cfg.C.ToPixels(spawn.Position.Y) - size/2
	probe := resolv.NewObject(x, y, size, size, tags.ResolvVehicle)
	probe.SetShape(resolv.NewRectangle(0, 0, size, size))
	probe.Data = entry
	addToSpace(ecs, probe)

	components.Vehicle.SetValue(entry, components.VehicleData{
		Vehicle: v,
		Probe:   probe,
	})
	return entry, nil
}

// RespawnVehicle destroys the entry's vehicle and rebuilds it at spawn with
// the same profile and renderer. The probe and the entity are kept, so race
// state attached elsewhere survives.
func RespawnVehicle(world *physics.World, entry *donburi.Entry, spawn vehicle.Spawn, renderer vehicle.Renderer, logger zerolog.Logger) error {
	data := components.Vehicle.Get(entry)
	profile := data.Profile()
	data.Destroy()

	v, err := vehicle.New(world, profile, spawn, logger)
	if err != nil {
		return err
	}
	v.SetRenderer(renderer)
	data.Vehicle = v
	data.HasMark = [4]bool{}
	data.WasScraping = false
	return nil
}
