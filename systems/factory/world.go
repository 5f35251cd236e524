package factory

import (
	"github.com/automoto/skidmark/archetypes"
	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/physics"
	"github.com/automoto/skidmark/vehicle"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePhysicsWorld spawns the zero-gravity rigid-body world. Contacts only
// toggle the vehicle's scraping flag.
func CreatePhysicsWorld(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.PhysicsWorld.Spawn(ecs)
	world := physics.NewWorld(physics.WorldConfig{
		VelocityIterations: cfg.World.VelocityIterations,
		PositionIterations: cfg.World.PositionIterations,
	})
	world.OnContact(func(a, b *physics.Body, begin bool) {
		noteContact(a, b, begin)
		noteContact(b, a, begin)
	})
	components.PhysicsWorld.SetValue(entry, components.PhysicsWorldData{World: world})
	return entry
}

func noteContact(self, _ *physics.Body, begin bool) {
	if v, ok := self.UserData().(*vehicle.Vehicle); ok {
		v.NoteContact(begin)
	}
}
