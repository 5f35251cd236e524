package archetypes

import (
	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Vehicle = newArchetype(
		tags.Vehicle,
		components.Vehicle,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Wall,
	)
	Checkpoint = newArchetype(
		tags.Checkpoint,
		components.Checkpoint,
		components.Trigger,
	)
	FinishLine = newArchetype(
		tags.FinishLine,
		components.FinishLine,
		components.Trigger,
	)
	SkidMark = newArchetype(
		tags.SkidMark,
		components.SkidMark,
		components.AutoDestroy,
	)
	Space = newArchetype(
		components.Space,
	)
	PhysicsWorld = newArchetype(
		components.PhysicsWorld,
	)
	Track = newArchetype(
		components.Track,
	)
	Race = newArchetype(
		components.Race,
	)
	Camera = newArchetype(
		components.Camera,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
