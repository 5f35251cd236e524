package factory

import (
	"github.com/automoto/skidmark/archetypes"
	"github.com/automoto/skidmark/components"
	"github.com/automoto/skidmark/shared/trackdata"
	"github.com/automoto/skidmark/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateCheckpoint creates a checkpoint trigger in world pixels. index is its
// position in the lap.
func CreateCheckpoint(ecs *ecs.ECS, cp trackdata.Checkpoint, index int) *donburi.Entry {
	checkpoint := archetypes.Checkpoint.Spawn(ecs)

	obj := resolv.NewObject(cp.X, cp.Y, cp.W, cp.H, tags.ResolvCheckpoint)
	obj.SetShape(resolv.NewRectangle(0, 0, cp.W, cp.H))
	obj.Data = checkpoint

	components.Trigger.SetValue(checkpoint, components.TriggerData{Object: obj})
	components.Checkpoint.SetValue(checkpoint, components.CheckpointData{Order: cp.Order, Index: index})

	addToSpace(ecs, obj)
	return checkpoint
}
