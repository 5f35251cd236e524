package factory

import (
	"github.com/automoto/skidmark/archetypes"
	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateSkidMark drops a fading tire mark at a world pixel position.
func CreateSkidMark(ecs *ecs.ECS, x, y, rotation float64) *donburi.Entry {
	mark := archetypes.SkidMark.Spawn(ecs)
	components.SkidMark.SetValue(mark, components.SkidMarkData{X: x, Y: y, Rotation: rotation})
	components.AutoDestroy.SetValue(mark, components.AutoDestroyData{
		FramesRemaining: cfg.Trail.Lifetime,
		Lifetime:        cfg.Trail.Lifetime,
	})
	return mark
}
