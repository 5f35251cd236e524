package factory

import (
	"github.com/automoto/skidmark/archetypes"
	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateCamera spawns the camera centered on a world pixel position.
func CreateCamera(ecs *ecs.ECS, x, y float64) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{
		Position: math.Vec2{X: x, Y: y},
		Zoom:     cfg.Camera.BaseZoom,
	})
}
