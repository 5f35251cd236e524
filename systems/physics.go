package systems

import (
	"time"

	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics steps the rigid-body world once per frame. It must run after
// UpdateVehicles has queued every impulse for the frame.
func UpdatePhysics(ecs *ecs.ECS) {
	entry, ok := components.PhysicsWorld.First(ecs.World)
	if !ok {
		return
	}
	components.PhysicsWorld.Get(entry).Step(stepSeconds(cfg.C.FrameDuration(), cfg.World.MaxStep))
}

// stepSeconds clamps a frame to the maximum step.
func stepSeconds(frame, maxStep time.Duration) float64 {
	if maxStep > 0 && frame > maxStep {
		frame = maxStep
	}
	return frame.Seconds()
}
