package components

import (
	"github.com/automoto/skidmark/physics"
	"github.com/yohamta/donburi"
)

type PhysicsWorldData struct {
	*physics.World
}

var PhysicsWorld = donburi.NewComponentType[PhysicsWorldData]()

// WallData links a wall entity to its static body.
type WallData struct {
	Body       *physics.Body
	X, Y, W, H float64 // world pixels
}

var Wall = donburi.NewComponentType[WallData]()
