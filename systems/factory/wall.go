package factory

import (
	"fmt"

	"github.com/automoto/skidmark/archetypes"
	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/physics"
	"github.com/automoto/skidmark/shared/trackdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateWall creates a static wall body from a rectangle in world pixels.
func CreateWall(ecs *ecs.ECS, world *physics.World, r trackdata.Rect) (*donburi.Entry, error) {
	cx, cy := r.Center()
	body, err := world.CreateStaticBody(physics.BodyDef{
		Shape: physics.Box{
			HalfLength: cfg.C.ToMeters(r.W / 2),
			HalfWidth:  cfg.C.ToMeters(r.H / 2),
		},
		Position:    math.Vec2{X: cfg.C.ToMeters(cx), Y: cfg.C.ToMeters(cy)},
		Friction:    cfg.World.WallFriction,
		Restitution: cfg.World.WallRestitution,
	})
	if err != nil {
		return nil, fmt.Errorf("create wall at %v,%v: %w", r.X, r.Y, err)
	}

	wall := archetypes.Wall.Spawn(ecs)
	body.SetUserData(wall)
	components.Wall.SetValue(wall, components.WallData{
		Body: body,
		X:    r.X,
		Y:    r.Y,
		W:    r.W,
		H:    r.H,
	})
	return wall, nil
}
