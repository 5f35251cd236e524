package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type CameraData struct {
	Position  math.Vec2 // world pixels at screen center
	LookAhead math.Vec2 // smoothed offset along the followed vehicle's velocity
	Zoom      float64
	ZoomTween *gween.Tween // boost punch, nil when idle
}

var Camera = donburi.NewComponentType[CameraData]()
