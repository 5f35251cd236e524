package components

import "github.com/yohamta/donburi"

// ScreenShakeData tracks active screen shake effect on the camera
type ScreenShakeData struct {
	Intensity float64 // max offset in pixels
	Duration  int     // frames remaining
	Elapsed   int     // frames elapsed (for oscillation)
}

var ScreenShake = donburi.NewComponentType[ScreenShakeData]()

// AutoDestroyData marks entities that are removed after a number of frames
type AutoDestroyData struct {
	FramesRemaining int
	Lifetime        int // initial frame count, used to fade
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
