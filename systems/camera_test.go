package systems

import (
	"testing"
	"time"

	"github.com/automoto/skidmark/components"
	"github.com/automoto/skidmark/config"
	"github.com/stretchr/testify/assert"
	dmath "github.com/yohamta/donburi/features/math"
)

func TestSpeedZoom(t *testing.T) {
	assert.InDelta(t, config.Camera.BaseZoom, speedZoom(0, 20), 1e-9)
	assert.InDelta(t, config.Camera.BaseZoom-config.Camera.SpeedZoomOut/2, speedZoom(-10, 20), 1e-9)
	assert.InDelta(t, config.Camera.BaseZoom-config.Camera.SpeedZoomOut, speedZoom(40, 20), 1e-9, "capped at max speed")
	assert.InDelta(t, config.Camera.BaseZoom, speedZoom(10, 0), 1e-9)
}

func TestClampToTrack(t *testing.T) {
	halfW := float64(config.C.Width) / 2
	halfH := float64(config.C.Height) / 2

	got := clampToTrack(dmath.Vec2{X: 0, Y: 0}, 1, 2000, 2000)
	assert.Equal(t, dmath.Vec2{X: halfW, Y: halfH}, got)

	got = clampToTrack(dmath.Vec2{X: 5000, Y: 5000}, 1, 2000, 2000)
	assert.Equal(t, dmath.Vec2{X: 2000 - halfW, Y: 2000 - halfH}, got)

	got = clampToTrack(dmath.Vec2{X: 700, Y: 900}, 1, 2000, 2000)
	assert.Equal(t, dmath.Vec2{X: 700, Y: 900}, got)

	// smaller than the view: centered
	got = clampToTrack(dmath.Vec2{X: 10, Y: 10}, 1, 400, 300)
	assert.Equal(t, dmath.Vec2{X: 200, Y: 150}, got)
}

func TestUpdateZoomBoostPunch(t *testing.T) {
	camera := &components.CameraData{Zoom: config.Camera.BaseZoom}

	updateZoom(camera, true, 0, 20)
	assert.NotNil(t, camera.ZoomTween)
	assert.Less(t, camera.Zoom, config.Camera.BaseZoom)

	frames := int(config.Camera.BoostZoomDuration/config.C.FrameDuration().Seconds()) + 2
	for i := 0; i < frames; i++ {
		updateZoom(camera, false, 0, 20)
	}
	assert.Nil(t, camera.ZoomTween)
	assert.InDelta(t, config.Camera.BaseZoom, camera.Zoom, 1e-6)
}

func TestStepSeconds(t *testing.T) {
	assert.InDelta(t, 1.0/60, stepSeconds(time.Second/60, time.Second/30), 1e-9)
	assert.InDelta(t, 1.0/30, stepSeconds(time.Second, time.Second/30), 1e-9)
	assert.InDelta(t, 1.0, stepSeconds(time.Second, 0), 1e-9)
}

func TestFadeAlpha(t *testing.T) {
	assert.Equal(t, 1.0, fadeAlpha(&components.AutoDestroyData{FramesRemaining: 10, Lifetime: 10}))
	assert.Equal(t, 0.5, fadeAlpha(&components.AutoDestroyData{FramesRemaining: 5, Lifetime: 10}))
	assert.Equal(t, 0.0, fadeAlpha(&components.AutoDestroyData{FramesRemaining: -1, Lifetime: 10}))
	assert.Equal(t, 1.0, fadeAlpha(&components.AutoDestroyData{FramesRemaining: 3}))
}
