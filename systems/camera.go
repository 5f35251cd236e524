package systems

import (
	"math"

	"github.com/automoto/skidmark/components"
	"github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	// Process screen shake
	updateScreenShake(cameraEntry, camera)

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(playerEntry)
	if v.Destroyed() {
		return
	}

	pos := v.GetPosition()
	vel := v.Velocity()
	posPx := dmath.Vec2{X: config.C.ToPixels(pos.X), Y: config.C.ToPixels(pos.Y)}
	velPx := dmath.Vec2{X: config.C.ToPixels(vel.X), Y: config.C.ToPixels(vel.Y)}

	// Lead the car along its velocity so more of the road ahead is visible
	targetLookAhead := velPx.MulScalar(config.Camera.LookAheadSeconds)
	camera.LookAhead = camera.LookAhead.Add(targetLookAhead.Sub(camera.LookAhead).MulScalar(config.Camera.FollowSmoothing))

	updateZoom(camera, v.BoostFired(), v.ForwardSpeed(), v.Profile().MaxSpeed)

	target := posPx.Add(camera.LookAhead)
	if trackEntry, ok := components.Track.First(e.World); ok {
		track := components.Track.Get(trackEntry)
		target = clampToTrack(target, camera.Zoom, float64(track.Width), float64(track.Height))
	}

	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
}

// updateZoom zooms out with speed. A boost restarts the punch tween, which
// scales the speed zoom until it settles back to 1.
func updateZoom(camera *components.CameraData, boostFired bool, forwardSpeed, maxSpeed float64) {
	if boostFired {
		punch := config.Camera.BoostZoom / config.Camera.BaseZoom
		camera.ZoomTween = gween.New(float32(punch), 1, float32(config.Camera.BoostZoomDuration), ease.OutQuad)
	}

	zoom := speedZoom(forwardSpeed, maxSpeed)
	if camera.ZoomTween != nil {
		scale, finished := camera.ZoomTween.Update(float32(config.C.FrameDuration().Seconds()))
		zoom *= float64(scale)
		if finished {
			camera.ZoomTween = nil
		}
	}
	camera.Zoom = zoom
}

// speedZoom is BaseZoom reduced linearly up to SpeedZoomOut at maxSpeed.
func speedZoom(forwardSpeed, maxSpeed float64) float64 {
	if maxSpeed <= 0 {
		return config.Camera.BaseZoom
	}
	ratio := math.Min(math.Abs(forwardSpeed)/maxSpeed, 1)
	return config.Camera.BaseZoom - config.Camera.SpeedZoomOut*ratio
}

// clampToTrack keeps the view inside the track. On an axis where the track
// is smaller than the view the camera centers on the track.
func clampToTrack(target dmath.Vec2, zoom, trackWidth, trackHeight float64) dmath.Vec2 {
	if zoom <= 0 {
		zoom = 1
	}
	halfW := float64(config.C.Width) / 2 / zoom
	halfH := float64(config.C.Height) / 2 / zoom

	clampAxis := func(v, half, size float64) float64 {
		if size <= 2*half {
			return size / 2
		}
		return math.Max(half, math.Min(size-half, v))
	}
	return dmath.Vec2{
		X: clampAxis(target.X, halfW, trackWidth),
		Y: clampAxis(target.Y, halfH, trackHeight),
	}
}

// updateScreenShake applies screen shake offset to camera and decrements duration
func updateScreenShake(cameraEntry *donburi.Entry, camera *components.CameraData) {
	if !cameraEntry.HasComponent(components.ScreenShake) {
		return
	}

	shake := components.ScreenShake.Get(cameraEntry)
	shake.Elapsed++

	// Calculate decaying intensity
	progress := float64(shake.Duration-shake.Elapsed) / float64(shake.Duration)
	if progress < 0 {
		progress = 0
	}
	currentIntensity := shake.Intensity * progress

	// Apply oscillating offset using sine/cosine for smooth shake
	camera.Position.X += math.Sin(float64(shake.Elapsed)*1.1) * currentIntensity
	camera.Position.Y += math.Cos(float64(shake.Elapsed)*1.3) * currentIntensity

	if shake.Elapsed >= shake.Duration {
		cameraEntry.RemoveComponent(components.ScreenShake)
	}
}

// TriggerScreenShake starts a screen shake effect
func TriggerScreenShake(ecs *ecs.ECS, intensity float64, duration int) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return
	}

	if cameraEntry.HasComponent(components.ScreenShake) {
		shake := components.ScreenShake.Get(cameraEntry)
		// Only override if new shake is stronger
		if intensity > shake.Intensity {
			shake.Intensity = intensity
			shake.Duration = duration
			shake.Elapsed = 0
		}
		return
	}
	cameraEntry.AddComponent(components.ScreenShake)
	components.ScreenShake.Set(cameraEntry, &components.ScreenShakeData{
		Intensity: intensity,
		Duration:  duration,
	})
}
