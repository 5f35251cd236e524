package systems

import (
	"image/color"

	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/tags"
	"github.com/automoto/skidmark/vehicle"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

var (
	drawOp     = &ebiten.DrawImageOptions{}
	whitePixel *ebiten.Image
)

func pixel() *ebiten.Image {
	if whitePixel == nil {
		whitePixel = ebiten.NewImage(1, 1)
		whitePixel.Fill(color.White)
	}
	return whitePixel
}

// cameraGeoM maps world pixels to the screen: the camera position lands on
// the screen center, scaled by zoom.
func cameraGeoM(camera *components.CameraData, screen *ebiten.Image) ebiten.GeoM {
	var g ebiten.GeoM
	width, height := screen.Bounds().Dx(), screen.Bounds().Dy()
	g.Translate(-camera.Position.X, -camera.Position.Y)
	g.Scale(camera.Zoom, camera.Zoom)
	g.Translate(float64(width)/2, float64(height)/2)
	return g
}

// drawRect draws a w×h rectangle centered on (x, y) and rotated by rotation,
// all in world pixels.
func drawRect(screen *ebiten.Image, view ebiten.GeoM, x, y, w, h, rotation float64, c color.Color, alpha float64) {
	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	drawOp.GeoM.Translate(-0.5, -0.5)
	drawOp.GeoM.Scale(w, h)
	drawOp.GeoM.Rotate(rotation)
	drawOp.GeoM.Translate(x, y)
	drawOp.GeoM.Concat(view)

	drawOp.ColorScale.ScaleWithColor(c)
	drawOp.ColorScale.ScaleAlpha(float32(alpha))
	screen.DrawImage(pixel(), drawOp)
}

func getCamera(e *ecs.ECS) (*components.CameraData, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return nil, false
	}
	return components.Camera.Get(cameraEntry), true
}

// DrawTrack renders the asphalt, the baked tile background, walls and the
// finish line.
func DrawTrack(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Asphalt)

	camera, ok := getCamera(e)
	if !ok {
		return
	}
	view := cameraGeoM(camera, screen)

	if trackEntry, ok := components.Track.First(e.World); ok {
		track := components.Track.Get(trackEntry)
		if track.Background != nil {
			drawOp.GeoM.Reset()
			drawOp.ColorScale.Reset()
			drawOp.GeoM.Concat(view)
			screen.DrawImage(track.Background, drawOp)
		}
	}

	tags.Wall.Each(e.World, func(entry *donburi.Entry) {
		w := components.Wall.Get(entry)
		drawRect(screen, view, w.X+w.W/2, w.Y+w.H/2, w.W, w.H, 0, cfg.WallGrey, 1)
	})

	tags.FinishLine.Each(e.World, func(entry *donburi.Entry) {
		obj := components.Trigger.Get(entry)
		drawRect(screen, view, obj.X+obj.W/2, obj.Y+obj.H/2, obj.W, obj.H, 0, cfg.White, 0.8)
	})
}

// DrawTrails renders skid marks, fading with their remaining lifetime.
func DrawTrails(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(e)
	if !ok {
		return
	}
	view := cameraGeoM(camera, screen)

	tags.SkidMark.Each(e.World, func(entry *donburi.Entry) {
		mark := components.SkidMark.Get(entry)
		alpha := fadeAlpha(components.AutoDestroy.Get(entry))
		drawRect(screen, view, mark.X, mark.Y, cfg.Trail.Length, cfg.Trail.Width, mark.Rotation, cfg.Trail.Color, alpha)
	})
}

// DrawVehicles calls each vehicle's Draw hook against this frame's screen.
func DrawVehicles(e *ecs.ECS, screen *ebiten.Image) {
	camera, ok := getCamera(e)
	if !ok {
		return
	}
	VehicleRenderer.screen = screen
	VehicleRenderer.view = cameraGeoM(camera, screen)

	tags.Vehicle.Each(e.World, func(entry *donburi.Entry) {
		components.Vehicle.Get(entry).Draw()
	})
	VehicleRenderer.screen = nil
}

// VehicleRenderer draws vehicles as colored boxes. DrawVehicles points it at
// the current screen before calling Draw.
var VehicleRenderer = &vehicleRenderer{}

type vehicleRenderer struct {
	screen *ebiten.Image
	view   ebiten.GeoM
}

var _ vehicle.Renderer = (*vehicleRenderer)(nil)

func (r *vehicleRenderer) DrawVehicle(v *vehicle.Vehicle) {
	if r.screen == nil || v.Destroyed() {
		return
	}
	p := v.Profile()
	rot := v.Rotation()

	for _, t := range v.Tires() {
		pos := t.Position()
		drawRect(r.screen, r.view,
			cfg.C.ToPixels(pos.X), cfg.C.ToPixels(pos.Y),
			cfg.C.ToPixels(p.TireLength), cfg.C.ToPixels(p.TireWidth),
			t.Rotation(), cfg.VehicleLook.Tire, 1)
	}

	body := cfg.VehicleLook.Body
	if v.Scraping() {
		body = cfg.VehicleLook.BodyScraping
	}
	pos := v.GetPosition()
	drawRect(r.screen, r.view,
		cfg.C.ToPixels(pos.X), cfg.C.ToPixels(pos.Y),
		cfg.C.ToPixels(p.ChassisLength), cfg.C.ToPixels(p.ChassisWidth),
		rot, body, 1)

	halfL, halfW := p.ChassisLength/2, p.ChassisWidth/2*0.6
	lamp := cfg.C.ToPixels(p.ChassisWidth) / 6
	tail := tailLightColor(v)
	for _, side := range []float64{-1, 1} {
		r.drawLamp(v, dmath.Vec2{X: halfL, Y: side * halfW}, lamp, rot, cfg.VehicleLook.Headlight)
		r.drawLamp(v, dmath.Vec2{X: -halfL, Y: side * halfW}, lamp, rot, tail)
	}
}

func (r *vehicleRenderer) drawLamp(v *vehicle.Vehicle, local dmath.Vec2, size, rotation float64, c color.Color) {
	p := v.Chassis().WorldPoint(local)
	drawRect(r.screen, r.view, cfg.C.ToPixels(p.X), cfg.C.ToPixels(p.Y), size, size, rotation, c, 1)
}

// tailLightColor picks braking, then reversing, then driving, then idle.
func tailLightColor(v *vehicle.Vehicle) color.RGBA {
	switch {
	case v.IsBraking():
		return cfg.VehicleLook.TailBraking
	case v.IsReversing():
		return cfg.VehicleLook.TailReversing
	case v.InDrive():
		return cfg.VehicleLook.TailDrive
	default:
		return cfg.VehicleLook.TailIdle
	}
}
