package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/fonts"
	"github.com/automoto/skidmark/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	settings := GetOrCreateSettings(e)
	if !settings.Debug {
		return
	}

	camera, ok := getCamera(e)
	if !ok {
		return
	}
	view := cameraGeoM(camera, screen)

	if spaceEntry, ok := components.Space.First(e.World); ok {
		space := components.Space.Get(spaceEntry)
		for _, obj := range space.Objects() {
			drawOutline(screen, view, obj, triggerColor(obj))
		}
	}

	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(playerEntry)
	if v.Destroyed() {
		return
	}

	face := fonts.Debug.Get()
	x := screen.Bounds().Dx() - 190
	y := int(cfg.HUD.Margin + cfg.HUD.LineHeight)
	lines := []string{
		fmt.Sprintf("tps %.0f fps %.0f", ebiten.ActualTPS(), ebiten.ActualFPS()),
		fmt.Sprintf("fwd %.2f m/s", v.ForwardSpeed()),
		fmt.Sprintf("steer %.3f rad", v.SteerAngle()),
		fmt.Sprintf("profile %s (%s)", v.Profile().Name, v.Profile().Steering),
	}
	for _, t := range v.Tires() {
		lines = append(lines, fmt.Sprintf("%-11s slide=%t", t.Mount(), t.IsSliding()))
	}
	for _, l := range lines {
		text.Draw(screen, l, face, x, y, cfg.White)
		y += int(cfg.HUD.LineHeight)
	}
}

func triggerColor(obj *resolv.Object) color.Color {
	switch {
	case obj.HasTags(tags.ResolvVehicle):
		return color.RGBA{0, 0, 255, 255} // Blue
	case obj.HasTags(tags.ResolvFinishLine):
		return cfg.White
	case obj.HasTags(tags.ResolvCheckpoint):
		if entry, ok := checkpointEntry(obj); ok && components.Checkpoint.Get(entry).Passed {
			return cfg.Green
		}
		return cfg.Yellow
	}
	return color.RGBA{0, 255, 255, 255} // Cyan default
}

// drawOutline draws a trigger's bounding box, transformed by the camera.
func drawOutline(screen *ebiten.Image, view ebiten.GeoM, obj *resolv.Object, c color.Color) {
	x0, y0 := view.Apply(obj.X, obj.Y)
	x1, y1 := view.Apply(obj.X+obj.W, obj.Y+obj.H)
	w, h := float32(x1-x0), float32(y1-y0)

	vector.FillRect(screen, float32(x0), float32(y0), w, 1, c, false)   // Top
	vector.FillRect(screen, float32(x0), float32(y1-1), w, 1, c, false) // Bottom
	vector.FillRect(screen, float32(x0), float32(y0), 1, h, c, false)   // Left
	vector.FillRect(screen, float32(x1-1), float32(y0), 1, h, c, false) // Right
}
