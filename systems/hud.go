package systems

import (
	"fmt"
	"math"
	"time"

	"github.com/automoto/skidmark/components"
	cfg "github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/fonts"
	"github.com/automoto/skidmark/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

const hudPanelWidth = 170

// DrawHUD renders speed, lap times and the boost meter in the top-left corner.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := tags.Player.First(e.World)
	if !ok {
		return
	}
	v := components.Vehicle.Get(playerEntry)

	margin := cfg.HUD.Margin
	line := cfg.HUD.LineHeight

	vector.FillRect(screen,
		float32(margin/2), float32(margin/2),
		hudPanelWidth, float32(line*6+margin),
		cfg.HUD.BackgroundColor, false)

	large := fonts.HUDLarge.Get()
	regular := fonts.HUD.Get()
	y := margin + line*1.5

	speed := 0.0
	if !v.Destroyed() {
		speed = math.Abs(v.ForwardSpeed()) * cfg.HUD.SpeedUnitScale
	}
	text.Draw(screen, fmt.Sprintf("%3.0f km/h", speed), large, int(margin), int(y), cfg.HUD.TextColor)
	y += line * 1.5

	if raceEntry, ok := components.Race.First(e.World); ok {
		race := components.Race.Get(raceEntry)
		text.Draw(screen, fmt.Sprintf("LAP %d  %s", race.Lap+1, FormatLap(CurrentLap(race))), regular, int(margin), int(y), cfg.HUD.TextColor)
		y += line
		text.Draw(screen, "LAST "+FormatLap(race.LastLap), regular, int(margin), int(y), cfg.HUD.TextColor)
		y += line
		best := cfg.HUD.TextColor
		if race.NewBest {
			best = cfg.Green
		}
		text.Draw(screen, "BEST "+FormatLap(race.BestLap), regular, int(margin), int(y), best)
		y += line
	}

	charge := 0.0
	if !v.Destroyed() {
		charge = v.BoostCharge()
	}
	barColor := cfg.HUD.BoostCharging
	if charge >= 1 {
		barColor = cfg.HUD.BoostReady
	}
	y -= line / 2
	vector.FillRect(screen,
		float32(margin), float32(y),
		float32(cfg.HUD.BoostBarWidth), float32(cfg.HUD.BoostBarHeight),
		cfg.BlackOverlay, false)
	vector.FillRect(screen,
		float32(margin), float32(y),
		float32(cfg.HUD.BoostBarWidth*charge), float32(cfg.HUD.BoostBarHeight),
		barColor, false)
	text.Draw(screen, v.Profile().Name, fonts.HUDSmall.Get(), int(margin+cfg.HUD.BoostBarWidth+6), int(y+cfg.HUD.BoostBarHeight), cfg.HUD.TextColor)
}

// FormatLap renders a lap time as m:ss.mmm, or dashes for zero.
func FormatLap(d time.Duration) string {
	if d <= 0 {
		return "-:--.---"
	}
	ms := d.Milliseconds()
	return fmt.Sprintf("%d:%02d.%03d", ms/60000, (ms/1000)%60, ms%1000)
}
