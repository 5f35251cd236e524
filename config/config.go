package config

import (
	"image/color"
	"time"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer.
const Default ecs.LayerID = 0

// Config holds general game configuration
type Config struct {
	Width  int
	Height int
	TPS    int // Simulation ticks per second

	PixelsPerMeter float64 // World-to-screen scale for Box2D units
	PlayerProfile  string  // Vehicle profile spawned for the player
	TracksDir      string  // Directory of .tmx tracks inside the embedded assets
	Track          string  // Track loaded at startup, by file name without extension
	AppName        string  // Save data directory name
}

// WorldConfig contains rigid-body world configuration
type WorldConfig struct {
	VelocityIterations int
	PositionIterations int
	WallFriction       float64
	WallRestitution    float64
	// Fixed simulation step. Frame time is clamped to this so a stalled frame
	// cannot tunnel the car through a wall.
	MaxStep time.Duration
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowSmoothing   float64 // How fast camera follows the car (0.0-1.0)
	LookAheadSeconds  float64 // Look ahead along velocity, in seconds of travel
	BaseZoom          float64
	BoostZoom         float64 // Zoom snapped to when a boost fires, tweened back to BaseZoom
	BoostZoomDuration float64 // seconds
	SpeedZoomOut      float64 // Zoom reduction at MaxSpeed

	ScrapeShakeIntensity float64 // pixels
	ScrapeShakeFrames    int
}

// TrailConfig contains skid mark configuration
type TrailConfig struct {
	Lifetime   int        // frames
	MaxMarks   int        // oldest marks are dropped past this count
	Width      float64    // pixels
	Length     float64    // pixels
	Color      color.RGBA // color at spawn, fades to transparent
	MinSpacing float64    // meters between consecutive marks of the same tire
}

// VehicleLookConfig contains colors used by the vehicle renderer
type VehicleLookConfig struct {
	Body          color.RGBA
	BodyScraping  color.RGBA
	Tire          color.RGBA
	TailIdle      color.RGBA
	TailDrive     color.RGBA
	TailBraking   color.RGBA
	TailReversing color.RGBA
	Headlight     color.RGBA
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	Margin          float64
	LineHeight      float64
	BackgroundColor color.RGBA
	TextColor       color.RGBA
	BoostBarWidth   float64
	BoostBarHeight  float64
	BoostReady      color.RGBA
	BoostCharging   color.RGBA
	SpeedUnitScale  float64 // meters per second to displayed km/h
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	Enabled   bool // Draw trigger volumes and body outlines
	LogLevel  string
	ConfigDir string // Directory searched for skidmark.yaml overrides
}

// Global configuration instances
var C *Config
var World WorldConfig
var Camera CameraConfig
var Trail TrailConfig
var VehicleLook VehicleLookConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	DarkRed      = color.RGBA{R: 110, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Asphalt      = color.RGBA{R: 48, G: 48, B: 52, A: 255}
	WallGrey     = color.RGBA{R: 120, G: 120, B: 128, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:          960,
		Height:         540,
		TPS:            60,
		PixelsPerMeter: 16,
		PlayerProfile:  "coupe",
		TracksDir:      "tracks",
		Track:          "oval",
		AppName:        "skidmark",
	}

	World = WorldConfig{
		VelocityIterations: 8,
		PositionIterations: 3,
		WallFriction:       0.3,
		WallRestitution:    0.2,
		MaxStep:            time.Second / 30,
	}

	Camera = CameraConfig{
		FollowSmoothing:   0.12,
		LookAheadSeconds:  0.35,
		BaseZoom:          1.0,
		BoostZoom:         0.85,
		BoostZoomDuration: 0.6,
		SpeedZoomOut:      0.15,

		ScrapeShakeIntensity: 3,
		ScrapeShakeFrames:    10,
	}

	Trail = TrailConfig{
		Lifetime:   240,
		MaxMarks:   600,
		Width:      3,
		Length:     5,
		Color:      color.RGBA{R: 15, G: 15, B: 15, A: 200},
		MinSpacing: 0.15,
	}

	VehicleLook = VehicleLookConfig{
		Body:          color.RGBA{R: 220, G: 60, B: 40, A: 255},
		BodyScraping:  color.RGBA{R: 255, G: 160, B: 60, A: 255},
		Tire:          color.RGBA{R: 20, G: 20, B: 20, A: 255},
		TailIdle:      DarkRed,
		TailDrive:     color.RGBA{R: 170, G: 20, B: 20, A: 255},
		TailBraking:   Red,
		TailReversing: White,
		Headlight:     color.RGBA{R: 255, G: 250, B: 200, A: 255},
	}

	HUD = HUDConfig{
		Margin:          10,
		LineHeight:      16,
		BackgroundColor: BlackOverlay,
		TextColor:       White,
		BoostBarWidth:   90,
		BoostBarHeight:  6,
		BoostReady:      LightBlue,
		BoostCharging:   color.RGBA{R: 90, G: 90, B: 90, A: 255},
		SpeedUnitScale:  3.6,
	}

	Debug = DebugConfig{
		Enabled:   false,
		LogLevel:  "info",
		ConfigDir: ".",
	}
}

// ToPixels converts meters to world pixels.
func (c *Config) ToPixels(meters float64) float64 {
	return meters * c.PixelsPerMeter
}

// ToMeters converts world pixels to meters.
func (c *Config) ToMeters(pixels float64) float64 {
	return pixels / c.PixelsPerMeter
}

// FrameDuration is the simulated time of one tick.
func (c *Config) FrameDuration() time.Duration {
	if c.TPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TPS)
}
