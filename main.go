package main

import (
	"flag"
	"os"
	"time"

	"github.com/automoto/skidmark/config"
	"github.com/automoto/skidmark/fonts"
	"github.com/automoto/skidmark/scenes"
	"github.com/automoto/skidmark/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

type Scene interface {
	Update()
	Draw(screen *ebiten.Image)
}

type Game struct {
	scene Scene
}

func (g *Game) Update() error {
	g.scene.Update()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configDir := flag.String("config", config.Debug.ConfigDir, "directory searched for skidmark.yaml")
	track := flag.String("track", "", "track to load, overrides the config file")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		With().Timestamp().Logger()

	if err := config.Load(*configDir); err != nil {
		log.Fatal().Err(err).Str("dir", *configDir).Msg("invalid configuration")
	}
	if *track != "" {
		config.C.Track = *track
	}

	level, err := zerolog.ParseLevel(config.Debug.LogLevel)
	if err != nil {
		log.Warn().Err(err).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	log = log.Level(level)
	systems.SetLogger(log)

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatal().Err(err).Msg("load fonts")
	}

	// Lap records are optional; the game runs without them
	if err := systems.InitPersistence(config.C.AppName); err != nil {
		log.Warn().Err(err).Msg("lap records disabled")
	}

	scene, err := scenes.NewRaceScene(config.C.Track, log)
	if err != nil {
		log.Fatal().Err(err).Msg("build race scene")
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("skidmark")
	ebiten.SetTPS(config.C.TPS)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)

	if err := ebiten.RunGame(&Game{scene: scene}); err != nil {
		log.Fatal().Err(err).Msg("game loop")
	}
}
