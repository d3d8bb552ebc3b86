package main

import (
	"math/rand"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"

	"yahtzee/internal/anim"
	"yahtzee/internal/config"
	"yahtzee/internal/engine"
)

const WindowTitle = "Yahtzee"

func main() {
	conf, err := config.Load("config.yml")
	if err != nil {
		bootLogger := zerolog.New(os.Stderr)
		bootLogger.Fatal().Err(err).Msg("config load failed")
	}
	logger := initLogger(conf)

	seed := conf.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	// 1. Window Setup
	ebiten.SetWindowSize(anim.ScreenWidth*conf.WindowScale, anim.ScreenHeight*conf.WindowScale)
	ebiten.SetWindowTitle(WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	// 2. Initialize Game
	game := NewGame(engine.New(logger, rng))

	// 3. Run Loop
	if err := ebiten.RunGame(game); err != nil {
		logger.Fatal().Err(err).Msg("game loop failed")
	}
}

func initLogger(conf *config.Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
