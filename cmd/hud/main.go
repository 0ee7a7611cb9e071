//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"road-hud/internal/app"
	"road-hud/internal/hud"
	"road-hud/internal/telemetry"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	logger, err := newLogger(cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	theme := hud.DefaultTheme()
	if cfg.Theme != "" {
		if theme, err = hud.LoadTheme(cfg.Theme); err != nil {
			logger.Warn("using default theme", zap.Error(err))
		}
	}

	sim := telemetry.NewDriveSim(cfg.Seed, cfg.Metric)
	game, err := app.New(cfg.Width, cfg.Height, theme, sim, cfg.BusHz, logger)
	if err != nil {
		logger.Fatal("init failed", zap.Error(err))
	}

	ebiten.SetWindowTitle("road-hud")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)

	logger.Info("starting hud demo",
		zap.Int("bus_hz", cfg.BusHz),
		zap.Int("tps", cfg.TPS),
		zap.Bool("metric", cfg.Metric))
	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		logger.Fatal("run failed", zap.Error(err))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
