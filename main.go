package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/particle-field/internal/audio"
	"github.com/iburimskiy/particle-field/internal/config"
	"github.com/iburimskiy/particle-field/internal/field"
	"github.com/iburimskiy/particle-field/internal/game"
	"github.com/iburimskiy/particle-field/internal/logging"
	"github.com/ncruces/zenity"
	"go.uber.org/zap"
)

func run() error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	log := logging.NewStdout(cfg.Log)
	defer func() { _ = log.Sync() }()

	font, err := game.LoadFace()
	if err != nil {
		return err
	}

	opts := []field.Option{field.WithLogger(log.Named("field"))}
	if cfg.Sound.Enabled {
		chime, err := audio.NewChime(cfg.Sound, log.Named("audio"))
		if err != nil {
			log.Warn("sound disabled", zap.Error(err))
		} else {
			opts = append(opts, field.WithPaletteListener(chime))
		}
	}

	anim := field.New(cfg, float64(cfg.Window.Width), float64(cfg.Window.Height), opts...)
	g := game.New(cfg, anim, font, log)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	log.Info("starting",
		zap.Int("width", cfg.Window.Width),
		zap.Int("height", cfg.Window.Height),
		zap.Int("max_particles", cfg.Particles.Max),
		zap.Bool("sound", cfg.Sound.Enabled),
	)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Error("game loop stopped", zap.Error(err))
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "particlefield:", err)
		_ = zenity.Error(err.Error(), zenity.Title("Particle Field"), zenity.ErrorIcon)
		os.Exit(1)
	}
}
