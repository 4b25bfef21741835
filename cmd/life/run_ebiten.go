//go:build ebiten

package main

import (
	"errors"
	"os"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/logging"
	"lifegrid/internal/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
)

func runGUI(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	logger := logging.NewLogger(cfg.LogLevel, os.Stderr)

	sim := life.NewWithConfig(cfg.LifeConfig())
	seed := cfg.ResolveSeed()
	sim.Reset(seed)
	logger.Info("starting", "grid", sim.Size().String(), "seed", seed, "tick", cfg.TickInterval)

	ctrl := app.NewController(sim, app.OptionsFromConfig(cfg, logger, time.Now()))
	game := app.New(ctrl)

	ebiten.SetWindowTitle("life " + sim.Size().String())
	ebiten.SetWindowSize(cfg.ScreenWidth, cfg.ScreenHeight)
	ebiten.SetWindowClosingHandled(true)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	logger.Info("stopped", "generation", sim.Generation())
	return nil
}
