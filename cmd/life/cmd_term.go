package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"lifegrid/internal/app"
	"lifegrid/internal/logging"
	"lifegrid/internal/sims/life"
	"lifegrid/internal/term"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"
)

func newTermCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "term",
		Short: "Run the simulation in the terminal",
		Long: `Run the simulation in the terminal. Each cell is two columns wide.
Click cells to toggle them; ctrl+s saves, ctrl+l loads, space pauses, q quits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			logPath, _ := cmd.Flags().GetString("log-file")
			var logOut io.Writer = io.Discard
			if logPath != "" {
				f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
				if err != nil {
					return fmt.Errorf("opening log file: %w", err)
				}
				defer f.Close()
				logOut = f
			}
			logger := logging.NewLogger(cfg.LogLevel, logOut)

			screen, err := tcell.NewScreen()
			if err != nil {
				return fmt.Errorf("creating screen: %w", err)
			}
			if err := screen.Init(); err != nil {
				return fmt.Errorf("initializing screen: %w", err)
			}
			defer screen.Fini()

			sim := life.NewWithConfig(cfg.LifeConfig())
			seed := cfg.ResolveSeed()
			sim.Reset(seed)
			logger.Info("starting", "grid", sim.Size().String(), "seed", seed, "tick", cfg.TickInterval)

			ctrl := app.NewController(sim, term.Options(cfg, logger, time.Now()))
			if err := term.Run(cmd.Context(), screen, ctrl, term.DefaultFrame); err != nil {
				return err
			}
			logger.Info("stopped", "generation", sim.Generation())
			return nil
		},
	}
	cmd.Flags().String("log-file", "", "append logs to this file (the terminal is busy)")
	return cmd
}
