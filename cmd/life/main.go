package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"lifegrid/internal/app"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var version = "0.1.0-dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "life",
		Short: "Conway's Game of Life on a toroidal grid",
		Long: `life runs Conway's Game of Life (B3/S23) on a fixed-size wrapping grid.

Click cells to toggle them, use the Start/Stop control or space to pause,
CTRL+S to save the board and CTRL+L to load it back.`,
		SilenceUsage: true,
		RunE:         runGUI,
	}

	rootCmd.PersistentFlags().String("config", "", "YAML config file")
	app.NewConfig().Bind(rootCmd.PersistentFlags())

	rootCmd.AddCommand(
		newRunCmd(),
		newTermCmd(),
		newStepCmd(),
		newInspectCmd(),
		newVersionCmd(),
	)
	return rootCmd
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Open the simulation window (requires -tags ebiten)",
		Args:  cobra.NoArgs,
		RunE:  runGUI,
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "life version %s\n", version)
		},
	}
}

// resolveConfig layers defaults, the --config file, LIFE_* env vars and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command) (*app.Config, error) {
	cfg := app.NewConfig()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := app.LoadFromFile(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	cfg.ApplyEnv()

	overrides := pflag.NewFlagSet("overrides", pflag.ContinueOnError)
	cfg.Bind(overrides)
	var setErr error
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if setErr != nil || overrides.Lookup(f.Name) == nil {
			return
		}
		if err := overrides.Set(f.Name, f.Value.String()); err != nil {
			setErr = fmt.Errorf("applying --%s: %w", f.Name, err)
		}
	})
	if setErr != nil {
		return nil, setErr
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}
