package main

import (
	"fmt"

	"lifegrid/internal/persist"
	"lifegrid/internal/render"
	"lifegrid/internal/sims/life"

	"github.com/spf13/cobra"
)

func newStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Advance a board headlessly",
		Long: `Advance a board by a number of generations without opening a window.

The board comes from --in (a saved game) or is seeded from the configuration.
The result is printed as text and optionally written with --out.

Examples:
  life step --generations 10
  life step --in saved_game_state --generations 100 --out after100`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			in, _ := cmd.Flags().GetString("in")
			out, _ := cmd.Flags().GetString("out")
			generations, _ := cmd.Flags().GetInt("generations")
			quiet, _ := cmd.Flags().GetBool("quiet")
			if generations < 0 {
				return fmt.Errorf("generations must be non-negative, got %d", generations)
			}

			var sim *life.Life
			if in != "" {
				g, _, err := persist.Read(in, nil)
				if err != nil {
					return err
				}
				sim = life.New(g.W, g.H)
				if err := sim.ReplaceAll(g); err != nil {
					return err
				}
			} else {
				sim = life.NewWithConfig(cfg.LifeConfig())
				sim.Reset(cfg.ResolveSeed())
			}

			for i := 0; i < generations; i++ {
				sim.Step()
			}

			snap := sim.Snapshot()
			if !quiet {
				if err := render.WriteASCII(cmd.OutOrStdout(), snap); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "generation %d, %d alive\n", sim.Generation(), snap.Alive())
			}
			if out != "" {
				if err := persist.Save(out, snap); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().String("in", "", "saved game to start from")
	cmd.Flags().String("out", "", "write the resulting board here")
	cmd.Flags().Int("generations", 1, "number of generations to advance")
	cmd.Flags().Bool("quiet", false, "do not print the board")
	return cmd
}
