package main

import (
	"encoding/json"
	"fmt"
	"time"

	"lifegrid/internal/persist"
	"lifegrid/internal/render"

	"github.com/spf13/cobra"
)

func newInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <file>",
		Short: "Verify and print a saved game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			g, header, err := persist.Read(args[0], nil)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			if jsonOut {
				return json.NewEncoder(w).Encode(header)
			}
			fmt.Fprintf(w, "File:     %s\n", args[0])
			fmt.Fprintf(w, "Format:   %s v%d\n", header.Format, header.Version)
			fmt.Fprintf(w, "Size:     %s\n", header.Size())
			fmt.Fprintf(w, "Alive:    %d\n", header.Alive)
			fmt.Fprintf(w, "Saved:    %s\n", header.CreatedAt.Format(time.RFC3339))
			fmt.Fprintf(w, "Checksum: %s\n\n", header.Checksum)
			return render.WriteASCII(w, g)
		},
	}
	cmd.Flags().Bool("json", false, "print the header as JSON")
	return cmd
}
