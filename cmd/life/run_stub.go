//go:build !ebiten

package main

import (
	"errors"

	"github.com/spf13/cobra"
)

func runGUI(cmd *cobra.Command, args []string) error {
	return errors.New("the GUI build of life requires the ebiten build tag; " +
		"re-run with `go run -tags ebiten ./cmd/life` or try `life term`")
}
