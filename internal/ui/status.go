package ui

import (
	"strings"

	"lifegrid/internal/core"
)

// HelpText is the key-binding banner shown above the Start/Stop control.
const HelpText = "CTRL+S to Save | CTRL+L to Load game"

// StatusSource is the read-only view the HUD renders.
type StatusSource interface {
	Paused() bool
	Button() core.Rect
	Status() string
	Parameters() core.ParameterSnapshot
}

// ButtonLabel returns the caption for the Start/Stop control.
func ButtonLabel(paused bool) string {
	if paused {
		return "Start"
	}
	return "Stop"
}

// StatusLine summarizes generation, population, tick interval and run state.
func StatusLine(src StatusSource) string {
	snap := src.Parameters()
	var parts []string
	if p, ok := snap.Lookup("generation"); ok {
		parts = append(parts, "gen "+p.Value)
	}
	if p, ok := snap.Lookup("alive"); ok {
		parts = append(parts, "alive "+p.Value)
	}
	if p, ok := snap.Lookup("tick_interval"); ok {
		parts = append(parts, "tick "+p.Value+"s")
	}
	if src.Paused() {
		parts = append(parts, "PAUSED")
	}
	if msg := src.Status(); msg != "" {
		parts = append(parts, msg)
	}
	return strings.Join(parts, " | ")
}
