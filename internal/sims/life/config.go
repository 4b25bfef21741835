package life

import "strconv"

// Config holds the grid parameters for Life.
type Config struct {
	Width   int
	Height  int
	Density float64
}

// DefaultConfig returns the standard 40x30 board at 20% density.
func DefaultConfig() Config {
	return Config{Width: 40, Height: 30, Density: DefaultDensity}
}

// FromMap populates a Config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Density = parsed
		}
	}
	return c
}

// NewWithConfig builds a Life simulation from cfg.
func NewWithConfig(cfg Config) *Life {
	l := New(cfg.Width, cfg.Height)
	l.SetDensity(cfg.Density)
	return l
}
