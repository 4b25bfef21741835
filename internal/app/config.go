package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"lifegrid/internal/core"
	"lifegrid/internal/logging"
	"lifegrid/internal/persist"
	"lifegrid/internal/sims/life"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// ButtonConfig sizes the Start/Stop control anchored to the bottom edge.
type ButtonConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	Margin int `yaml:"margin"`
}

// Config represents the startup parameters shared by every frontend.
type Config struct {
	ScreenWidth  int           `yaml:"screen_width"`
	ScreenHeight int           `yaml:"screen_height"`
	CellsX       int           `yaml:"cells_x"`
	CellsY       int           `yaml:"cells_y"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Density      float64       `yaml:"density"`
	// Seed for the initial board; 0 picks one from the clock.
	Seed     int64        `yaml:"seed"`
	SavePath string       `yaml:"save_path"`
	Button   ButtonConfig `yaml:"button"`
	LogLevel string       `yaml:"log_level"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		ScreenWidth:  800,
		ScreenHeight: 600,
		CellsX:       40,
		CellsY:       30,
		TickInterval: core.DefaultTickInterval,
		Density:      life.DefaultDensity,
		SavePath:     persist.DefaultPath,
		Button:       ButtonConfig{Width: 200, Height: 50, Margin: 10},
		LogLevel:     "info",
	}
}

// LoadFromFile overlays the YAML file at path onto the defaults.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := NewConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	return cfg, nil
}

// ApplyEnv applies LIFE_* environment variable overrides.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("LIFE_TICK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.TickInterval = d
		}
	}
	if v := os.Getenv("LIFE_SAVE_PATH"); v != "" {
		c.SavePath = v
	}
	if v := os.Getenv("LIFE_LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("LIFE_SEED"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = n
		}
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *pflag.FlagSet) {
	fs.IntVar(&c.ScreenWidth, "width", c.ScreenWidth, "window width in pixels")
	fs.IntVar(&c.ScreenHeight, "height", c.ScreenHeight, "window height in pixels")
	fs.IntVar(&c.CellsX, "cells-x", c.CellsX, "grid columns")
	fs.IntVar(&c.CellsY, "cells-y", c.CellsY, "grid rows")
	fs.DurationVar(&c.TickInterval, "tick", c.TickInterval, "time between generations")
	fs.Float64Var(&c.Density, "density", c.Density, "initial probability of a live cell")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board (0 = clock)")
	fs.StringVar(&c.SavePath, "save-path", c.SavePath, "snapshot file for save/load")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: error, warn, info, debug, trace")
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.CellsX <= 0 || c.CellsY <= 0 {
		return fmt.Errorf("cell counts must be positive, got %dx%d", c.CellsX, c.CellsY)
	}
	if c.ScreenWidth < c.CellsX || c.ScreenHeight < c.CellsY {
		return fmt.Errorf("screen %dx%d is smaller than the %dx%d grid", c.ScreenWidth, c.ScreenHeight, c.CellsX, c.CellsY)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick_interval must be positive, got %v", c.TickInterval)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be between 0 and 1, got %f", c.Density)
	}
	if c.SavePath == "" {
		return fmt.Errorf("save_path must not be empty")
	}
	if c.Button.Width < 0 || c.Button.Height < 0 || c.Button.Margin < 0 {
		return fmt.Errorf("button dimensions must be non-negative")
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log level: %s (valid: error, warn, info, debug, trace)", c.LogLevel)
	}
	return nil
}

// Layout returns the pixel/cell geometry for the configured screen.
func (c *Config) Layout() core.Layout {
	return core.Layout{
		ScreenW: c.ScreenWidth,
		ScreenH: c.ScreenHeight,
		Cells:   core.Size{W: c.CellsX, H: c.CellsY},
	}
}

// ButtonRect returns the Start/Stop control, centred above the bottom margin.
func (c *Config) ButtonRect() core.Rect {
	b := c.Button
	return core.Rect{
		X: (c.ScreenWidth - b.Width) / 2,
		Y: c.ScreenHeight - b.Height - b.Margin,
		W: b.Width,
		H: b.Height,
	}
}

// LifeConfig returns the simulation parameters.
func (c *Config) LifeConfig() life.Config {
	return life.Config{Width: c.CellsX, Height: c.CellsY, Density: c.Density}
}

// ResolveSeed returns Seed, or a clock-derived seed when Seed is zero.
func (c *Config) ResolveSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}
