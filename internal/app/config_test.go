package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lifegrid/internal/core"

	"github.com/spf13/pflag"
)

func TestDefaults(t *testing.T) {
	cfg := NewConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.CellsX != 40 || cfg.CellsY != 30 || cfg.TickInterval != 500*time.Millisecond {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if got := cfg.ButtonRect(); got != (core.Rect{X: 300, Y: 540, W: 200, H: 50}) {
		t.Fatalf("ButtonRect = %+v", got)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "life.yaml")
	data := []byte("cells_x: 20\ncells_y: 10\ntick_interval: 100ms\nbutton:\n  width: 120\n")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if cfg.CellsX != 20 || cfg.CellsY != 10 || cfg.TickInterval != 100*time.Millisecond {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Button.Width != 120 || cfg.Button.Height != 50 {
		t.Fatalf("button = %+v, want width override with default height", cfg.Button)
	}
	if cfg.ScreenWidth != 800 {
		t.Fatal("unset keys must keep defaults")
	}
}

func TestLoadFromFileErrors(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("cells_x: [1, 2\n"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromFile(path); err == nil {
		t.Fatal("expected error for malformed yaml")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LIFE_TICK_INTERVAL", "250ms")
	t.Setenv("LIFE_SAVE_PATH", "/tmp/board")
	t.Setenv("LIFE_LOG_LEVEL", "debug")
	t.Setenv("LIFE_SEED", "17")
	cfg := NewConfig()
	cfg.ApplyEnv()
	if cfg.TickInterval != 250*time.Millisecond || cfg.SavePath != "/tmp/board" || cfg.LogLevel != "debug" || cfg.Seed != 17 {
		t.Fatalf("env overrides not applied: %+v", cfg)
	}
	if cfg.ResolveSeed() != 17 {
		t.Fatal("explicit seed must be used as-is")
	}
}

func TestBind(t *testing.T) {
	cfg := NewConfig()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"--cells-x=64", "--tick=100ms", "--save-path=board"}); err != nil {
		t.Fatal(err)
	}
	if cfg.CellsX != 64 || cfg.TickInterval != 100*time.Millisecond || cfg.SavePath != "board" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero cells", func(c *Config) { c.CellsX = 0 }},
		{"screen smaller than grid", func(c *Config) { c.ScreenWidth = 10 }},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"density above one", func(c *Config) { c.Density = 1.5 }},
		{"empty save path", func(c *Config) { c.SavePath = "" }},
		{"negative button", func(c *Config) { c.Button.Width = -1 }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}
