package utils

import (
	"flag"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/lifestyle/rules"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	data := `{"width": 40, "height": 30, "tick_interval": 0.01, "rule": "B36/S23", "view": {"live_color": "lime"}}`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 40 || cfg.Height != 30 || cfg.TickInterval != 0.01 {
		t.Fatalf("file values not applied: %+v", cfg)
	}
	if cfg.Pattern != "random" || cfg.View.BackgroundColor != "black" {
		t.Fatalf("defaults lost for unset fields: %+v", cfg)
	}
	if cfg.View.LiveColor != "lime" {
		t.Fatalf("nested view value not applied: %+v", cfg.View)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("loaded config invalid: %v", err)
	}
	if cfg.ParsedRule() == rules.Conway {
		t.Fatal("ParsedRule ignored the configured rule")
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("error = %v, expected not-exist", err)
	}

	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(path)
	if err == nil {
		t.Fatal("expected an unmarshal error")
	}
	if cfg.Width != DefaultConfig().Width {
		t.Fatalf("config should fall back to defaults, got %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero width", func(c *Config) { c.Width = 0 }},
		{"negative height", func(c *Config) { c.Height = -1 }},
		{"zero tick", func(c *Config) { c.TickInterval = 0 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"zero cell size", func(c *Config) { c.View.CellSize = 0 }},
		{"zero frame rate", func(c *Config) { c.FrameRate = 0 }},
		{"negative frame rate", func(c *Config) { c.FrameRate = -time.Millisecond }},
		{"negative refresh interval", func(c *Config) { c.RefreshInterval = -1 }},
		{"bad rule", func(c *Config) { c.Rule = "conway" }},
		{"unknown color", func(c *Config) { c.View.LiveColor = "octarine" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("error = %v, expected ErrInvalidConfig", err)
			}
		})
	}
}

func TestBind(t *testing.T) {
	cfg := DefaultConfig()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.Bind(fs)
	if err := fs.Parse([]string{"-width", "12", "-tick", "0.25", "-seed", "9", "-pattern", "glider", "-workers", "4"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Width != 12 || cfg.TickInterval != 0.25 || cfg.Seed != 9 || cfg.Pattern != "glider" || cfg.Workers != 4 {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.Height != DefaultConfig().Height {
		t.Fatalf("unset flag changed height to %d", cfg.Height)
	}
}
