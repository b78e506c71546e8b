package utils

import (
	"encoding/json"
	"flag"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/image/colornames"

	"github.com/sheikhrachel/lifestyle/rules"
)

// ErrInvalidConfig is wrapped by every Validate failure
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the simulation and its frontends
type Config struct {
	Width               int           `json:"width"`
	Height              int           `json:"height"`
	TickInterval        float64       `json:"tick_interval"` // seconds between generations
	Seed                int64         `json:"seed"`          // 0 picks a time-based seed
	Pattern             string        `json:"pattern"`
	Rule                string        `json:"rule"`
	Workers             int           `json:"workers"`
	UseMemoryPool       bool          `json:"use_memory_pool"`
	MaxGenerations      int           `json:"max_generations"`
	FrameRate           time.Duration `json:"frame_rate"`
	AutoRestart         bool          `json:"auto_restart"`
	StagnationThreshold int           `json:"stagnation_threshold"`
	RefreshInterval     int           `json:"refresh_interval"` // generations between reseeds, 0 disables
	View                ViewConfig    `json:"view"`
}

// ViewConfig describes how a frontend lays out the board
type ViewConfig struct {
	PositionX       float64 `json:"position_x"`
	PositionY       float64 `json:"position_y"`
	CellSize        float64 `json:"cell_size"`
	BackgroundColor string  `json:"background_color"`
	LiveColor       string  `json:"live_color"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:               100,
		Height:              100,
		TickInterval:        0.5,
		Pattern:             "random",
		Rule:                "B3/S23",
		Workers:             1,
		UseMemoryPool:       true,
		MaxGenerations:      1000,
		FrameRate:           50 * time.Millisecond,
		AutoRestart:         false,
		StagnationThreshold: 5,
		RefreshInterval:     200,
		View: ViewConfig{
			PositionX:       10,
			PositionY:       10,
			CellSize:        8,
			BackgroundColor: "black",
			LiveColor:       "white",
		},
	}
}

// LoadConfig loads configuration from JSON file on top of the defaults
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// Bind attaches the command-line overrides to the provided FlagSet
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Width, "width", c.Width, "grid width in cells")
	fs.IntVar(&c.Height, "height", c.Height, "grid height in cells")
	fs.Float64Var(&c.TickInterval, "tick", c.TickInterval, "seconds between generations")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for the initial board, 0 for time-based")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "initial pattern: random, empty, glider or blinker")
	fs.StringVar(&c.Rule, "rule", c.Rule, "life-like rule in B/S notation")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines per generation, 1 for sequential")
	fs.IntVar(&c.MaxGenerations, "max-generations", c.MaxGenerations, "stop after this many generations, 0 for no limit")
	fs.BoolVar(&c.AutoRestart, "auto-restart", c.AutoRestart, "reseed when the board dies out or stagnates")
	fs.Float64Var(&c.View.CellSize, "cell-size", c.View.CellSize, "cell size in pixels for the GUI")
}

// Validate checks that the configuration can drive a simulation
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid must be positive: %dx%d", c.Width, c.Height)
	case c.TickInterval <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] tick interval must be positive: %+v", c.TickInterval)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] workers must not be negative: %+v", c.Workers)
	case c.FrameRate <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] frame rate must be positive: %+v", c.FrameRate)
	case c.RefreshInterval < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] refresh interval must not be negative: %+v", c.RefreshInterval)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations must not be negative: %+v", c.MaxGenerations)
	case c.View.CellSize <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] cell size must be positive: %+v", c.View.CellSize)
	}

	if _, err := rules.ParseRule(c.Rule); err != nil {
		return errors.Wrapf(ErrInvalidConfig, "[Validate] %v", err)
	}
	for _, name := range []string{c.View.BackgroundColor, c.View.LiveColor} {
		if _, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]; !ok {
			return errors.Wrapf(ErrInvalidConfig, "[Validate] unknown color: %+v", name)
		}
	}

	return nil
}

// ParsedRule returns the configured rule, falling back to Conway's when it does not parse
func (c Config) ParsedRule() rules.Rule {
	rule, err := rules.ParseRule(c.Rule)
	if err != nil {
		return rules.Conway
	}
	return rule
}
