// Package config loads the gridpath driver configuration from TOML.
//
// Every field has a default (see Default), so a config file only needs the
// values it overrides:
//
//	[grid]
//	rows = 25
//	cols = 25
//
//	[game]
//	level = "level2"
//	strategy = "a*"
//	time_limit = "30s"
//	tick_rate = 5
//	seed = 42
//
//	[search]
//	ids_time_limit = "5s"
//	random_max_steps = 1000
//
//	[server]
//	addr = ":8080"
//	max_cells = 1048576
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/game"
	"github.com/katalvlaran/gridpath/search"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Duration lets TOML strings like "30s" decode into a time.Duration.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Config is the full driver configuration.
type Config struct {
	Grid   GridConfig   `toml:"grid"`
	Game   GameConfig   `toml:"game"`
	Search SearchConfig `toml:"search"`
	Server ServerConfig `toml:"server"`
}

// GridConfig sets the board size.
type GridConfig struct {
	Rows int `toml:"rows"`
	Cols int `toml:"cols"`
}

// GameConfig drives the snake game.
type GameConfig struct {
	Level     string   `toml:"level"`
	Strategy  string   `toml:"strategy"`
	TimeLimit Duration `toml:"time_limit"`
	TickRate  int      `toml:"tick_rate"`
	Seed      int64    `toml:"seed"`
}

// SearchConfig holds the strategy budgets.
type SearchConfig struct {
	IDSTimeLimit   Duration `toml:"ids_time_limit"`
	RandomMaxSteps int      `toml:"random_max_steps"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Addr     string `toml:"addr"`
	MaxCells int    `toml:"max_cells"` // largest rows×cols a request may ask for
}

// Default returns the configuration of the original game: a 25×25 grid,
// level0, A*, a 30 second game at 5 ticks per second.
func Default() Config {
	return Config{
		Grid: GridConfig{Rows: 25, Cols: 25},
		Game: GameConfig{
			Level:     "level0",
			Strategy:  "a*",
			TimeLimit: Duration{30 * time.Second},
			TickRate:  5,
		},
		Search: SearchConfig{
			IDSTimeLimit:   Duration{search.DefaultTimeLimit},
			RandomMaxSteps: search.DefaultMaxSteps,
		},
		Server: ServerConfig{Addr: ":8080", MaxCells: 1 << 20},
	}
}

// Load reads path over the defaults. An empty path returns Default().
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML text over the defaults.
func Parse(data string) (Config, error) {
	cfg := Default()
	if _, err := toml.Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	return cfg, nil
}

// Validate checks every value that would otherwise fail later, so that
// configuration errors are reported before any search runs.
func (c Config) Validate() error {
	var errs []error
	if err := c.Bounds().Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := game.ParseLevel(c.Game.Level); err != nil {
		errs = append(errs, err)
	}
	if _, err := search.Parse(c.Game.Strategy); err != nil {
		errs = append(errs, err)
	}
	if c.Game.TimeLimit.Duration <= 0 {
		errs = append(errs, fmt.Errorf("game.time_limit must be positive, got %s", c.Game.TimeLimit.Duration))
	}
	if c.Game.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("game.tick_rate must be positive, got %d", c.Game.TickRate))
	}
	if c.Search.IDSTimeLimit.Duration <= 0 {
		errs = append(errs, fmt.Errorf("search.ids_time_limit must be positive, got %s", c.Search.IDSTimeLimit.Duration))
	}
	if c.Search.RandomMaxSteps <= 0 {
		errs = append(errs, fmt.Errorf("search.random_max_steps must be positive, got %d", c.Search.RandomMaxSteps))
	}
	if c.Server.MaxCells <= 0 {
		errs = append(errs, fmt.Errorf("server.max_cells must be positive, got %d", c.Server.MaxCells))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
	}
	return nil
}

// Bounds returns the configured grid size.
func (c Config) Bounds() grid.Bounds {
	return grid.Bounds{Rows: c.Grid.Rows, Cols: c.Grid.Cols}
}

// SearchOptions turns the budgets into search options.
func (c Config) SearchOptions() []search.Option {
	return []search.Option{
		search.WithTimeLimit(c.Search.IDSTimeLimit.Duration),
		search.WithMaxSteps(c.Search.RandomMaxSteps),
	}
}
