package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/game"
	"github.com/katalvlaran/gridpath/search"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, grid.Bounds{Rows: 25, Cols: 25}, cfg.Bounds())
	assert.Equal(t, 30*time.Second, cfg.Game.TimeLimit.Duration)
	assert.Equal(t, search.DefaultTimeLimit, cfg.Search.IDSTimeLimit.Duration)
	assert.Len(t, cfg.SearchOptions(), 2)
}

func TestParse_Overrides(t *testing.T) {
	cfg, err := config.Parse(`
[grid]
rows = 10

[game]
level = "level3"
strategy = "IDS"
time_limit = "1m"
seed = 9

[search]
ids_time_limit = "250ms"
`)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10, cfg.Grid.Rows)
	assert.Equal(t, 25, cfg.Grid.Cols, "unset keys keep defaults")
	assert.Equal(t, "level3", cfg.Game.Level)
	assert.Equal(t, time.Minute, cfg.Game.TimeLimit.Duration)
	assert.Equal(t, int64(9), cfg.Game.Seed)
	assert.Equal(t, 250*time.Millisecond, cfg.Search.IDSTimeLimit.Duration)
	assert.Equal(t, 1000, cfg.Search.RandomMaxSteps)
}

func TestParse_BadDuration(t *testing.T) {
	_, err := config.Parse(`[game]
time_limit = "soon"`)
	assert.Error(t, err)
}

func TestValidate_CollectsErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Grid.Rows = 0
	cfg.Game.Level = "level9"
	cfg.Game.Strategy = "dijkstra"
	cfg.Game.TickRate = 0
	cfg.Server.MaxCells = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
	assert.ErrorIs(t, err, grid.ErrInvalidBounds)
	assert.ErrorIs(t, err, search.ErrUnknownStrategy)
	assert.ErrorIs(t, err, game.ErrUnknownLevel)
	assert.Contains(t, err.Error(), "tick_rate")
	assert.Contains(t, err.Error(), "max_cells")
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gridpath.toml")
	require.NoError(t, os.WriteFile(path, []byte("[server]\naddr = \"127.0.0.1:9999\"\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", cfg.Server.Addr)
	assert.Equal(t, 1<<20, cfg.Server.MaxCells, "unset keys keep defaults")

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	def, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), def)
}
