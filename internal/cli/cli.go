// Package cli implements the gridpath command-line interface.
//
// # Commands
//
//   - solve: run one strategy, or all of them, on a single problem
//   - play: the snake game driven by a strategy
//   - serve: the HTTP search API
//   - strategies: list the registry
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging through the
// shared charmbracelet/log logger.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/config"
)

const appName = "gridpath"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// version is set through ldflags at build time.
var version = "dev"

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI logging to w at level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Grid pathfinding strategies and the snake game that exercises them",
		Version:      version,
		SilenceUsage: true,
	}

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.playCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.strategiesCommand())

	return root
}

// loadConfig reads path over the defaults and validates the result.
func loadConfig(path string) (config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	return cfg, cfg.Validate()
}
