package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/game"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/search"
)

type playOpts struct {
	configPath string
	seed       int64
	timeLimit  time.Duration
	tickRate   int
	headless   bool
}

func (c *CLI) playCommand() *cobra.Command {
	var opts playOpts

	cmd := &cobra.Command{
		Use:   "play <level> <strategy>",
		Short: "Watch a strategy steer the snake to food",
		Long: `Play runs the snake game: a strategy plans a path from the snake to the food,
the snake follows it one cell per tick, and each food eaten scores a point.

Levels level0..level3 cover 0, 5, 10 and 15 percent of the grid with obstacles.`,
		Example: `  gridpath play level2 a*
  gridpath play level3 random --seed 7 --headless`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			s, err := opts.settings(cmd, cfg, args[0], args[1])
			if err != nil {
				return err
			}
			if opts.headless {
				return c.runHeadless(cmd.Context(), cmd.OutOrStdout(), s)
			}
			return c.runInteractive(cmd.Context(), cmd.OutOrStdout(), s)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "board seed (0 = config, else random)")
	cmd.Flags().DurationVar(&opts.timeLimit, "time-limit", 0, "game length (default from config)")
	cmd.Flags().IntVar(&opts.tickRate, "tick-rate", 0, "moves per second (default from config)")
	cmd.Flags().BoolVar(&opts.headless, "headless", false, "play without a terminal UI and print the score")

	return cmd
}

// settings merges the arguments and flags over cfg.
func (o playOpts) settings(cmd *cobra.Command, cfg config.Config, level, strategy string) (game.Settings, error) {
	l, err := game.ParseLevel(level)
	if err != nil {
		return game.Settings{}, err
	}
	k, err := search.Parse(strategy)
	if err != nil {
		return game.Settings{}, err
	}

	s := game.Settings{
		Bounds:        cfg.Bounds(),
		Level:         l,
		Strategy:      k,
		TimeLimit:     cfg.Game.TimeLimit.Duration,
		TickRate:      cfg.Game.TickRate,
		Seed:          cfg.Game.Seed,
		SearchOptions: cfg.SearchOptions(),
	}
	if cmd.Flags().Changed("seed") {
		s.Seed = o.seed
	}
	if cmd.Flags().Changed("time-limit") {
		s.TimeLimit = o.timeLimit
	}
	if cmd.Flags().Changed("tick-rate") {
		s.TickRate = o.tickRate
	}
	return s, nil
}

func (c *CLI) runHeadless(ctx context.Context, w io.Writer, s game.Settings) error {
	s.Logger = c.Logger
	g, err := game.New(s)
	if err != nil {
		return err
	}
	prog := newProgress(c.Logger)
	g.Run(ctx)
	prog.done(fmt.Sprintf("Played %d ticks", g.Ticks()))
	printSummary(w, g)
	return ctx.Err()
}

func (c *CLI) runInteractive(ctx context.Context, w io.Writer, s game.Settings) error {
	// the terminal belongs to the UI while the game runs
	g, err := game.New(s)
	if err != nil {
		return err
	}
	m := newPlayModel(g)
	if _, err := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen()).Run(); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	c.Logger.Info("game over", "id", g.ID, "score", g.Score, "reason", g.Reason())
	printSummary(w, g)
	return nil
}

func printSummary(w io.Writer, g *game.Game) {
	searches, failures := g.Stats()
	printSuccess(w, "%s scored %s", g.Settings().Strategy.Name(), styleNumber.Render(fmt.Sprint(g.Score)))
	printKeyValue(w, "level", g.Settings().Level.Name)
	printKeyValue(w, "ended", g.Reason().String())
	printKeyValue(w, "ticks", fmt.Sprint(g.Ticks()))
	printKeyValue(w, "searches", fmt.Sprintf("%d (%d empty)", searches, failures))
}

// =============================================================================
// playModel - Interactive snake game
// =============================================================================

type tickMsg time.Time

// playModel is the bubbletea model driving one game at its tick rate.
type playModel struct {
	game   *game.Game
	every  time.Duration
	width  int
	height int
}

func newPlayModel(g *game.Game) playModel {
	return playModel{game: g, every: time.Second / time.Duration(g.Settings().TickRate)}
}

func (m playModel) tick() tea.Cmd {
	return tea.Tick(m.every, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m playModel) Init() tea.Cmd {
	return m.tick()
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.game.Stop()
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case tickMsg:
		m.game.Tick()
		if m.game.Over() {
			return m, tea.Quit
		}
		return m, m.tick()
	}
	return m, nil
}

func (m playModel) View() string {
	g := m.game
	board := render.Board{
		Bounds:    g.Settings().Bounds,
		Obstacles: g.Obstacles,
		Start:     g.Snake,
		Goal:      g.Food,
		Path:      g.Path(),
	}

	var b strings.Builder
	b.WriteString(styleTitle.Render(fmt.Sprintf("Snake · %s · %s", g.Settings().Level.Name, g.Settings().Strategy.Name())))
	b.WriteString("\n\n")
	b.WriteString(render.Text(board, render.SnakeGlyphs))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Score: %s   Time: %s",
		styleNumber.Render(fmt.Sprint(g.Score)),
		styleValue.Render(g.TimeLeft().Round(time.Second).String())))
	b.WriteString("\n")
	b.WriteString(styleDim.Render("q quit"))

	if m.width == 0 {
		return b.String()
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}
