package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/config"
	"github.com/katalvlaran/gridpath/internal/game"
	"github.com/katalvlaran/gridpath/internal/render"
	"github.com/katalvlaran/gridpath/search"
)

type solveOpts struct {
	configPath string
	rows, cols int
	start      string
	goal       string
	obstacles  string
	level      string
	strategy   string
	seed       int64
	all        bool
	svg        string
}

// outcome is the result of one strategy on the problem.
type outcome struct {
	kind     search.Kind
	path     grid.Path
	err      error
	elapsed  time.Duration
	explored []grid.Position
}

func (c *CLI) solveCommand() *cobra.Command {
	var opts solveOpts

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Find a path on a grid with one or every strategy",
		Long: `Solve builds a grid problem from flags (or a config file) and runs a strategy on it.

Obstacles come from --obstacles, or are scattered randomly at the density of
--level (or the configured game level).
Start defaults to the top-left cell and goal to the bottom-right cell.`,
		Example: `  gridpath solve --rows 10 --cols 10 --level level3 --seed 4 --strategy ids
  gridpath solve --rows 3 --cols 3 --obstacles "0,1;1,1" --goal 0,2 --all
  gridpath solve --level level2 --svg board.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(opts.configPath)
			if err != nil {
				return err
			}
			p, kinds, err := opts.resolve(cmd, cfg)
			if err != nil {
				return err
			}
			if opts.svg != "" && len(kinds) > 1 {
				return errors.New("--svg needs a single strategy, not --all")
			}
			return c.runSolve(cmd.Context(), cmd.OutOrStdout(), cfg, p, kinds, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "TOML config file")
	cmd.Flags().IntVar(&opts.rows, "rows", 0, "grid rows (default from config)")
	cmd.Flags().IntVar(&opts.cols, "cols", 0, "grid columns (default from config)")
	cmd.Flags().StringVar(&opts.start, "start", "", "start cell as row,col (default 0,0)")
	cmd.Flags().StringVar(&opts.goal, "goal", "", "goal cell as row,col (default bottom-right)")
	cmd.Flags().StringVar(&opts.obstacles, "obstacles", "", `blocked cells as "r,c;r,c"`)
	cmd.Flags().StringVar(&opts.level, "level", "", "scatter obstacles at a level's density: level0..level3")
	cmd.Flags().StringVarP(&opts.strategy, "strategy", "s", "", "strategy: bfs, dfs, ucs, ids, a*, random, greedy_bfs")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "seed for obstacles and the random walk (0 = config)")
	cmd.Flags().BoolVar(&opts.all, "all", false, "compare every strategy")
	cmd.Flags().StringVar(&opts.svg, "svg", "", "also write the board as SVG to this file")

	return cmd
}

// resolve merges flags over cfg and builds the problem. Every input is
// checked here so that nothing invalid reaches a strategy.
func (o solveOpts) resolve(cmd *cobra.Command, cfg config.Config) (search.Problem, []search.Kind, error) {
	b := cfg.Bounds()
	if cmd.Flags().Changed("rows") {
		b.Rows = o.rows
	}
	if cmd.Flags().Changed("cols") {
		b.Cols = o.cols
	}
	if err := b.Validate(); err != nil {
		return search.Problem{}, nil, err
	}

	start := grid.Position{}
	goal := grid.Position{Row: b.Rows - 1, Col: b.Cols - 1}
	var err error
	if o.start != "" {
		if start, err = grid.ParsePosition(o.start); err != nil {
			return search.Problem{}, nil, err
		}
	}
	if o.goal != "" {
		if goal, err = grid.ParsePosition(o.goal); err != nil {
			return search.Problem{}, nil, err
		}
	}

	var obstacles grid.ObstacleSet
	switch {
	case o.obstacles != "" && o.level != "":
		return search.Problem{}, nil, errors.New("--obstacles and --level are mutually exclusive")
	case o.obstacles != "":
		if obstacles, err = grid.ParseObstacles(o.obstacles); err != nil {
			return search.Problem{}, nil, err
		}
	default:
		name := cfg.Game.Level
		if o.level != "" {
			name = o.level
		}
		l, err := game.ParseLevel(name)
		if err != nil {
			return search.Problem{}, nil, err
		}
		obstacles = game.Scatter(b, l, rand.New(rand.NewSource(o.seedOr(cfg))), start, goal)
	}

	p := search.Problem{Start: start, Goal: goal, Obstacles: obstacles, Bounds: b}
	if err := p.Validate(); err != nil {
		return search.Problem{}, nil, err
	}

	if o.all {
		return p, search.Kinds(), nil
	}
	name := cfg.Game.Strategy
	if o.strategy != "" {
		name = o.strategy
	}
	k, err := search.Parse(name)
	if err != nil {
		return search.Problem{}, nil, err
	}
	return p, []search.Kind{k}, nil
}

// seedOr returns the flag seed, then the config seed, then 1.
func (o solveOpts) seedOr(cfg config.Config) int64 {
	switch {
	case o.seed != 0:
		return o.seed
	case cfg.Game.Seed != 0:
		return cfg.Game.Seed
	}
	return 1
}

func (c *CLI) runSolve(ctx context.Context, w io.Writer, cfg config.Config, p search.Problem, kinds []search.Kind, opts solveOpts) error {
	prog := newProgress(c.Logger)
	results := make([]outcome, 0, len(kinds))
	for _, k := range kinds {
		out := outcome{kind: k}
		searchOpts := append(cfg.SearchOptions(),
			search.WithContext(ctx),
			search.WithLogger(c.Logger),
			search.WithSeed(opts.seedOr(cfg)),
			search.WithOnExpand(func(pos grid.Position, _ int) { out.explored = append(out.explored, pos) }),
		)
		start := time.Now()
		out.path, out.err = k.Search(p, searchOpts...)
		out.elapsed = time.Since(start)
		if errors.Is(out.err, context.Canceled) {
			return out.err
		}
		results = append(results, out)
	}

	if len(results) > 1 {
		fmt.Fprintln(w, compareTable(results))
		prog.done(fmt.Sprintf("Compared %d strategies", len(results)))
		return nil
	}

	res := results[0]
	board := render.Board{
		Bounds:    p.Bounds,
		Obstacles: p.Obstacles,
		Start:     p.Start,
		Goal:      p.Goal,
		Path:      res.path,
		Explored:  res.explored,
	}
	fmt.Fprintln(w, styleTitle.Render(res.kind.Name()))
	fmt.Fprintln(w, render.Text(board, render.DefaultGlyphs))
	fmt.Fprintln(w)

	switch {
	case res.err == nil:
		printSuccess(w, "path of %s moves", styleNumber.Render(strconv.Itoa(len(res.path))))
		printKeyValue(w, "moves", res.path.String())
	case errors.Is(res.err, search.ErrNotFound), errors.Is(res.err, search.ErrBudgetExceeded):
		printWarning(w, "%v", res.err)
	default:
		printError(w, "%v", res.err)
		return res.err
	}
	printKeyValue(w, "expanded", strconv.Itoa(len(res.explored)))
	printKeyValue(w, "elapsed", res.elapsed.Round(time.Microsecond).String())

	if opts.svg != "" {
		svg, err := render.SVG(ctx, render.DOT(board))
		if err != nil {
			return err
		}
		if err := os.WriteFile(opts.svg, svg, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", opts.svg, err)
		}
		printFile(w, opts.svg)
	}
	return nil
}

// compareTable lays the results out one strategy per row.
func compareTable(results []outcome) string {
	rows := make([][]string, 0, len(results))
	for _, r := range results {
		status := "found"
		switch {
		case errors.Is(r.err, search.ErrNotFound):
			status = "not found"
		case errors.Is(r.err, search.ErrBudgetExceeded):
			status = "budget exceeded"
		case r.err != nil:
			status = "error"
		}
		moves := "-"
		if r.err == nil {
			moves = strconv.Itoa(len(r.path))
		}
		rows = append(rows, []string{
			r.kind.Name(),
			status,
			moves,
			strconv.Itoa(len(r.explored)),
			r.elapsed.Round(time.Microsecond).String(),
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styleDim).
		Headers("Strategy", "Outcome", "Moves", "Expanded", "Elapsed").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		String()
}
