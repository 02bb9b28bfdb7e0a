package search

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/gridpath/grid"
)

// Sentinel errors returned by the strategies.
var (
	// ErrNotFound is returned when the search space is exhausted without reaching the goal.
	ErrNotFound = errors.New("search: goal not reachable")

	// ErrBudgetExceeded is returned when a time or step budget runs out
	// before the search could decide.
	ErrBudgetExceeded = errors.New("search: budget exceeded")

	// ErrUnknownStrategy is returned by Parse for an unrecognized identifier.
	ErrUnknownStrategy = errors.New("search: unknown strategy")

	// ErrInvalidProblem is returned when bounds, start or goal are unusable.
	ErrInvalidProblem = errors.New("search: invalid problem")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("search: invalid option supplied")
)

const (
	// DefaultTimeLimit is the wall-clock budget of IDS.
	DefaultTimeLimit = 5 * time.Second

	// DefaultMaxSteps is the iteration cap of the random walk.
	DefaultMaxSteps = 1000

	// defaultSeed replaces a zero seed passed to WithSeed.
	defaultSeed int64 = 1
)

// Problem bundles the inputs every strategy receives.
type Problem struct {
	Start     grid.Position
	Goal      grid.Position
	Obstacles grid.ObstacleSet
	Bounds    grid.Bounds
}

// NewProblem is a convenience constructor mirroring the positional contract
// (start, goal, obstacles, rows, cols).
func NewProblem(start, goal grid.Position, obstacles grid.ObstacleSet, rows, cols int) Problem {
	return Problem{
		Start:     start,
		Goal:      goal,
		Obstacles: obstacles,
		Bounds:    grid.Bounds{Rows: rows, Cols: cols},
	}
}

// Validate checks the bounds and that start and goal are open in-bounds cells.
func (p Problem) Validate() error {
	if err := p.Bounds.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidProblem, err)
	}
	if !grid.Passable(p.Start, p.Bounds, p.Obstacles) {
		return fmt.Errorf("%w: start %s is outside the grid or blocked", ErrInvalidProblem, p.Start)
	}
	if !grid.Passable(p.Goal, p.Bounds, p.Obstacles) {
		return fmt.Errorf("%w: goal %s is outside the grid or blocked", ErrInvalidProblem, p.Goal)
	}
	return nil
}

// Strategy is the single dispatch contract implemented by every Kind.
type Strategy interface {
	// Name returns the registry identifier.
	Name() string
	// Search returns the moves from p.Start to p.Goal.
	Search(p Problem, opts ...Option) (grid.Path, error)
}

// Func is the shape shared by BFS, DFS, IDS, UCS, Greedy, AStar and RandomWalk.
type Func func(p Problem, opts ...Option) (grid.Path, error)

// Option configures a search via functional arguments.
// Invalid values are recorded and surface as ErrOptionViolation when the search runs.
type Option func(*Options)

// Options holds parameters and callbacks for a single search call.
type Options struct {
	// Ctx allows cancellation; checked once per expanded node.
	Ctx context.Context

	// Logger receives one timing line per call. Nil disables it.
	Logger *log.Logger

	// OnExpand is called for every expanded cell with its depth from the start.
	OnExpand func(pos grid.Position, depth int)

	// TimeLimit bounds IDS wall-clock time.
	TimeLimit time.Duration

	// MaxSteps bounds the random walk.
	MaxSteps int

	// Rand drives the random walk. Nil means a clock-seeded source.
	Rand *rand.Rand

	err error
}

// DefaultOptions returns Options with:
//   - Context.Background()
//   - no logger, no-op OnExpand
//   - TimeLimit = DefaultTimeLimit, MaxSteps = DefaultMaxSteps
//   - clock-seeded randomness.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnExpand:  func(grid.Position, int) {},
		TimeLimit: DefaultTimeLimit,
		MaxSteps:  DefaultMaxSteps,
	}
}

// WithContext sets a context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithLogger routes the diagnostic timing line to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnExpand registers a callback run on every node expansion.
func WithOnExpand(fn func(pos grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithTimeLimit overrides the IDS wall-clock budget. d must be positive.
func WithTimeLimit(d time.Duration) Option {
	return func(o *Options) {
		if d <= 0 {
			o.err = fmt.Errorf("%w: TimeLimit must be positive (%s)", ErrOptionViolation, d)
			return
		}
		o.TimeLimit = d
	}
}

// WithMaxSteps overrides the random walk iteration cap. n must be positive.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: MaxSteps must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxSteps = n
	}
}

// WithSeed makes the random walk reproducible. Seed 0 maps to a fixed default.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		if seed == 0 {
			seed = defaultSeed
		}
		o.Rand = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies the random source directly. It must not be shared
// across goroutines.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}
