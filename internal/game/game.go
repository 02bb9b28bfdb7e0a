// Package game is the headless snake-game driver around the search strategies.
//
// A single-cell snake chases food across a grid with randomly placed
// obstacles. Whenever its planned path is empty the game asks the configured
// strategy for a new one; if that fails it relocates the food and asks once
// more. Each tick consumes one move. Leaving the grid or hitting an obstacle
// ends the game, eating food scores a point, and the game stops when its tick
// budget (time limit × tick rate) is spent.
//
// The game never replans a path that is still being followed, and all
// randomness flows from one seeded source, so a fixed seed replays the same
// game for every deterministic strategy.
package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/search"
)

// ErrInvalidSettings is returned by New for unusable settings.
var ErrInvalidSettings = errors.New("game: invalid settings")

// EndReason records why a game stopped.
type EndReason uint8

const (
	// Running means the game has not ended.
	Running EndReason = iota
	// TimeUp means the tick budget was spent.
	TimeUp
	// Crashed means the snake left the grid or hit an obstacle.
	Crashed
	// Quit means the player stopped the game.
	Quit
)

func (r EndReason) String() string {
	switch r {
	case Running:
		return "running"
	case TimeUp:
		return "time up"
	case Crashed:
		return "crashed"
	case Quit:
		return "quit"
	}
	return fmt.Sprintf("EndReason(%d)", uint8(r))
}

// Settings configures a game.
type Settings struct {
	Bounds        grid.Bounds
	Level         Level
	Strategy      search.Strategy
	TimeLimit     time.Duration
	TickRate      int // ticks per second
	Seed          int64
	SearchOptions []search.Option
	Logger        *log.Logger
}

// Event describes what happened during one tick.
type Event struct {
	Searched  bool // a new path was requested
	Relocated bool // the search failed and the food was moved
	Moved     bool
	Ate       bool
}

// Game is the mutable state of one session. It is not safe for concurrent use.
type Game struct {
	ID        string
	Snake     grid.Position
	Food      grid.Position
	Obstacles grid.ObstacleSet
	Score     int

	settings Settings
	rng      *rand.Rand
	path     grid.Path
	ticks    int
	maxTicks int
	reason   EndReason
	searches int
	failures int
}

// New validates s and lays out the board: the snake at the centre, the food
// on a random free cell, then obstacles covering the level's share of cells,
// never on the snake or the food.
func New(s Settings) (*Game, error) {
	if err := s.Bounds.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	if s.Bounds.Area() < 2 {
		return nil, fmt.Errorf("%w: grid needs at least two cells", ErrInvalidSettings)
	}
	if s.Strategy == nil {
		return nil, fmt.Errorf("%w: no strategy", ErrInvalidSettings)
	}
	if s.TimeLimit <= 0 || s.TickRate <= 0 {
		return nil, fmt.Errorf("%w: time limit and tick rate must be positive", ErrInvalidSettings)
	}

	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g := &Game{
		ID:       uuid.NewString(),
		Snake:    s.Bounds.Center(),
		settings: s,
		rng:      rand.New(rand.NewSource(seed)),
		maxTicks: int(s.TimeLimit.Seconds() * float64(s.TickRate)),
	}
	g.Food = g.freeCell()
	g.Obstacles = Scatter(s.Bounds, s.Level, g.rng, g.Snake, g.Food)

	g.logger().Debug("game started", "id", g.ID, "level", s.Level.Name, "strategy", s.Strategy.Name(),
		"obstacles", len(g.Obstacles), "seed", seed)
	return g, nil
}

// Tick advances the game by one step and reports what happened.
func (g *Game) Tick() Event {
	var ev Event
	if g.Over() {
		return ev
	}
	if g.ticks >= g.maxTicks {
		g.end(TimeUp)
		return ev
	}
	g.ticks++

	if len(g.path) == 0 {
		ev.Searched = true
		g.path = g.plan()
		if len(g.path) == 0 {
			ev.Relocated = true
			g.Food = g.freeCell()
			g.path = g.plan()
		}
	}

	if len(g.path) > 0 {
		g.Snake = grid.Step(g.Snake, g.path[0])
		g.path = g.path[1:]
		ev.Moved = true
	}

	if !grid.Passable(g.Snake, g.settings.Bounds, g.Obstacles) {
		g.end(Crashed)
		return ev
	}

	if g.Snake == g.Food {
		ev.Ate = true
		g.Score++
		g.Food = g.freeCell()
		g.path = nil
	}
	return ev
}

// Run ticks as fast as possible until the game ends or ctx is done, and
// returns the final score. A canceled context ends the game as Quit.
func (g *Game) Run(ctx context.Context) int {
	for !g.Over() {
		if ctx.Err() != nil {
			g.Stop()
			break
		}
		g.Tick()
	}
	return g.Score
}

// Stop ends the game on behalf of the player.
func (g *Game) Stop() {
	if !g.Over() {
		g.end(Quit)
	}
}

// Over reports whether the game has ended.
func (g *Game) Over() bool { return g.reason != Running }

// Reason reports why the game ended, or Running.
func (g *Game) Reason() EndReason { return g.reason }

// Ticks returns the number of ticks played.
func (g *Game) Ticks() int { return g.ticks }

// TimeLeft returns the remaining game time.
func (g *Game) TimeLeft() time.Duration {
	left := g.maxTicks - g.ticks
	return time.Duration(left) * time.Second / time.Duration(g.settings.TickRate)
}

// Path returns the moves still planned.
func (g *Game) Path() grid.Path { return g.path }

// Stats returns how many searches ran and how many came back empty.
func (g *Game) Stats() (searches, failures int) { return g.searches, g.failures }

// Settings returns the settings the game was created with.
func (g *Game) Settings() Settings { return g.settings }

// plan asks the strategy for a path from the snake to the food.
// Any failure, budget or not, yields an empty path.
func (g *Game) plan() grid.Path {
	g.searches++
	p := search.Problem{Start: g.Snake, Goal: g.Food, Obstacles: g.Obstacles, Bounds: g.settings.Bounds}

	opts := append([]search.Option{search.WithRand(g.rng)}, g.settings.SearchOptions...)
	if g.settings.Logger != nil {
		opts = append(opts, search.WithLogger(g.settings.Logger))
	}
	path, err := g.settings.Strategy.Search(p, opts...)
	if err != nil {
		g.failures++
		g.logger().Debug("no path", "from", g.Snake, "to", g.Food, "err", err)
		return nil
	}
	return path
}

func (g *Game) end(r EndReason) {
	g.reason = r
	g.logger().Info("game over", "id", g.ID, "score", g.Score, "reason", r, "ticks", g.ticks)
}

func (g *Game) randomCell() grid.Position {
	b := g.settings.Bounds
	return grid.Position{Row: g.rng.Intn(b.Rows), Col: g.rng.Intn(b.Cols)}
}

// freeCell draws random cells until one is neither blocked nor under the snake.
func (g *Game) freeCell() grid.Position {
	for {
		p := g.randomCell()
		if !g.Obstacles.Has(p) && p != g.Snake {
			return p
		}
	}
}

func (g *Game) logger() *log.Logger {
	if g.settings.Logger != nil {
		return g.settings.Logger
	}
	return discard
}

var discard = log.New(io.Discard)
