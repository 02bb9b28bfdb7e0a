package game

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"

	"github.com/katalvlaran/gridpath/grid"
)

// ErrUnknownLevel is returned by ParseLevel for a name outside level0..level3.
var ErrUnknownLevel = errors.New("game: unknown level")

// Level is a named obstacle density.
type Level struct {
	Name    string
	Density int // percent of grid cells covered by obstacles
}

var levels = []Level{
	{Name: "level0", Density: 0},
	{Name: "level1", Density: 5},
	{Name: "level2", Density: 10},
	{Name: "level3", Density: 15},
}

// Levels returns the known levels from easiest to hardest.
func Levels() []Level {
	return append([]Level(nil), levels...)
}

// ParseLevel resolves a case-insensitive level name.
func ParseLevel(name string) (Level, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, l := range levels {
		if l.Name == key {
			return l, nil
		}
	}
	return Level{}, fmt.Errorf("%w: %q (choose from level0, level1, level2, level3)", ErrUnknownLevel, name)
}

// ObstacleCount returns how many obstacles the level places on an area-cell grid.
func (l Level) ObstacleCount(area int) int {
	return area * l.Density / 100
}

// Scatter places the level's share of obstacles on random cells of b, never on
// a cell listed in keep. The count is capped so that every kept cell and at
// least one more stay free.
func Scatter(b grid.Bounds, l Level, rng *rand.Rand, keep ...grid.Position) grid.ObstacleSet {
	kept := grid.NewObstacleSet(keep...)
	want := min(l.ObstacleCount(b.Area()), b.Area()-len(kept)-1)

	out := make(grid.ObstacleSet, max(want, 0))
	for len(out) < want {
		p := grid.Position{Row: rng.Intn(b.Rows), Col: rng.Intn(b.Cols)}
		if !kept.Has(p) {
			out.Add(p)
		}
	}
	return out
}
