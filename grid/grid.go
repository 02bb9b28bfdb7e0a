package grid

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// InBounds reports whether pos lies within a rows×cols grid.
// Complexity: O(1).
func InBounds(pos Position, rows, cols int) bool {
	return pos.Row >= 0 && pos.Row < rows && pos.Col >= 0 && pos.Col < cols
}

// Step returns the cell reached from pos by moving once in direction d.
// It does not check bounds.
// Complexity: O(1).
func Step(pos Position, d Direction) Position {
	delta := d.Delta()
	return Position{Row: pos.Row + delta.Row, Col: pos.Col + delta.Col}
}

// Manhattan returns |a.Row-b.Row| + |a.Col-b.Col|.
// Complexity: O(1).
func Manhattan(a, b Position) int {
	return abs(a.Row-b.Row) + abs(a.Col-b.Col)
}

// Passable reports whether pos is inside b and not blocked.
func Passable(pos Position, b Bounds, obstacles ObstacleSet) bool {
	return b.Contains(pos) && !obstacles.Has(pos)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Apply returns the cell reached by taking every move of p from start.
// Complexity: O(len(p)).
func (p Path) Apply(start Position) Position {
	cur := start
	for _, d := range p {
		cur = Step(cur, d)
	}
	return cur
}

// Cells returns every cell visited after start, in order.
func (p Path) Cells(start Position) []Position {
	out := make([]Position, 0, len(p))
	cur := start
	for _, d := range p {
		cur = Step(cur, d)
		out = append(out, cur)
	}
	return out
}

// Walk replays p from start and checks that every step stays inside b,
// avoids obstacles, and that the final cell equals goal.
// Returns ErrOutOfBounds or ErrBlocked wrapped with the failing step index,
// or ErrWrongDestination.
// Complexity: O(len(p)).
func (p Path) Walk(start, goal Position, b Bounds, obstacles ObstacleSet) error {
	cur := start
	for i, d := range p {
		cur = Step(cur, d)
		if !b.Contains(cur) {
			return fmt.Errorf("%w: step %d (%s) to %s", ErrOutOfBounds, i, d, cur)
		}
		if obstacles.Has(cur) {
			return fmt.Errorf("%w: step %d (%s) to %s", ErrBlocked, i, d, cur)
		}
	}
	if cur != goal {
		return fmt.Errorf("%w: got %s, want %s", ErrWrongDestination, cur, goal)
	}
	return nil
}

// String renders p compactly, e.g. "DDRR". An empty path renders as "".
func (p Path) String() string {
	var b strings.Builder
	b.Grow(len(p))
	for _, d := range p {
		b.WriteByte(d.Letter())
	}
	return b.String()
}

// ParsePath parses the compact form produced by Path.String.
func ParsePath(s string) (Path, error) {
	out := make(Path, 0, len(s))
	for _, r := range s {
		d, err := ParseDirection(string(r))
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

// ParsePosition parses "row,col".
func ParsePosition(s string) (Position, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("%w: %q", ErrBadPosition, s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q: %v", ErrBadPosition, s, err)
	}
	c, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("%w: %q: %v", ErrBadPosition, s, err)
	}
	return Position{Row: r, Col: c}, nil
}

// ParseObstacles parses a ';'-separated list of "row,col" pairs.
// Empty input yields an empty set.
func ParseObstacles(s string) (ObstacleSet, error) {
	set := make(ObstacleSet)
	for _, part := range strings.Split(s, ";") {
		if strings.TrimSpace(part) == "" {
			continue
		}
		p, err := ParsePosition(part)
		if err != nil {
			return nil, err
		}
		set.Add(p)
	}
	return set, nil
}

func sortPositions(ps []Position) {
	slices.SortFunc(ps, func(a, b Position) int {
		if a.Row != b.Row {
			return a.Row - b.Row
		}
		return a.Col - b.Col
	})
}
