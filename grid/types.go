package grid

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for grid operations.
var (
	// ErrInvalidBounds indicates a grid with a non-positive dimension.
	ErrInvalidBounds = errors.New("grid: rows and cols must be positive")
	// ErrOutOfBounds indicates a path step that leaves the grid.
	ErrOutOfBounds = errors.New("grid: step leaves the grid")
	// ErrBlocked indicates a path step onto an obstacle.
	ErrBlocked = errors.New("grid: step enters an obstacle")
	// ErrWrongDestination indicates a path that does not end on the expected cell.
	ErrWrongDestination = errors.New("grid: path ends on the wrong cell")
	// ErrBadDirection indicates text that does not name a direction.
	ErrBadDirection = errors.New("grid: unknown direction")
	// ErrBadPosition indicates text that is not a "row,col" pair.
	ErrBadPosition = errors.New("grid: malformed position")
)

// Position identifies a grid cell by row and column.
type Position struct {
	Row, Col int
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four unit moves.
type Direction uint8

const (
	// Up moves one row towards row 0.
	Up Direction = iota
	// Down moves one row away from row 0.
	Down
	// Left moves one column towards column 0.
	Left
	// Right moves one column away from column 0.
	Right
)

// Directions is the fixed expansion order used by every strategy.
var Directions = [...]Direction{Up, Down, Left, Right}

// deltas is indexed by Direction.
var deltas = [...]Position{
	Up:    {Row: -1, Col: 0},
	Down:  {Row: 1, Col: 0},
	Left:  {Row: 0, Col: -1},
	Right: {Row: 0, Col: 1},
}

var directionNames = [...]string{Up: "up", Down: "down", Left: "left", Right: "right"}

// Delta returns the (row, col) offset of d.
func (d Direction) Delta() Position {
	return deltas[d]
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return int(d) < len(deltas)
}

// String returns the lower-case name of d.
func (d Direction) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
	return directionNames[d]
}

// Letter returns the single upper-case letter used in compact path strings,
// or '?' for an invalid direction.
func (d Direction) Letter() byte {
	if !d.Valid() {
		return '?'
	}
	return "UDLR"[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBadDirection, uint8(d))
	}
	return []byte(directionNames[d]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the full
// name or the single letter, in any case.
func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := ParseDirection(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDirection converts "up", "U", "Down", ... into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return Up, nil
	case "down", "d":
		return Down, nil
	case "left", "l":
		return Left, nil
	case "right", "r":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadDirection, s)
}

// Bounds is the size of a rectangular grid.
type Bounds struct {
	Rows, Cols int
}

// Validate returns ErrInvalidBounds unless both dimensions are positive.
func (b Bounds) Validate() error {
	if b.Rows <= 0 || b.Cols <= 0 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidBounds, b.Rows, b.Cols)
	}
	return nil
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Position) bool {
	return InBounds(p, b.Rows, b.Cols)
}

// Area returns the number of cells.
func (b Bounds) Area() int {
	return b.Rows * b.Cols
}

// Center returns the cell at (Rows/2, Cols/2).
func (b Bounds) Center() Position {
	return Position{Row: b.Rows / 2, Col: b.Cols / 2}
}

// ObstacleSet is a set of blocked cells. Strategies only read it.
type ObstacleSet map[Position]struct{}

// NewObstacleSet builds a set from the given cells.
func NewObstacleSet(cells ...Position) ObstacleSet {
	s := make(ObstacleSet, len(cells))
	for _, c := range cells {
		s[c] = struct{}{}
	}
	return s
}

// Has reports whether p is blocked. A nil set blocks nothing.
func (s ObstacleSet) Has(p Position) bool {
	_, ok := s[p]
	return ok
}

// Add blocks p.
func (s ObstacleSet) Add(p Position) {
	s[p] = struct{}{}
}

// Sorted returns the blocked cells in row-major order.
func (s ObstacleSet) Sorted() []Position {
	out := make([]Position, 0, len(s))
	for p := range s {
		out = append(out, p)
	}
	sortPositions(out)
	return out
}

// Path is a sequence of moves taken from a start cell.
type Path []Direction
