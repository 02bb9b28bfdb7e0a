package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/gridpath/grid"
)

// Board is everything a renderer draws.
type Board struct {
	Bounds    grid.Bounds
	Obstacles grid.ObstacleSet
	Start     grid.Position
	Goal      grid.Position
	Path      grid.Path
	Explored  []grid.Position
}

// cell is what occupies one square of the board.
type cell uint8

const (
	cellEmpty cell = iota
	cellExplored
	cellPath
	cellObstacle
	cellGoal
	cellStart
)

// layout resolves every square of b into a cell, row-major.
func layout(b Board) [][]cell {
	cells := make([][]cell, b.Bounds.Rows)
	for r := range cells {
		cells[r] = make([]cell, b.Bounds.Cols)
	}
	mark := func(p grid.Position, c cell) {
		if b.Bounds.Contains(p) && cells[p.Row][p.Col] < c {
			cells[p.Row][p.Col] = c
		}
	}
	for _, p := range b.Explored {
		mark(p, cellExplored)
	}
	for _, p := range b.Path.Cells(b.Start) {
		mark(p, cellPath)
	}
	for p := range b.Obstacles {
		mark(p, cellObstacle)
	}
	mark(b.Goal, cellGoal)
	mark(b.Start, cellStart)
	return cells
}

// =============================================================================
// Text
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")
	colorGreen  = lipgloss.Color("35")
	colorYellow = lipgloss.Color("220")
	colorRed    = lipgloss.Color("167")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var cellStyles = [...]lipgloss.Style{
	cellEmpty:    lipgloss.NewStyle().Foreground(colorDim),
	cellExplored: lipgloss.NewStyle().Foreground(colorGray),
	cellPath:     lipgloss.NewStyle().Foreground(colorCyan).Bold(true),
	cellObstacle: lipgloss.NewStyle().Foreground(colorYellow),
	cellGoal:     lipgloss.NewStyle().Foreground(colorRed).Bold(true),
	cellStart:    lipgloss.NewStyle().Foreground(colorGreen).Bold(true),
}

// Glyphs are the characters Text draws for each kind of cell.
type Glyphs struct {
	Empty, Explored, Path, Obstacle, Goal, Start string
}

var (
	// DefaultGlyphs draws a search result.
	DefaultGlyphs = Glyphs{Empty: "·", Explored: "∘", Path: "●", Obstacle: "█", Goal: "G", Start: "S"}

	// SnakeGlyphs draws the snake game, with the snake as start and the food as goal.
	SnakeGlyphs = Glyphs{Empty: "·", Explored: "∘", Path: "•", Obstacle: "█", Goal: "◆", Start: "@"}
)

func (g Glyphs) of(c cell) string {
	switch c {
	case cellExplored:
		return g.Explored
	case cellPath:
		return g.Path
	case cellObstacle:
		return g.Obstacle
	case cellGoal:
		return g.Goal
	case cellStart:
		return g.Start
	}
	return g.Empty
}

// Text draws b as one line per grid row, cells separated by a space.
func Text(b Board, g Glyphs) string {
	var sb strings.Builder
	for r, row := range layout(b) {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c, kind := range row {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(cellStyles[kind].Render(g.of(kind)))
		}
	}
	return sb.String()
}
