package render_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/grid"
	"github.com/katalvlaran/gridpath/internal/render"
)

func corridor() render.Board {
	return render.Board{
		Bounds:    grid.Bounds{Rows: 3, Cols: 3},
		Obstacles: grid.NewObstacleSet(grid.Position{Row: 0, Col: 1}, grid.Position{Row: 1, Col: 1}),
		Start:     grid.Position{Row: 0, Col: 0},
		Goal:      grid.Position{Row: 0, Col: 2},
		Path:      grid.Path{grid.Down, grid.Down, grid.Right, grid.Right, grid.Up, grid.Up},
	}
}

func TestText(t *testing.T) {
	out := render.Text(corridor(), render.DefaultGlyphs)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "S")
	assert.Contains(t, lines[0], "G")
	assert.Equal(t, 1, strings.Count(lines[0], "█"))
	assert.Equal(t, 1, strings.Count(lines[1], "█"))
	assert.Equal(t, 3, strings.Count(lines[2], "●"))
	assert.Equal(t, 2, strings.Count(lines[1], "●"))
}

func TestText_PrecedenceAndClipping(t *testing.T) {
	b := render.Board{
		Bounds:   grid.Bounds{Rows: 1, Cols: 3},
		Start:    grid.Position{Row: 0, Col: 0},
		Goal:     grid.Position{Row: 0, Col: 2},
		Path:     grid.Path{grid.Up},
		Explored: []grid.Position{{Row: 0, Col: 0}, {Row: 0, Col: 1}, {Row: 5, Col: 5}},
	}
	out := render.Text(b, render.SnakeGlyphs)
	assert.Contains(t, out, "@")
	assert.Contains(t, out, "◆")
	assert.Contains(t, out, "∘")
	assert.NotContains(t, out, "\n")
}

func TestDOT(t *testing.T) {
	dot := render.DOT(corridor())
	assert.True(t, strings.HasPrefix(dot, "digraph G {"))
	assert.Equal(t, 3, strings.Count(dot, "<tr>"))
	assert.Equal(t, 9, strings.Count(dot, "<td "))
	assert.Equal(t, 2, strings.Count(dot, `bgcolor="gray25"`))
	assert.Equal(t, 5, strings.Count(dot, `bgcolor="gold"`))
	assert.Contains(t, dot, `bgcolor="palegreen">S</td>`)
	assert.Contains(t, dot, `bgcolor="tomato">G</td>`)
}

func TestSVG(t *testing.T) {
	svg, err := render.SVG(context.Background(), render.DOT(corridor()))
	require.NoError(t, err)
	assert.Contains(t, string(svg), "<svg")

	_, err = render.SVG(context.Background(), "digraph {")
	assert.Error(t, err)
}
