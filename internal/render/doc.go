// Package render draws a search problem and its result.
//
// # Overview
//
// A [Board] collects what is worth showing: the grid bounds, the obstacles,
// the start and goal cells, the path found and the cells a strategy expanded.
// It can be drawn three ways:
//
//   - [Text] returns a lipgloss-styled character grid for terminals.
//   - [DOT] returns Graphviz source that draws the grid as an HTML table.
//   - [SVG] renders that DOT in-process through go-graphviz.
//
// # Usage
//
//	b := render.Board{Bounds: p.Bounds, Obstacles: p.Obstacles, Start: p.Start, Goal: p.Goal, Path: path}
//	fmt.Println(render.Text(b, render.DefaultGlyphs))
//	svg, err := render.SVG(ctx, render.DOT(b))
//
// Cells are drawn with one precedence, highest first: start, goal, obstacle,
// path, explored, empty.
//
// # Dependencies
//
// SVG output uses [github.com/goccy/go-graphviz], which embeds Graphviz as
// WebAssembly, so no system Graphviz installation is needed.
package render
