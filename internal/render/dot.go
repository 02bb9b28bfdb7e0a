package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
)

var cellFill = [...]string{
	cellEmpty:    "white",
	cellExplored: "lightblue",
	cellPath:     "gold",
	cellObstacle: "gray25",
	cellGoal:     "tomato",
	cellStart:    "palegreen",
}

var cellLabel = [...]string{
	cellGoal:  "G",
	cellStart: "S",
}

// DOT converts b to Graphviz source. The grid is a single plaintext node
// whose HTML-like label is a table with one cell per grid square.
func DOT(b Board) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, fontname=\"Helvetica\", fontsize=10];\n")
	buf.WriteString("\n")
	buf.WriteString("  board [label=<\n")
	buf.WriteString("    <table border=\"0\" cellborder=\"1\" cellspacing=\"0\" cellpadding=\"0\">\n")
	for _, row := range layout(b) {
		buf.WriteString("      <tr>")
		for _, kind := range row {
			fmt.Fprintf(&buf, "<td width=\"16\" height=\"16\" fixedsize=\"true\" bgcolor=%q>%s</td>", cellFill[kind], cellLabel[kind])
		}
		buf.WriteString("</tr>\n")
	}
	buf.WriteString("    </table>\n")
	buf.WriteString("  >];\n")
	buf.WriteString("}\n")
	return buf.String()
}

// SVG renders DOT source to SVG with the embedded Graphviz.
func SVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
