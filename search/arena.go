package search

import (
	"math"

	"github.com/katalvlaran/gridpath/grid"
)

// node is one arena slot: how a cell was first (or most cheaply) reached.
type node struct {
	seen   bool
	closed bool
	cost   int            // moves from start along the recorded parent chain
	parent grid.Position  // predecessor cell
	via    grid.Direction // move taken from parent
}

// arena stores one node per touched cell, so memory follows the cells a
// search reaches rather than the grid size. It replaces path copies in
// frontier entries with parent links.
type arena struct {
	nodes map[grid.Position]*node
}

func newArena() *arena {
	return &arena{nodes: make(map[grid.Position]*node)}
}

// at returns the node for pos, creating an unseen one on first use.
func (a *arena) at(pos grid.Position) *node {
	n, ok := a.nodes[pos]
	if !ok {
		n = &node{}
		a.nodes[pos] = n
	}
	return n
}

// root marks the start cell.
func (a *arena) root(pos grid.Position) {
	n := a.at(pos)
	n.seen = true
	n.cost = 0
	n.parent = pos
}

// link records that pos is reached from parent by moving via, at the given cost.
func (a *arena) link(pos, parent grid.Position, via grid.Direction, cost int) {
	n := a.at(pos)
	n.seen = true
	n.cost = cost
	n.parent = parent
	n.via = via
}

// costOf returns the recorded cost of pos, or math.MaxInt if unseen.
func (a *arena) costOf(pos grid.Position) int {
	n := a.at(pos)
	if !n.seen {
		return math.MaxInt
	}
	return n.cost
}

// pathTo rebuilds the moves from start to goal by walking parent links backwards.
// Complexity: O(len(path)).
func (a *arena) pathTo(start, goal grid.Position) grid.Path {
	path := make(grid.Path, 0, a.at(goal).cost)
	for cur := goal; cur != start; {
		n := a.at(cur)
		path = append(path, n.via)
		cur = n.parent
	}
	// reverse to get start → goal
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
