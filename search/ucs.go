package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// UCS runs uniform-cost search: a priority frontier ordered by accumulated cost,
// ties broken by insertion order.
//
// A neighbour is (re-)inserted whenever a strictly cheaper route to it is found;
// entries for cells already closed, or carrying a cost above the best known one,
// are skipped when popped. On this unit-cost grid UCS behaves like BFS and returns
// a minimal path, but nothing in the loop assumes unit costs.
//
// Returns ErrNotFound when the reachable region holds no goal.
//
// Complexity: O(V log V) time, O(V) memory, V = cells reached.
func UCS(p Problem, opts ...Option) (grid.Path, error) {
	return execute(KindUCS, p, opts, func(r *runner) (grid.Path, error) {
		return r.bestFirst(func(grid.Position) int { return 0 }, false)
	})
}

// bestFirst is the cost-propagating loop shared by UCS and A*. Entries are
// ordered by g + h(pos); preferDeep breaks priority ties towards larger g.
func (r *runner) bestFirst(h func(grid.Position) int, preferDeep bool) (grid.Path, error) {
	start, goal := r.problem.Start, r.problem.Goal
	a := newArena()
	a.root(start)

	f := newFrontier(preferDeep)
	f.push(start, 0, h(start))
	for !f.empty() {
		e := f.pop()
		if e.pos == goal {
			return a.pathTo(start, goal), nil
		}

		n := a.at(e.pos)
		// lazy deletion of stale entries
		if n.closed || e.cost > n.cost {
			continue
		}
		n.closed = true
		if err := r.expand(e.pos, e.cost); err != nil {
			return nil, err
		}

		for _, d := range grid.Directions {
			next := grid.Step(e.pos, d)
			if !r.open(next) || a.at(next).closed {
				continue
			}
			g := e.cost + 1
			if g >= a.costOf(next) {
				continue
			}
			a.link(next, e.pos, d, g)
			f.push(next, g, g+h(next))
		}
	}

	return nil, ErrNotFound
}
