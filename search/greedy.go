package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// Greedy runs greedy best-first search: the frontier is ordered only by the
// Manhattan distance to the goal, ignoring cost so far. Cells are marked visited
// when enqueued and never re-enqueued, even if a cheaper route turns up later.
// Fast on open grids, not optimal.
//
// Returns ErrNotFound when the reachable region holds no goal.
//
// Complexity: O(V log V) time, O(V) memory, V = cells reached.
func Greedy(p Problem, opts ...Option) (grid.Path, error) {
	return execute(KindGreedy, p, opts, (*runner).greedy)
}

func (r *runner) greedy() (grid.Path, error) {
	start, goal := r.problem.Start, r.problem.Goal
	a := newArena()
	a.root(start)

	f := newFrontier(false)
	f.push(start, 0, grid.Manhattan(start, goal))
	for !f.empty() {
		e := f.pop()
		if e.pos == goal {
			return a.pathTo(start, goal), nil
		}
		if err := r.expand(e.pos, e.cost); err != nil {
			return nil, err
		}

		for _, d := range grid.Directions {
			next := grid.Step(e.pos, d)
			if !r.open(next) || a.at(next).seen {
				continue
			}
			a.link(next, e.pos, d, e.cost+1)
			f.push(next, e.cost+1, grid.Manhattan(next, goal))
		}
	}

	return nil, ErrNotFound
}
