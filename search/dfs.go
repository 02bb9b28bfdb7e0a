package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// DFS runs depth-first search with an explicit stack.
//
// Cells are marked visited when pushed, as in BFS, so the search terminates on
// any finite grid and finds a path whenever one exists. Neighbours are pushed in
// grid.Directions order, which means the last pushed direction (Right) is popped
// and explored first. Path length is an artifact of that order, not minimal.
//
// Returns ErrNotFound when the reachable region holds no goal.
//
// Complexity: O(V) time and memory, V = cells reached (at most Rows×Cols).
func DFS(p Problem, opts ...Option) (grid.Path, error) {
	return execute(KindDFS, p, opts, (*runner).dfs)
}

func (r *runner) dfs() (grid.Path, error) {
	start, goal := r.problem.Start, r.problem.Goal
	a := newArena()
	a.root(start)

	stack := []grid.Position{start}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur == goal {
			return a.pathTo(start, goal), nil
		}

		depth := a.at(cur).cost
		if err := r.expand(cur, depth); err != nil {
			return nil, err
		}
		for _, d := range grid.Directions {
			next := grid.Step(cur, d)
			if !r.open(next) || a.at(next).seen {
				continue
			}
			a.link(next, cur, d, depth+1)
			stack = append(stack, next)
		}
	}

	return nil, ErrNotFound
}
