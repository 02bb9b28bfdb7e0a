package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// BFS runs breadth-first search from p.Start to p.Goal.
//
// Neighbours are discovered in grid.Directions order and marked visited when
// first enqueued, so each cell enters the queue at most once. Because every move
// costs one and the queue is FIFO, cells are dequeued in non-decreasing distance
// order and the returned path has the minimal number of moves. Among equally short
// paths the one found first under the fixed direction order wins.
//
// Returns ErrNotFound when the reachable region holds no goal.
//
// Complexity: O(V) time and memory, V = cells reached (at most Rows×Cols).
func BFS(p Problem, opts ...Option) (grid.Path, error) {
	return execute(KindBFS, p, opts, (*runner).bfs)
}

func (r *runner) bfs() (grid.Path, error) {
	start, goal := r.problem.Start, r.problem.Goal
	a := newArena()
	a.root(start)

	queue := []grid.Position{start}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
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
			queue = append(queue, next)
		}
	}

	return nil, ErrNotFound
}
