package search

import (
	"github.com/katalvlaran/gridpath/grid"
)

// AStar runs A* with the Manhattan-distance heuristic: the frontier is ordered
// by f = g + h, ties broken towards larger g and then insertion order.
//
// Manhattan distance never overestimates the remaining moves on a 4-connected
// unit-cost grid and satisfies the triangle inequality across every move, so
// closed cells never need reopening and the returned path is minimal. Its length
// always equals the BFS, UCS and IDS result on the same problem.
//
// Returns ErrNotFound when the reachable region holds no goal.
//
// Complexity: O(V log V) time, O(V) memory, V = cells reached; in practice far
// fewer expansions than UCS.
func AStar(p Problem, opts ...Option) (grid.Path, error) {
	return execute(KindAStar, p, opts, func(r *runner) (grid.Path, error) {
		goal := r.problem.Goal
		return r.bestFirst(func(pos grid.Position) int { return grid.Manhattan(pos, goal) }, true)
	})
}
