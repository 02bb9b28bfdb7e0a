// Package search provides seven interchangeable pathfinding strategies over a
// finite rectangular grid with static point obstacles.
//
// What
//
//   - Uninformed: BFS, DFS, IDS (iterative deepening, time-bounded), UCS.
//   - Informed:   Greedy (best-first on Manhattan distance), AStar.
//   - Baseline:   RandomWalk (bounded number of random moves).
//   - Every strategy has the same shape:
//     func(p Problem, opts ...Option) (grid.Path, error)
//   - Kind enumerates the strategies; Parse maps the identifiers
//     bfs, dfs, ucs, ids, a*, random, greedy_bfs (case-insensitive) to a Kind,
//     and Kind.Search dispatches to the implementation.
//
// Guarantees
//
//   - Validity: a non-empty path walks from Start to Goal through in-bounds,
//     obstacle-free cells only.
//   - start == goal yields an empty path and a nil error for every strategy.
//   - BFS, UCS, IDS and AStar return paths of equal, minimal length.
//   - Every strategy except RandomWalk is deterministic: neighbours are expanded
//     in grid.Directions order and priority ties fall back to insertion order.
//
// Determinism
//
//	On a 3×3 open grid from (0,0) to (2,2), BFS, UCS, IDS and AStar all return
//	[down down right right]. DFS pops the last pushed direction first and
//	returns [right right down down].
//
// Path reconstruction
//
//	Frontier entries carry only a cell and its cost. The move that first (or most
//	cheaply) reached each cell is stored in a per-call arena keyed by cell, so
//	memory grows with the cells a search reaches, not with Rows×Cols, and the path is rebuilt once from the goal's parent links.
//
// Options
//
//   - WithContext(ctx):   cancellation, polled at every expansion.
//   - WithLogger(l):      charmbracelet/log logger for the per-call timing line.
//   - WithOnExpand(fn):   hook on every expanded cell with its depth.
//   - WithTimeLimit(d):   IDS wall-clock budget (default 5s).
//   - WithMaxSteps(n):    RandomWalk iteration cap (default 1000).
//   - WithSeed(s), WithRand(rng): RandomWalk randomness.
//
// Errors
//
//   - ErrNotFound:        the reachable region was exhausted.
//   - ErrBudgetExceeded:  the IDS time limit or RandomWalk step cap ran out.
//   - ErrInvalidProblem:  bad bounds, or start/goal outside the grid or blocked.
//   - ErrUnknownStrategy: Parse could not resolve an identifier.
//   - ErrOptionViolation: an Option received an invalid value.
//   - ctx.Err() when the context is done.
//
// In every error case the returned path is nil, so callers that only test
// len(path) == 0 keep working; errors.Is tells NotFound and budget apart.
//
// Concurrency
//
//	Strategies keep no shared state: each call allocates its own frontier,
//	arena and cost table and only reads Problem.Obstacles. Concurrent calls are
//	safe as long as callers do not share a *rand.Rand through WithRand.
package search
