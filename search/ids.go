package search

import (
	"fmt"
	"slices"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// outcome is the result of one depth-limited descent.
type outcome uint8

const (
	// found: the goal was reached; deepening.moves holds the path.
	found outcome = iota
	// cutoff: the depth limit stopped at least one branch.
	cutoff
	// exhausted: every reachable cell was expanded below the limit.
	exhausted
	// overBudget: the wall-clock budget ran out.
	overBudget
	// canceled: the context was done; deepening.err holds the reason.
	canceled
)

// IDS runs iterative-deepening depth-first search.
//
// The depth limit starts at 0 and grows by one until the goal is found. Each
// iteration starts with a fresh table of the shallowest depth at which every cell
// was expanded; a cell is re-entered only at a strictly smaller depth. That keeps
// each iteration complete up to its limit, so the first path found is minimal,
// matching BFS. Shallow levels are re-explored at every limit.
//
// The wall-clock budget (WithTimeLimit, default 5s) is measured once from the
// start of the call and polled at every expansion; running out returns
// ErrBudgetExceeded. An iteration that never hits its limit has exhausted the
// reachable region, and IDS returns ErrNotFound without deepening further.
//
// Complexity: O(L×Rows×Cols) time for a path of length L, O(Rows×Cols) memory.
func IDS(p Problem, opts ...Option) (grid.Path, error) {
	return execute(KindIDS, p, opts, (*runner).ids)
}

// deepening carries the state of one depth-limited iteration.
type deepening struct {
	r        *runner
	goal     grid.Position
	deadline time.Time
	best     map[grid.Position]int
	moves    grid.Path
	err      error
}

func (r *runner) ids() (grid.Path, error) {
	s := &deepening{
		r:        r,
		goal:     r.problem.Goal,
		deadline: r.started.Add(r.opts.TimeLimit),
	}

	for limit := 0; ; limit++ {
		s.best = make(map[grid.Position]int)
		s.moves = s.moves[:0]

		switch s.descend(r.problem.Start, 0, limit) {
		case found:
			return slices.Clone(s.moves), nil
		case exhausted:
			return nil, ErrNotFound
		case overBudget:
			return nil, fmt.Errorf("%w: IDS time limit %s reached at depth %d", ErrBudgetExceeded, r.opts.TimeLimit, limit)
		case canceled:
			return nil, s.err
		}
	}
}

// descend is the recursive depth-limited search from pos at the given depth.
func (s *deepening) descend(pos grid.Position, depth, limit int) outcome {
	if pos == s.goal {
		return found
	}
	if depth == limit {
		return cutoff
	}
	if time.Now().After(s.deadline) {
		return overBudget
	}
	if err := s.r.expand(pos, depth); err != nil {
		s.err = err
		return canceled
	}
	s.best[pos] = depth

	result := exhausted
	for _, d := range grid.Directions {
		next := grid.Step(pos, d)
		if !s.r.open(next) {
			continue
		}
		if seen, ok := s.best[next]; ok && seen <= depth+1 {
			continue
		}

		s.moves = append(s.moves, d)
		switch o := s.descend(next, depth+1, limit); o {
		case found, overBudget, canceled:
			return o
		case cutoff:
			result = cutoff
		}
		s.moves = s.moves[:len(s.moves)-1]
	}

	return result
}
