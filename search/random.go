package search

import (
	"fmt"

	"github.com/katalvlaran/gridpath/grid"
)

// RandomWalk draws up to MaxSteps (default 1000) random directions from
// p.Start. A draw is applied only if it lands on an open in-bounds cell;
// rejected draws still use up an iteration. The walk succeeds as soon as it
// stands on p.Goal and returns every accepted move, revisits included.
//
// Exhausting the cap returns ErrBudgetExceeded. The walk is neither complete
// nor optimal, and is reproducible only under WithSeed or WithRand.
//
// Complexity: O(MaxSteps) time and memory.
func RandomWalk(p Problem, opts ...Option) (grid.Path, error) {
	return execute(KindRandom, p, opts, (*runner).randomWalk)
}

func (r *runner) randomWalk() (grid.Path, error) {
	rng := r.rng()
	cur, goal := r.problem.Start, r.problem.Goal

	path := grid.Path{}
	for i := 0; i < r.opts.MaxSteps; i++ {
		d := grid.Directions[rng.Intn(len(grid.Directions))]
		next := grid.Step(cur, d)
		if r.open(next) {
			path = append(path, d)
			cur = next
			if err := r.expand(cur, len(path)); err != nil {
				return nil, err
			}
		}
		if cur == goal {
			return path, nil
		}
	}

	return nil, fmt.Errorf("%w: random walk gave up after %d steps", ErrBudgetExceeded, r.opts.MaxSteps)
}
