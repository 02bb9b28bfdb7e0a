package search

import (
	"errors"
	"math/rand"
	"time"

	"github.com/katalvlaran/gridpath/grid"
)

// runner holds the per-call state shared by every strategy: the validated
// problem, resolved options, the clock and the expansion counter.
type runner struct {
	kind     Kind
	problem  Problem
	opts     Options
	started  time.Time
	expanded int
}

// execute validates inputs, short-circuits start == goal and hands the call to body.
// Every strategy entry point goes through here so that validation, the timing
// line and the empty-path-on-failure rule are identical across strategies.
func execute(kind Kind, p Problem, opts []Option, body func(r *runner) (grid.Path, error)) (grid.Path, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	r := &runner{kind: kind, problem: p, opts: o, started: time.Now()}
	if p.Start == p.Goal {
		return r.finish(grid.Path{}, nil)
	}
	return r.finish(body(r))
}

// expand counts a node expansion, reports it to OnExpand and polls the context.
func (r *runner) expand(pos grid.Position, depth int) error {
	select {
	case <-r.opts.Ctx.Done():
		return r.opts.Ctx.Err()
	default:
	}
	r.expanded++
	r.opts.OnExpand(pos, depth)
	return nil
}

// open reports whether pos is an in-bounds, unblocked cell.
func (r *runner) open(pos grid.Position) bool {
	return grid.Passable(pos, r.problem.Bounds, r.problem.Obstacles)
}

// rng returns the configured random source or a clock-seeded one.
func (r *runner) rng() *rand.Rand {
	if r.opts.Rand != nil {
		return r.opts.Rand
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// finish emits the timing line and enforces the empty-path-on-error rule.
func (r *runner) finish(path grid.Path, err error) (grid.Path, error) {
	if l := r.opts.Logger; l != nil {
		elapsed := time.Since(r.started)
		switch {
		case err == nil:
			l.Info("search finished", "strategy", r.kind.Name(), "elapsed", elapsed, "expanded", r.expanded, "moves", len(path))
		case errors.Is(err, ErrBudgetExceeded):
			l.Warn("search budget exceeded", "strategy", r.kind.Name(), "elapsed", elapsed, "expanded", r.expanded)
		default:
			l.Info("search failed", "strategy", r.kind.Name(), "elapsed", elapsed, "expanded", r.expanded, "err", err)
		}
	}
	if err != nil {
		return nil, err
	}
	return path, nil
}
