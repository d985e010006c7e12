// Package enumerate drives repeated solver invocations to discover one or
// all legal completions of a grid. The loop is: build the model once, then
// solve, extract, validate, and either accept or exclude — terminating when
// the solver reports infeasible. Exclusion of every extracted assignment
// guarantees forward progress: the assignment space is finite and shrinks
// by at least one per iteration.
package enumerate

import (
	"context"
	"log/slog"
	"time"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/model"
	"svw.info/takuzu/internal/ports"
	"svw.info/takuzu/internal/validator"
)

// Enumerator owns one solve loop at a time. Each SolveOne/SolveAll call
// builds a fresh constraint system; nothing is shared across calls.
type Enumerator struct {
	Solver ports.Solver
	Rules  ports.Validator
	Log    *slog.Logger

	// Limit caps the number of accepted solutions in SolveAll (0 means
	// unlimited). Pathological inputs can hold exponentially many
	// completions; this is the caller's external iteration bound.
	Limit int
}

// New wires an enumerator with the default rule validator.
func New(s ports.Solver) *Enumerator {
	return &Enumerator{Solver: s, Rules: validator.New(), Log: slog.Default()}
}

// SolveOne returns the first legal completion, or ok=false when the clues
// admit none. Infeasibility is a normal outcome, never an error.
func (e *Enumerator) SolveOne(ctx context.Context, g *domain.Grid) (*domain.Grid, bool, ports.Stats, error) {
	var out *domain.Grid
	stats, err := e.run(ctx, g, func(sol *domain.Grid) bool {
		out = sol
		return false // stop at the first accepted solution
	})
	return out, out != nil, stats, err
}

// SolveAll returns every legal completion, in solver discovery order. The
// loop only terminates when the solver reports infeasible (or Limit is
// reached), so each returned grid is structurally distinct.
func (e *Enumerator) SolveAll(ctx context.Context, g *domain.Grid) ([]*domain.Grid, ports.Stats, error) {
	var out []*domain.Grid
	stats, err := e.run(ctx, g, func(sol *domain.Grid) bool {
		out = append(out, sol)
		return e.Limit == 0 || len(out) < e.Limit
	})
	return out, stats, err
}

// Unique reports whether the grid has exactly one legal completion.
func (e *Enumerator) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	capped := *e
	capped.Limit = 2
	sols, stats, err := capped.SolveAll(ctx, g)
	return len(sols) == 1, stats, err
}

// run is the build → solve → extract → validate → exclude-or-stop machine.
// accept returns false to stop enumerating.
func (e *Enumerator) run(ctx context.Context, g *domain.Grid, accept func(*domain.Grid) bool) (ports.Stats, error) {
	start := time.Now()
	stats := ports.Stats{}
	sys, err := model.Build(g)
	if err != nil {
		stats.Duration = time.Since(start)
		return stats, err
	}
	for {
		if err := ctx.Err(); err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}
		asg, feasible, err := e.Solver.Solve(ctx, sys)
		stats.Calls++
		if err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}
		if !feasible {
			stats.Duration = time.Since(start)
			return stats, nil
		}
		cand, err := sys.Decode(asg)
		if err != nil {
			stats.Duration = time.Since(start)
			return stats, err
		}
		// The linear model does not encode uniqueness; re-check the full
		// rule set before accepting.
		if cand.Complete() && e.Rules.Check(cand) {
			if !accept(cand) {
				stats.Duration = time.Since(start)
				return stats, nil
			}
			e.log().Debug("solution accepted", "call", stats.Calls)
		} else {
			stats.Rejected++
			e.log().Debug("candidate rejected", "call", stats.Calls, "rejected", stats.Rejected)
		}
		sys = sys.And(model.Exclude(asg))
	}
}

func (e *Enumerator) log() *slog.Logger {
	if e.Log != nil {
		return e.Log
	}
	return slog.Default()
}
