package solver

import (
	"context"
	"errors"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"svw.info/takuzu/internal/model"
)

// CNFSolver lowers the constraint system to clauses for gini. Cardinality
// bounds use single clauses where one suffices (at most n-1 of n, the
// two-variable exclusivity pair) and Sinz sequential counters otherwise.
// Auxiliary counter variables live above the system's own variables.
type CNFSolver struct{}

func NewCNFSolver() *CNFSolver { return &CNFSolver{} }

func (s *CNFSolver) Solve(ctx context.Context, sys model.System) (model.Assignment, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	g := gini.New()
	enc := &cnf{g: g, next: sys.NumVars + 1}
	for _, c := range sys.Cons {
		ms := make([]z.Lit, len(c.Vars))
		for i, v := range c.Vars {
			ms[i] = z.Var(v).Pos()
		}
		switch c.Rel {
		case model.Eq:
			enc.atMost(ms, c.Bound)
			enc.atLeast(ms, c.Bound)
		case model.AtMost:
			enc.atMost(ms, c.Bound)
		}
	}
	switch g.Solve() {
	case 1:
		asg := make(model.Assignment, sys.NumVars)
		for i := range asg {
			asg[i] = g.Value(z.Var(i + 1).Pos())
		}
		return asg, true, nil
	case -1:
		return nil, false, nil
	default:
		// only reachable with a solve deadline, which is never set here
		return nil, false, errors.New("sat solver returned undetermined")
	}
}

type cnf struct {
	g    *gini.Gini
	next int // next fresh auxiliary variable
}

func (e *cnf) clause(ms ...z.Lit) {
	for _, m := range ms {
		e.g.Add(m)
	}
	e.g.Add(0)
}

func (e *cnf) fresh() z.Lit {
	m := z.Var(e.next).Pos()
	e.next++
	return m
}

// atMost encodes sum(ms) <= k.
func (e *cnf) atMost(ms []z.Lit, k int) {
	n := len(ms)
	switch {
	case k < 0:
		// unsatisfiable by construction
		e.clause(ms[0])
		e.clause(ms[0].Not())
	case n <= k:
		// vacuous
	case k == 0:
		for _, m := range ms {
			e.clause(m.Not())
		}
	case n == k+1:
		// at least one must be false
		neg := make([]z.Lit, n)
		for i, m := range ms {
			neg[i] = m.Not()
		}
		e.clause(neg...)
	default:
		e.sequential(ms, k)
	}
}

// atLeast encodes sum(ms) >= k via the complementary at-most bound.
func (e *cnf) atLeast(ms []z.Lit, k int) {
	n := len(ms)
	switch {
	case k <= 0:
		// vacuous
	case k > n:
		e.clause(ms[0])
		e.clause(ms[0].Not())
	case k == 1:
		e.clause(ms...)
	default:
		neg := make([]z.Lit, n)
		for i, m := range ms {
			neg[i] = m.Not()
		}
		e.atMost(neg, n-k)
	}
}

// sequential is the Sinz sequential-counter encoding of sum(ms) <= k for
// 0 < k < n-1. Register reg[i][j] means "at least j+1 of ms[0..i] are true".
func (e *cnf) sequential(ms []z.Lit, k int) {
	n := len(ms)
	reg := make([][]z.Lit, n-1)
	for i := range reg {
		reg[i] = make([]z.Lit, k)
		for j := range reg[i] {
			reg[i][j] = e.fresh()
		}
	}
	e.clause(ms[0].Not(), reg[0][0])
	for j := 1; j < k; j++ {
		e.clause(reg[0][j].Not())
	}
	for i := 1; i < n-1; i++ {
		e.clause(ms[i].Not(), reg[i][0])
		e.clause(reg[i-1][0].Not(), reg[i][0])
		for j := 1; j < k; j++ {
			e.clause(ms[i].Not(), reg[i-1][j-1].Not(), reg[i][j])
			e.clause(reg[i-1][j].Not(), reg[i][j])
		}
		e.clause(ms[i].Not(), reg[i-1][k-1].Not())
	}
	e.clause(ms[n-1].Not(), reg[n-2][k-1].Not())
}
