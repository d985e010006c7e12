package solver

import (
	"context"

	gs "github.com/crillab/gophersat/solver"

	"svw.info/takuzu/internal/model"
)

// PBSolver binds the constraint system to gophersat's pseudo-Boolean
// solver. The system's constraint forms map directly: Eq becomes a pair of
// cardinality bounds, AtMost a single one. The model carries no objective,
// so Sat is the only status of interest.
type PBSolver struct{}

func NewPBSolver() *PBSolver { return &PBSolver{} }

func (s *PBSolver) Solve(ctx context.Context, sys model.System) (model.Assignment, bool, error) {
	// A running search cannot be interrupted; honor cancellation up front.
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	constrs := make([]gs.PBConstr, 0, 2*len(sys.Cons))
	for _, c := range sys.Cons {
		// Eq and LtEq index their weight slice per literal; unlike the
		// cardinality constructors they do not treat nil as all-ones.
		switch c.Rel {
		case model.Eq:
			constrs = append(constrs, gs.Eq(lits(c.Vars), unitWeights(len(c.Vars)), c.Bound)...)
		case model.AtMost:
			constrs = append(constrs, gs.LtEq(lits(c.Vars), unitWeights(len(c.Vars)), c.Bound))
		}
	}
	sat := gs.New(gs.ParsePBConstrs(constrs))
	if sat.Solve() != gs.Sat {
		return nil, false, nil
	}
	m := sat.Model()
	asg := make(model.Assignment, sys.NumVars)
	copy(asg, m)
	return asg, true, nil
}

func lits(vars []int) []int {
	out := make([]int, len(vars))
	copy(out, vars)
	return out
}

func unitWeights(n int) []int {
	w := make([]int, n)
	for i := range w {
		w[i] = 1
	}
	return w
}
