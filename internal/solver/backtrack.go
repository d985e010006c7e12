package solver

import (
	"context"

	"svw.info/takuzu/internal/model"
)

// BacktrackingSolver is a straightforward DFS over the boolean variables
// with per-constraint pruning. It exists so the enumeration loop can run
// and be tested without a third-party solver; the library bindings are the
// production backends.
type BacktrackingSolver struct{}

func NewBacktrackingSolver() *BacktrackingSolver { return &BacktrackingSolver{} }

func (s *BacktrackingSolver) Solve(ctx context.Context, sys model.System) (model.Assignment, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	st := newSearch(sys)
	found, err := st.dfs(ctx, 0)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	asg := make(model.Assignment, sys.NumVars)
	copy(asg, st.value)
	return asg, true, nil
}

type search struct {
	sys      model.System
	byVar    [][]int // var index -> constraints containing it
	value    []bool
	trues    []int // per-constraint count of assigned-true vars
	assigned []int // per-constraint count of assigned vars
	nodes    int
}

func newSearch(sys model.System) *search {
	st := &search{
		sys:      sys,
		byVar:    make([][]int, sys.NumVars),
		value:    make([]bool, sys.NumVars),
		trues:    make([]int, len(sys.Cons)),
		assigned: make([]int, len(sys.Cons)),
	}
	for ci, c := range sys.Cons {
		for _, v := range c.Vars {
			st.byVar[v-1] = append(st.byVar[v-1], ci)
		}
	}
	return st
}

// consistent checks every constraint touching var i after assignment.
func (st *search) consistent(i int) bool {
	for _, ci := range st.byVar[i] {
		c := st.sys.Cons[ci]
		switch c.Rel {
		case model.Eq:
			if st.trues[ci] > c.Bound {
				return false
			}
			if st.trues[ci]+len(c.Vars)-st.assigned[ci] < c.Bound {
				return false
			}
		case model.AtMost:
			if st.trues[ci] > c.Bound {
				return false
			}
		}
	}
	return true
}

func (st *search) assign(i int, v bool) {
	st.value[i] = v
	for _, ci := range st.byVar[i] {
		st.assigned[ci]++
		if v {
			st.trues[ci]++
		}
	}
}

func (st *search) unassign(i int) {
	for _, ci := range st.byVar[i] {
		st.assigned[ci]--
		if st.value[i] {
			st.trues[ci]--
		}
	}
}

func (st *search) dfs(ctx context.Context, i int) (bool, error) {
	st.nodes++
	if st.nodes%1024 == 0 {
		if err := ctx.Err(); err != nil {
			return false, err
		}
	}
	if i == st.sys.NumVars {
		return true, nil
	}
	for _, v := range [2]bool{true, false} {
		st.assign(i, v)
		if st.consistent(i) {
			if ok, err := st.dfs(ctx, i+1); ok || err != nil {
				return ok, err
			}
		}
		st.unassign(i)
	}
	return false, nil
}
