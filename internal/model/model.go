// Package model compiles a grid into a solver-agnostic boolean constraint
// system: one variable per (row, column, value) triple and linear
// constraints with 0/1 coefficients. Any satisfying assignment decodes to a
// grid honoring the clues, parity, and the no-triples relaxation; row and
// column uniqueness is deliberately left out of the linear model and is
// enforced by the enumerator's re-check.
package model

import (
	"errors"
	"fmt"

	"svw.info/takuzu/internal/domain"
)

// Rel is the relation of a constraint to its bound.
type Rel int

const (
	Eq     Rel = iota // sum of variables == Bound
	AtMost            // sum of variables <= Bound
)

// Constraint is a linear constraint over boolean variables. Coefficients
// are implicitly 1: a variable is either in the sum or not.
type Constraint struct {
	Vars  []int
	Rel   Rel
	Bound int
}

// Assignment binds every variable; index id-1 holds variable id.
type Assignment []bool

// System is the request handed to a solver: variables 1..NumVars and the
// constraints over them. Append exclusions with And; the receiver is never
// mutated, so one base system can seed independent enumeration runs.
type System struct {
	Size    int
	NumVars int
	Cons    []Constraint
}

// VarID maps (row, col, value) to its 1-based variable, an arena offset
// replacing nested per-row dictionaries.
func VarID(n, r, c int, v domain.Cell) int {
	return 2*(r*n+c) + int(v) + 1
}

// Build compiles the grid. Known cells outside {0, 1} have no variable and
// are rejected rather than fixed. Emitted constraints, in order:
// cell-exclusivity (exactly one value per cell), row parity, column parity,
// the no-triples window bound, and clue fixation for every known cell.
func Build(g *domain.Grid) (System, error) {
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if cell := g.At(r, c); cell.Known() && cell != 0 && cell != 1 {
				return System{}, fmt.Errorf("cannot model cell (%d,%d): %d is not 0 or 1", r, c, cell)
			}
		}
	}
	sys := System{Size: n, NumVars: 2 * n * n}

	// exactly one value per cell
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			sys.Cons = append(sys.Cons, Constraint{
				Vars:  []int{VarID(n, r, c, 0), VarID(n, r, c, 1)},
				Rel:   Eq,
				Bound: 1,
			})
		}
	}

	// each row holds N/2 of each value
	for r := 0; r < n; r++ {
		for v := domain.Cell(0); v <= 1; v++ {
			vars := make([]int, n)
			for c := 0; c < n; c++ {
				vars[c] = VarID(n, r, c, v)
			}
			sys.Cons = append(sys.Cons, Constraint{Vars: vars, Rel: Eq, Bound: n / 2})
		}
	}

	// each column holds N/2 of each value
	for c := 0; c < n; c++ {
		for v := domain.Cell(0); v <= 1; v++ {
			vars := make([]int, n)
			for r := 0; r < n; r++ {
				vars[r] = VarID(n, r, c, v)
			}
			sys.Cons = append(sys.Cons, Constraint{Vars: vars, Rel: Eq, Bound: n / 2})
		}
	}

	// at most two of any value in every window of three, rows then columns
	for w := 0; w+3 <= n; w++ {
		for v := domain.Cell(0); v <= 1; v++ {
			for r := 0; r < n; r++ {
				sys.Cons = append(sys.Cons, Constraint{
					Vars:  []int{VarID(n, r, w, v), VarID(n, r, w+1, v), VarID(n, r, w+2, v)},
					Rel:   AtMost,
					Bound: 2,
				})
			}
			for c := 0; c < n; c++ {
				sys.Cons = append(sys.Cons, Constraint{
					Vars:  []int{VarID(n, w, c, v), VarID(n, w+1, c, v), VarID(n, w+2, c, v)},
					Rel:   AtMost,
					Bound: 2,
				})
			}
		}
	}

	// fix the clues
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if cell := g.At(r, c); cell.Known() {
				sys.Cons = append(sys.Cons, Constraint{
					Vars:  []int{VarID(n, r, c, cell)},
					Rel:   Eq,
					Bound: 1,
				})
			}
		}
	}
	return sys, nil
}

// And returns a new system with the extra constraints appended. The
// receiver's constraint slice is copied, never aliased.
func (s System) And(extra ...Constraint) System {
	cons := make([]Constraint, 0, len(s.Cons)+len(extra))
	cons = append(cons, s.Cons...)
	cons = append(cons, extra...)
	return System{Size: s.Size, NumVars: s.NumVars, Cons: cons}
}

// Exclude builds the no-good constraint for an assignment: the variables
// currently true may never all be true again together.
func Exclude(a Assignment) Constraint {
	var vars []int
	for i, set := range a {
		if set {
			vars = append(vars, i+1)
		}
	}
	return Constraint{Vars: vars, Rel: AtMost, Bound: len(vars) - 1}
}

// Decode turns an assignment into a complete grid, rejecting assignments
// that bind a cell to both values or neither.
func (s System) Decode(a Assignment) (*domain.Grid, error) {
	if len(a) < s.NumVars {
		return nil, errors.New("assignment does not cover all variables")
	}
	n := s.Size
	rows := make([][]domain.Cell, n)
	for r := 0; r < n; r++ {
		rows[r] = make([]domain.Cell, n)
		for c := 0; c < n; c++ {
			zero := a[VarID(n, r, c, 0)-1]
			one := a[VarID(n, r, c, 1)-1]
			if zero == one {
				return nil, errors.New("assignment violates cell exclusivity")
			}
			if one {
				rows[r][c] = 1
			} else {
				rows[r][c] = 0
			}
		}
	}
	return domain.New(rows)
}
