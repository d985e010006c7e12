// Package validator decides and explains the legality of a grid under the
// four binary-puzzle rules: binary values, row/column parity, no three
// consecutive equal values, and row/column uniqueness.
//
// The predicates tolerate partial grids: parity and uniqueness consider only
// fully-known lines, and a window containing an unknown cell is never a
// triple. A partial puzzle therefore passes Verify when its clues are
// internally consistent; completeness of solver output is checked
// separately via Grid.Complete.
package validator

import (
	"fmt"

	"svw.info/takuzu/internal/domain"
)

// Rule names one of the four legality rules.
type Rule int

const (
	Binary Rule = iota
	Parity
	NoTriples
	Uniqueness
)

func (r Rule) String() string {
	switch r {
	case Binary:
		return "binary"
	case Parity:
		return "parity"
	case NoTriples:
		return "no-triples"
	default:
		return "uniqueness"
	}
}

// Axis locates a violation.
type Axis int

const (
	AxisNone Axis = iota
	AxisRow
	AxisColumn
	AxisCell
)

// ViolationError identifies the violated rule and, where determinable, the
// offending location. Index is the row or column (or the row of a cell);
// Other is the cell's column, or the duplicate partner for uniqueness.
type ViolationError struct {
	Rule  Rule
	Axis  Axis
	Index int
	Other int
}

func (e *ViolationError) Error() string {
	switch e.Axis {
	case AxisCell:
		return fmt.Sprintf("%s rule violated: cell (%d,%d) is not 0 or 1", e.Rule, e.Index, e.Other)
	case AxisRow:
		if e.Rule == Uniqueness {
			return fmt.Sprintf("%s rule violated: rows %d and %d are identical", e.Rule, e.Index, e.Other)
		}
		return fmt.Sprintf("%s rule violated at row %d", e.Rule, e.Index)
	case AxisColumn:
		if e.Rule == Uniqueness {
			return fmt.Sprintf("%s rule violated: columns %d and %d are identical", e.Rule, e.Index, e.Other)
		}
		return fmt.Sprintf("%s rule violated at column %d", e.Rule, e.Index)
	default:
		return fmt.Sprintf("%s rule violated", e.Rule)
	}
}

// Validator evaluates the four rules. It is stateless and safe for
// concurrent use.
type Validator struct{}

func New() *Validator { return &Validator{} }

// IsBinary reports whether every known cell holds 0 or 1.
func (v *Validator) IsBinary(g *domain.Grid) bool {
	_, _, ok := v.firstNonBinary(g)
	return ok
}

func (v *Validator) firstNonBinary(g *domain.Grid) (r, c int, ok bool) {
	n := g.Size()
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if cell := g.At(r, c); cell.Known() && cell != 0 && cell != 1 {
				return r, c, false
			}
		}
	}
	return 0, 0, true
}

// HasParity reports whether every fully-known row and column contains
// exactly N/2 ones.
func (v *Validator) HasParity(g *domain.Grid) bool {
	_, _, ok := v.firstParityBreak(g)
	return ok
}

func (v *Validator) firstParityBreak(g *domain.Grid) (Axis, int, bool) {
	n := g.Size()
	for r := 0; r < n; r++ {
		if !lineParity(g.Row(r), n) {
			return AxisRow, r, false
		}
	}
	for c := 0; c < n; c++ {
		if !lineParity(g.Column(c), n) {
			return AxisColumn, c, false
		}
	}
	return AxisNone, 0, true
}

func lineParity(line []domain.Cell, n int) bool {
	ones := 0
	for _, cell := range line {
		if !cell.Known() {
			return true // only fully-known lines are held to parity
		}
		if cell == 1 {
			ones++
		}
	}
	return ones == n/2
}

// HasNoTriples reports whether no row or column contains three consecutive
// equal known binary values.
func (v *Validator) HasNoTriples(g *domain.Grid) bool {
	_, _, ok := v.firstTriple(g)
	return ok
}

func (v *Validator) firstTriple(g *domain.Grid) (Axis, int, bool) {
	n := g.Size()
	for r := 0; r < n; r++ {
		if !lineTripleFree(g.Row(r)) {
			return AxisRow, r, false
		}
	}
	for c := 0; c < n; c++ {
		if !lineTripleFree(g.Column(c)) {
			return AxisColumn, c, false
		}
	}
	return AxisNone, 0, true
}

func lineTripleFree(line []domain.Cell) bool {
	for i := 0; i+2 < len(line); i++ {
		a, b, c := line[i], line[i+1], line[i+2]
		if a == b && b == c && (a == 0 || a == 1) {
			return false
		}
	}
	return true
}

// IsUnique reports whether all fully-known rows are pairwise distinct and
// all fully-known columns are pairwise distinct. Lines containing an
// unknown cell compare equal to nothing.
func (v *Validator) IsUnique(g *domain.Grid) bool {
	_, _, _, ok := v.firstDuplicate(g)
	return ok
}

func (v *Validator) firstDuplicate(g *domain.Grid) (Axis, int, int, bool) {
	n := g.Size()
	if i, j, dup := duplicateLines(collectKnown(g.Row, n)); dup {
		return AxisRow, i, j, false
	}
	if i, j, dup := duplicateLines(collectKnown(g.Column, n)); dup {
		return AxisColumn, i, j, false
	}
	return AxisNone, 0, 0, true
}

func collectKnown(line func(int) []domain.Cell, n int) [][]domain.Cell {
	out := make([][]domain.Cell, n)
	for i := 0; i < n; i++ {
		l := line(i)
		known := true
		for _, cell := range l {
			if !cell.Known() {
				known = false
				break
			}
		}
		if known {
			out[i] = l
		}
	}
	return out
}

func duplicateLines(lines [][]domain.Cell) (int, int, bool) {
	for i := range lines {
		if lines[i] == nil {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			if lines[j] == nil {
				continue
			}
			same := true
			for k := range lines[i] {
				if lines[i][k] != lines[j][k] {
					same = false
					break
				}
			}
			if same {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// Check is the non-failing conjunction of the four rules, evaluated in the
// fixed order binary, parity, triples, uniqueness.
func (v *Validator) Check(g *domain.Grid) bool {
	return v.IsBinary(g) && v.HasParity(g) && v.HasNoTriples(g) && v.IsUnique(g)
}

// Verify evaluates the same conjunction and returns a ViolationError for
// the first rule that fails, naming the rule and its location.
func (v *Validator) Verify(g *domain.Grid) error {
	if r, c, ok := v.firstNonBinary(g); !ok {
		return &ViolationError{Rule: Binary, Axis: AxisCell, Index: r, Other: c}
	}
	if axis, i, ok := v.firstParityBreak(g); !ok {
		return &ViolationError{Rule: Parity, Axis: axis, Index: i}
	}
	if axis, i, ok := v.firstTriple(g); !ok {
		return &ViolationError{Rule: NoTriples, Axis: axis, Index: i}
	}
	if axis, i, j, ok := v.firstDuplicate(g); !ok {
		return &ViolationError{Rule: Uniqueness, Axis: axis, Index: i, Other: j}
	}
	return nil
}
