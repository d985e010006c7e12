package domain

import "fmt"

// Cell is one grid cell: 0, 1, or Unknown.
type Cell int8

// Unknown marks a cell not yet filled in.
const Unknown Cell = -1

// Known reports whether the cell holds a value (not necessarily a legal one;
// the binary rule decides legality).
func (c Cell) Known() bool { return c != Unknown }

// ShapeCause distinguishes the ways a grid can violate its shape invariants.
type ShapeCause int

const (
	Ragged    ShapeCause = iota // rows of differing length (not 2-dimensional)
	NotSquare                   // row count != column count
	TooSmall                    // size below 2
	OddSize                     // size not even
)

// ShapeError reports a violated construction invariant. A grid that fails
// construction does not exist; there is no recovery beyond fixing the input.
type ShapeError struct {
	Cause ShapeCause
	Rows  int
	Cols  int
}

func (e *ShapeError) Error() string {
	switch e.Cause {
	case Ragged:
		return fmt.Sprintf("grid must be rectangular: row lengths differ (first is %d)", e.Cols)
	case NotSquare:
		return fmt.Sprintf("grid must be square, got %dx%d", e.Rows, e.Cols)
	case TooSmall:
		return fmt.Sprintf("grid size must be at least 2, got %d", e.Rows)
	default:
		return fmt.Sprintf("grid size must be even, got %d", e.Rows)
	}
}

// Grid is an immutable NxN cell matrix. The zero value is not usable;
// construct through New, Empty, ParseCSV, or Set.
type Grid struct {
	n     int
	cells []Cell
}

// New builds a grid from rows, enforcing the shape invariants:
// rectangular, square, size at least 2, size even. Cell values are taken
// as-is; out-of-range digits are the validator's concern, not a shape error.
func New(rows [][]Cell) (*Grid, error) {
	n := len(rows)
	cols := 0
	if n > 0 {
		cols = len(rows[0])
	}
	for _, row := range rows {
		if len(row) != cols {
			return nil, &ShapeError{Cause: Ragged, Rows: n, Cols: cols}
		}
	}
	if cols != n {
		return nil, &ShapeError{Cause: NotSquare, Rows: n, Cols: cols}
	}
	if n < 2 {
		return nil, &ShapeError{Cause: TooSmall, Rows: n, Cols: cols}
	}
	if n%2 != 0 {
		return nil, &ShapeError{Cause: OddSize, Rows: n, Cols: cols}
	}
	g := &Grid{n: n, cells: make([]Cell, n*n)}
	for r, row := range rows {
		copy(g.cells[r*n:(r+1)*n], row)
	}
	return g, nil
}

// Empty returns an all-Unknown grid of the given size.
func Empty(n int) (*Grid, error) {
	rows := make([][]Cell, n)
	for r := range rows {
		rows[r] = make([]Cell, n)
		for c := range rows[r] {
			rows[r][c] = Unknown
		}
	}
	return New(rows)
}

// Size returns N.
func (g *Grid) Size() int { return g.n }

// At returns the cell at (r, c).
func (g *Grid) At(r, c int) Cell { return g.cells[r*g.n+c] }

// Row returns a copy of row r.
func (g *Grid) Row(r int) []Cell {
	out := make([]Cell, g.n)
	copy(out, g.cells[r*g.n:(r+1)*g.n])
	return out
}

// Column returns a copy of column c.
func (g *Grid) Column(c int) []Cell {
	out := make([]Cell, g.n)
	for r := 0; r < g.n; r++ {
		out[r] = g.cells[r*g.n+c]
	}
	return out
}

// Set returns a new grid with (r, c) replaced; the receiver is unchanged.
func (g *Grid) Set(r, c int, v Cell) *Grid {
	out := &Grid{n: g.n, cells: make([]Cell, len(g.cells))}
	copy(out.cells, g.cells)
	out.cells[r*g.n+c] = v
	return out
}

// Complete reports whether no cell is Unknown.
func (g *Grid) Complete() bool {
	for _, c := range g.cells {
		if !c.Known() {
			return false
		}
	}
	return true
}

// Clues counts the known cells.
func (g *Grid) Clues() int {
	n := 0
	for _, c := range g.cells {
		if c.Known() {
			n++
		}
	}
	return n
}

// Equal reports content equality, including Unknown positions.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.n != o.n {
		return false
	}
	for i, c := range g.cells {
		if c != o.cells[i] {
			return false
		}
	}
	return true
}
