// Package takuzu validates and solves binary puzzles (Takuzu/Binairo):
// square grids of even size whose cells hold 0, 1, or unknown, subject to
// four rules — binary values only, N/2 ones per row and column, no three
// consecutive equal values, and pairwise distinct rows and columns.
//
// Solving translates a grid into a boolean constraint system and drives an
// external feasibility solver in an exclusion loop until one or all legal
// completions are found. Two solver bindings ship by default (gophersat
// pseudo-Boolean and gini CNF) plus a dependency-free backtracking
// reference; any ports.Solver works.
package takuzu

import (
	"context"
	"io"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/enumerate"
	"svw.info/takuzu/internal/generator"
	"svw.info/takuzu/internal/hint"
	"svw.info/takuzu/internal/ports"
	"svw.info/takuzu/internal/solver"
	"svw.info/takuzu/internal/storage"
	"svw.info/takuzu/internal/usecase"
	"svw.info/takuzu/internal/validator"
)

// Re-exported domain types; the internal packages hold the implementations.
type (
	Cell           = domain.Cell
	Grid           = domain.Grid
	Puzzle         = domain.Puzzle
	Difficulty     = domain.Difficulty
	Hint           = domain.Hint
	ShapeError     = domain.ShapeError
	ParseError     = domain.ParseError
	ViolationError = validator.ViolationError
	Stats          = ports.Stats
	Solver         = ports.Solver
)

const Unknown = domain.Unknown

const (
	Easy   = domain.Easy
	Medium = domain.Medium
	Hard   = domain.Hard
)

// New constructs a grid from rows, enforcing the shape invariants.
func New(rows [][]Cell) (*Grid, error) { return domain.New(rows) }

// Empty returns an all-unknown grid of the given (even) size.
func Empty(n int) (*Grid, error) { return domain.Empty(n) }

// Parse reads a grid from its canonical CSV form.
func Parse(r io.Reader) (*Grid, error) { return domain.ParseCSV(r) }

// Check reports whether the grid satisfies all four rules.
func Check(g *Grid) bool { return validator.New().Check(g) }

// Verify returns a ViolationError naming the first violated rule, or nil.
func Verify(g *Grid) error { return validator.New().Verify(g) }

// NewPBSolver returns the default gophersat pseudo-Boolean backend.
func NewPBSolver() Solver { return solver.NewPBSolver() }

// NewCNFSolver returns the gini clause-level backend.
func NewCNFSolver() Solver { return solver.NewCNFSolver() }

// NewBacktrackingSolver returns the dependency-free reference backend.
func NewBacktrackingSolver() Solver { return solver.NewBacktrackingSolver() }

// NewEnumerator wires an enumeration loop around the given solver backend.
func NewEnumerator(s Solver) *enumerate.Enumerator { return enumerate.New(s) }

// SolveOne returns the first legal completion of g using the default
// backend, with ok=false when the clues admit none.
func SolveOne(ctx context.Context, g *Grid) (*Grid, bool, error) {
	sol, ok, _, err := NewEnumerator(NewPBSolver()).SolveOne(ctx, g)
	return sol, ok, err
}

// SolveAll returns every legal completion of g using the default backend.
// Callers needing bounded work should configure an Enumerator with a Limit.
func SolveAll(ctx context.Context, g *Grid) ([]*Grid, error) {
	sols, _, err := NewEnumerator(NewPBSolver()).SolveAll(ctx, g)
	return sols, err
}

// NewService wires the full default stack: gophersat-backed enumeration,
// generation, validation, forced-move hints, and a CSV file store in dir.
func NewService(dir string) *usecase.Service {
	v := validator.New()
	e := enumerate.New(solver.NewPBSolver())
	return usecase.NewService(e, generator.New(e), v, hint.New(v), storage.NewFS(dir))
}
