package ports

import (
	"context"
	"time"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/model"
)

// Stats captures performance characteristics of an enumeration run.
type Stats struct {
	Calls    int // solver invocations
	Rejected int // candidates excluded after failing the rules re-check
	Duration time.Duration
}

// Solver is the external feasibility solver. feasible=false is the normal
// "no assignment exists" outcome, not an error; err reports a solver
// malfunction. Implementations are stateless per call and must honor ctx to
// the extent their search allows.
type Solver interface {
	Solve(ctx context.Context, sys model.System) (asg model.Assignment, feasible bool, err error)
}

// Validator decides and explains grid legality.
type Validator interface {
	Check(g *domain.Grid) bool
	Verify(g *domain.Grid) error
}

// Hinter suggests a forced move on a partial grid.
type Hinter interface {
	Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error)
}

// Store persists grids in their canonical CSV form, keyed by name.
type Store interface {
	Save(ctx context.Context, name string, g *domain.Grid) error
	Load(ctx context.Context, name string) (*domain.Grid, error)
	List(ctx context.Context) ([]string, error)
}
