package hint

import (
	"context"
	"fmt"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/ports"
)

// Forced is a minimal Hinter: it reports the first empty cell where only
// one value keeps the grid's clues consistent (the other would break
// parity, form a triple, or duplicate a line).
type Forced struct {
	Rules ports.Validator
}

func New(rules ports.Validator) *Forced { return &Forced{Rules: rules} }

// Hint returns the first forced move found, scanning in row-major order.
func (h *Forced) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	n := g.Size()
	for r := 0; r < n; r++ {
		if err := ctx.Err(); err != nil {
			return domain.Hint{}, false, err
		}
		for c := 0; c < n; c++ {
			if g.At(r, c).Known() {
				continue
			}
			v, ok := h.soleCandidate(g, r, c)
			if ok {
				return domain.Hint{
					Message: fmt.Sprintf("Forced: only %d fits here", v),
					Cell:    domain.CellCoord{Row: r, Col: c},
					Value:   v,
				}, true, nil
			}
		}
	}
	return domain.Hint{}, false, nil
}

func (h *Forced) soleCandidate(g *domain.Grid, r, c int) (domain.Cell, bool) {
	var last domain.Cell
	count := 0
	for v := domain.Cell(0); v <= 1; v++ {
		if h.Rules.Check(g.Set(r, c, v)) {
			count++
			last = v
		}
	}
	return last, count == 1
}
