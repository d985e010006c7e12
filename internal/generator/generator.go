package generator

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/enumerate"
	"svw.info/takuzu/internal/ports"
)

// Generator creates puzzles with a unique solution: fill a full legal grid
// from a seeded random search, then carve clues away while uniqueness holds.
type Generator struct {
	Enum *enumerate.Enumerator
}

func New(e *enumerate.Enumerator) *Generator { return &Generator{Enum: e} }

// targetClues is the clue count carving aims for.
func targetClues(d domain.Difficulty, n int) int {
	cells := n * n
	switch d {
	case domain.Easy:
		return cells / 2
	case domain.Medium:
		return cells * 2 / 5
	default:
		return cells / 4 // Hard
	}
}

// Generate builds an n x n puzzle at the target difficulty. Carving is
// best-effort: on cancellation the puzzle carved so far is returned.
func (g *Generator) Generate(ctx context.Context, seed int64, n int, diff domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	start := time.Now()
	rng := rand.New(rand.NewSource(seed))

	full, err := fillRandom(ctx, rng, n)
	if err != nil {
		return nil, ports.Stats{Duration: time.Since(start)}, err
	}

	stats := ports.Stats{}
	puz := full
	positions := rng.Perm(n * n)
	target := targetClues(diff, n)
	for _, pos := range positions {
		if ctx.Err() != nil || puz.Clues() <= target {
			break
		}
		r, c := pos/n, pos%n
		carved := puz.Set(r, c, domain.Unknown)
		unique, st, err := g.Enum.Unique(ctx, carved)
		stats.Calls += st.Calls
		stats.Rejected += st.Rejected
		if err != nil {
			break
		}
		if unique {
			puz = carved
		}
	}

	stats.Duration = time.Since(start)
	return &domain.Puzzle{
		Seed:       seed,
		Difficulty: diff,
		Clues:      puz,
		Solution:   full,
	}, stats, nil
}

// fillRandom completes an empty grid into a full legal one by DFS in a
// seeded random value order, pruning on parity and triples and retrying on
// the rare duplicate-line dead end.
func fillRandom(ctx context.Context, rng *rand.Rand, n int) (*domain.Grid, error) {
	cells := make([]domain.Cell, n*n)
	var dfs func(pos int) bool
	dfs = func(pos int) bool {
		if ctx.Err() != nil {
			return false
		}
		if pos == n*n {
			return true
		}
		r, c := pos/n, pos%n
		vals := [2]domain.Cell{0, 1}
		if rng.Intn(2) == 1 {
			vals[0], vals[1] = vals[1], vals[0]
		}
		for _, v := range vals {
			if allowed(cells, n, r, c, v) {
				cells[pos] = v
				if dfs(pos + 1) {
					return true
				}
			}
		}
		cells[pos] = 0
		return false
	}
	if !dfs(0) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, errors.New("could not fill grid")
	}
	rows := make([][]domain.Cell, n)
	for r := range rows {
		rows[r] = cells[r*n : (r+1)*n]
	}
	return domain.New(rows)
}

// allowed checks the local constraints for placing v at (r, c), cells being
// filled in row-major order up to that position: value counts in the row
// and column stay within N/2, no triple ends at the cell, and a completed
// row or column duplicates no earlier one.
func allowed(cells []domain.Cell, n, r, c int, v domain.Cell) bool {
	count := 0
	for i := 0; i < c; i++ {
		if cells[r*n+i] == v {
			count++
		}
	}
	if count+1 > n/2 {
		return false
	}
	count = 0
	for i := 0; i < r; i++ {
		if cells[i*n+c] == v {
			count++
		}
	}
	if count+1 > n/2 {
		return false
	}
	if c >= 2 && cells[r*n+c-1] == v && cells[r*n+c-2] == v {
		return false
	}
	if r >= 2 && cells[(r-1)*n+c] == v && cells[(r-2)*n+c] == v {
		return false
	}
	if c == n-1 {
		for pr := 0; pr < r; pr++ {
			same := cells[pr*n+c] == v
			for i := 0; same && i < c; i++ {
				same = cells[pr*n+i] == cells[r*n+i]
			}
			if same {
				return false
			}
		}
	}
	if r == n-1 {
		for pc := 0; pc < c; pc++ {
			same := cells[r*n+pc] == v
			for i := 0; same && i < r; i++ {
				same = cells[i*n+pc] == cells[i*n+c]
			}
			if same {
				return false
			}
		}
	}
	return true
}
