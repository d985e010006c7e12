package generator

import (
	"context"
	"testing"
	"time"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/enumerate"
	"svw.info/takuzu/internal/solver"
	"svw.info/takuzu/internal/validator"
)

func TestGenerate4x4(t *testing.T) {
	e := enumerate.New(solver.NewBacktrackingSolver())
	g := New(e)
	v := validator.New()

	cases := []struct {
		name string
		diff domain.Difficulty
	}{
		{"easy", domain.Easy},
		{"medium", domain.Medium},
		{"hard", domain.Hard},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			p, st, err := g.Generate(ctx, 12345, 4, tc.diff)
			if err != nil {
				t.Fatalf("Generate(%s) failed: %v", tc.name, err)
			}
			t.Logf("%s: %d clues, %d solver calls in %v", tc.name, p.Clues.Clues(), st.Calls, st.Duration)

			if !p.Solution.Complete() || !v.Check(p.Solution) {
				t.Fatalf("solution is not a legal completion:\n%s", p.Solution.Render())
			}
			// every clue must come from the solution
			n := p.Clues.Size()
			for r := 0; r < n; r++ {
				for c := 0; c < n; c++ {
					if cell := p.Clues.At(r, c); cell.Known() && cell != p.Solution.At(r, c) {
						t.Fatalf("clue (%d,%d) disagrees with the solution", r, c)
					}
				}
			}
			unique, _, err := e.Unique(ctx, p.Clues)
			if err != nil {
				t.Fatalf("Unique: %v", err)
			}
			if !unique {
				t.Fatalf("generated puzzle is not unique:\n%s", p.Clues.Render())
			}
		})
	}
}

func TestGenerateDeterministicPerSeed(t *testing.T) {
	e := enumerate.New(solver.NewBacktrackingSolver())
	g := New(e)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	a, _, err := g.Generate(ctx, 7, 4, domain.Medium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	b, _, err := g.Generate(ctx, 7, 4, domain.Medium)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !a.Clues.Equal(b.Clues) || !a.Solution.Equal(b.Solution) {
		t.Fatal("same seed produced different puzzles")
	}
}
