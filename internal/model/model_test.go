package model

import (
	"testing"

	"svw.info/takuzu/internal/domain"
)

func mustGrid(t *testing.T, rows [][]domain.Cell) *domain.Grid {
	t.Helper()
	g, err := domain.New(rows)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return g
}

const u = domain.Unknown

func mustBuild(t *testing.T, g *domain.Grid) System {
	t.Helper()
	sys, err := Build(g)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return sys
}

func TestVarIDArena(t *testing.T) {
	// ids must be 1-based, dense, and unique over (row, col, value)
	n := 4
	seen := make(map[int]bool)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			for v := domain.Cell(0); v <= 1; v++ {
				id := VarID(n, r, c, v)
				if id < 1 || id > 2*n*n {
					t.Fatalf("VarID(%d,%d,%d) = %d out of range", r, c, v, id)
				}
				if seen[id] {
					t.Fatalf("VarID(%d,%d,%d) = %d collides", r, c, v, id)
				}
				seen[id] = true
			}
		}
	}
}

func TestBuildConstraintCounts(t *testing.T) {
	g := mustGrid(t, [][]domain.Cell{
		{0, u, u, u},
		{u, 1, u, u},
		{u, u, u, u},
		{u, u, u, u},
	})
	sys := mustBuild(t, g)
	if sys.Size != 4 || sys.NumVars != 32 {
		t.Fatalf("sys = %d vars over size %d, want 32 over 4", sys.NumVars, sys.Size)
	}
	// 16 exclusivity + 8 row parity + 8 col parity + 32 window bounds + 2 clues
	if want := 66; len(sys.Cons) != want {
		t.Fatalf("built %d constraints, want %d", len(sys.Cons), want)
	}
	eqs, atMosts := 0, 0
	for _, c := range sys.Cons {
		switch c.Rel {
		case Eq:
			eqs++
		case AtMost:
			atMosts++
		}
	}
	if eqs != 34 || atMosts != 32 {
		t.Fatalf("got %d Eq and %d AtMost constraints, want 34 and 32", eqs, atMosts)
	}
}

func TestClueFixation(t *testing.T) {
	g := mustGrid(t, [][]domain.Cell{
		{1, u, u, u},
		{u, u, u, u},
		{u, u, u, u},
		{u, u, u, u},
	})
	sys := mustBuild(t, g)
	last := sys.Cons[len(sys.Cons)-1]
	if last.Rel != Eq || last.Bound != 1 || len(last.Vars) != 1 {
		t.Fatalf("clue constraint malformed: %+v", last)
	}
	if want := VarID(4, 0, 0, 1); last.Vars[0] != want {
		t.Fatalf("clue fixes var %d, want %d", last.Vars[0], want)
	}
}

func TestBuildRejectsNonBinaryClue(t *testing.T) {
	// a known 2 has no variable; fixing it would pin a neighboring cell's var
	g := mustGrid(t, [][]domain.Cell{
		{2, u, u, u},
		{u, u, u, u},
		{u, u, u, u},
		{u, u, u, u},
	})
	if _, err := Build(g); err == nil {
		t.Fatal("Build accepted a non-binary clue")
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	g := mustGrid(t, [][]domain.Cell{
		{0, 0, 1, 1},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{1, 1, 0, 0},
	})
	sys := mustBuild(t, g)
	asg := make(Assignment, sys.NumVars)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			asg[VarID(4, r, c, g.At(r, c))-1] = true
		}
	}
	back, err := sys.Decode(asg)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !g.Equal(back) {
		t.Fatal("decode did not reproduce the grid")
	}
}

func TestDecodeRejectsExclusivityBreak(t *testing.T) {
	g := mustGrid(t, [][]domain.Cell{{u, u}, {u, u}})
	sys := mustBuild(t, g)
	asg := make(Assignment, sys.NumVars) // all false: cells bound to neither value
	if _, err := sys.Decode(asg); err == nil {
		t.Fatal("Decode accepted an assignment binding no value")
	}
}

func TestExclude(t *testing.T) {
	asg := Assignment{true, false, true, false}
	c := Exclude(asg)
	if c.Rel != AtMost || c.Bound != 1 {
		t.Fatalf("exclusion = %+v, want AtMost 1", c)
	}
	if len(c.Vars) != 2 || c.Vars[0] != 1 || c.Vars[1] != 3 {
		t.Fatalf("exclusion vars = %v, want [1 3]", c.Vars)
	}
}

func TestAndCopies(t *testing.T) {
	g := mustGrid(t, [][]domain.Cell{{u, u}, {u, u}})
	base := mustBuild(t, g)
	n := len(base.Cons)
	a := base.And(Constraint{Vars: []int{1}, Rel: AtMost, Bound: 0})
	b := base.And(Constraint{Vars: []int{2}, Rel: AtMost, Bound: 0})
	if len(base.Cons) != n {
		t.Fatal("And mutated the base system")
	}
	if a.Cons[n].Vars[0] != 1 || b.Cons[n].Vars[0] != 2 {
		t.Fatal("appended constraints aliased between systems")
	}
}
