package takuzu

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestFacadeEndToEnd(t *testing.T) {
	g, err := Parse(strings.NewReader("0,0,,\n0,,,\n,,1,\n,,,\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if !Check(g) {
		t.Fatalf("clues inconsistent: %v", Verify(g))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	e := NewEnumerator(NewBacktrackingSolver())
	sol, ok, _, err := e.SolveOne(ctx, g)
	if err != nil || !ok {
		t.Fatalf("SolveOne: ok=%v err=%v", ok, err)
	}
	want, err := New([][]Cell{
		{0, 0, 1, 1},
		{0, 1, 0, 1},
		{1, 0, 1, 0},
		{1, 1, 0, 0},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !sol.Equal(want) {
		t.Fatalf("unexpected solution:\n%s", sol.Render())
	}
	if err := Verify(sol); err != nil {
		t.Fatalf("solution failed verification: %v", err)
	}
}

func TestFacadeShapeError(t *testing.T) {
	_, err := New([][]Cell{{0}})
	var se *ShapeError
	if !errors.As(err, &se) {
		t.Fatalf("want ShapeError, got %v", err)
	}
}

func TestFacadeDefaultBackend(t *testing.T) {
	g, err := Empty(4)
	if err != nil {
		t.Fatalf("Empty: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	sols, err := SolveAll(ctx, g)
	if err != nil {
		t.Fatalf("SolveAll: %v", err)
	}
	if len(sols) != 72 {
		t.Fatalf("default backend enumerated %d solutions, want 72", len(sols))
	}
}

func TestServiceWiring(t *testing.T) {
	svc := NewService(t.TempDir())
	g, err := Empty(4)
	if err != nil {
		t.Fatalf("Empty: %v", err)
	}
	if err := svc.Save(context.Background(), "blank", g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := svc.Load(context.Background(), "blank")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !g.Equal(back) {
		t.Fatal("service round trip changed the grid")
	}
	if ok, err := svc.Check(g); err != nil || !ok {
		t.Fatalf("Check via service = %v, %v", ok, err)
	}
}
