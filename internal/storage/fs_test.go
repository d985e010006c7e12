package storage

import (
	"context"
	"testing"

	"svw.info/takuzu/internal/domain"
)

const u = domain.Unknown

func TestSaveLoadList(t *testing.T) {
	dir := t.TempDir()
	s := NewFS(dir)
	ctx := context.Background()

	g, err := domain.New([][]domain.Cell{
		{0, u, 1, u},
		{u, u, u, u},
		{1, 0, u, 1},
		{u, 1, 0, u},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := s.Save(ctx, "daily", g); err != nil {
		t.Fatalf("Save: %v", err)
	}
	back, err := s.Load(ctx, "daily")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !g.Equal(back) {
		t.Fatal("stored grid round trip changed content")
	}

	names, err := s.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(names) != 1 || names[0] != "daily" {
		t.Fatalf("List = %v, want [daily]", names)
	}
}

func TestSaveRejectsEmptyName(t *testing.T) {
	s := NewFS(t.TempDir())
	g, _ := domain.Empty(4)
	if err := s.Save(context.Background(), "  ", g); err == nil {
		t.Fatal("empty name accepted")
	}
}

func TestListMissingDir(t *testing.T) {
	s := NewFS(t.TempDir() + "/nope")
	names, err := s.List(context.Background())
	if err != nil || names != nil {
		t.Fatalf("List on missing dir = %v, %v; want empty", names, err)
	}
}

func TestLoadMissing(t *testing.T) {
	s := NewFS(t.TempDir())
	if _, err := s.Load(context.Background(), "absent"); err == nil {
		t.Fatal("missing grid loaded without error")
	}
}
