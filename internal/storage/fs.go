package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"svw.info/takuzu/internal/domain"
)

// FS persists grids as canonical CSV files under a directory, keyed by
// name. Parent directories are created on save.
type FS struct{ dir string }

func NewFS(dir string) *FS { return &FS{dir: dir} }

func (s *FS) pathFor(name string) string {
	return filepath.Join(s.dir, strings.TrimSpace(name)+".csv")
}

func (s *FS) Save(ctx context.Context, name string, g *domain.Grid) error {
	if strings.TrimSpace(name) == "" {
		return errors.New("invalid grid name")
	}
	target := s.pathFor(name)
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return err
	}
	data, err := g.MarshalText()
	if err != nil {
		return err
	}
	return os.WriteFile(target, data, 0o644)
}

func (s *FS) Load(ctx context.Context, name string) (*domain.Grid, error) {
	f, err := os.Open(s.pathFor(name))
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return domain.ParseCSV(f)
}

func (s *FS) List(ctx context.Context) ([]string, error) {
	ents, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var out []string
	for _, e := range ents {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		out = append(out, strings.TrimSuffix(e.Name(), ".csv"))
	}
	return out, nil
}
