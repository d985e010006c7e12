package usecase

import (
	"context"
	"errors"

	"svw.info/takuzu/internal/domain"
	"svw.info/takuzu/internal/enumerate"
	"svw.info/takuzu/internal/generator"
	"svw.info/takuzu/internal/ports"
)

// Service aggregates the puzzle operations behind their ports.
type Service struct {
	Enum      *enumerate.Enumerator
	Generator *generator.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Store     ports.Store
}

func NewService(e *enumerate.Enumerator, g *generator.Generator, v ports.Validator, h ports.Hinter, st ports.Store) *Service {
	return &Service{Enum: e, Generator: g, Validator: v, Hinter: h, Store: st}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) SolveOne(ctx context.Context, g *domain.Grid) (*domain.Grid, bool, ports.Stats, error) {
	if u.Enum == nil {
		return nil, false, ports.Stats{}, errNotConfigured
	}
	return u.Enum.SolveOne(ctx, g)
}

func (u *Service) SolveAll(ctx context.Context, g *domain.Grid) ([]*domain.Grid, ports.Stats, error) {
	if u.Enum == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Enum.SolveAll(ctx, g)
}

func (u *Service) Unique(ctx context.Context, g *domain.Grid) (bool, ports.Stats, error) {
	if u.Enum == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Enum.Unique(ctx, g)
}

func (u *Service) Generate(ctx context.Context, seed int64, size int, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, size, d)
}

func (u *Service) Check(g *domain.Grid) (bool, error) {
	if u.Validator == nil {
		return false, errNotConfigured
	}
	return u.Validator.Check(g), nil
}

func (u *Service) Verify(g *domain.Grid) error {
	if u.Validator == nil {
		return errNotConfigured
	}
	return u.Validator.Verify(g)
}

func (u *Service) Hint(ctx context.Context, g *domain.Grid) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g)
}

// Persistence
func (u *Service) Save(ctx context.Context, name string, g *domain.Grid) error {
	if u.Store == nil {
		return errNotConfigured
	}
	return u.Store.Save(ctx, name, g)
}
func (u *Service) Load(ctx context.Context, name string) (*domain.Grid, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.Load(ctx, name)
}
func (u *Service) List(ctx context.Context) ([]string, error) {
	if u.Store == nil {
		return nil, errNotConfigured
	}
	return u.Store.List(ctx)
}
