package procedure

import (
	"context"
	"fmt"

	"github.com/chartfold/chartfold/internal/platform/dates"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) Create(ctx context.Context, p *Procedure) error {
	if p.Source == "" {
		return fmt.Errorf("source is required")
	}
	if p.Name == "" {
		return fmt.Errorf("name is required")
	}
	p.Date = dates.Normalize(p.Date)
	return s.repo.Create(ctx, p)
}

func (s *Service) Get(ctx context.Context, id int64) (*Procedure, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Procedure, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListAll(ctx context.Context) ([]*Procedure, error) {
	return s.repo.ListAll(ctx)
}
