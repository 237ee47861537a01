package imaging

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

func (s *Service) Create(ctx context.Context, rep *Report) error {
	if rep.Source == "" {
		return fmt.Errorf("source is required")
	}
	rep.Date = dates.Normalize(rep.Date)
	return s.repo.Create(ctx, rep)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Report, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListAll(ctx context.Context) ([]*Report, error) {
	return s.repo.ListAll(ctx)
}
