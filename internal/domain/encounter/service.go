package encounter

import (
	"context"
	"fmt"

	"github.com/chartfold/chartfold/internal/platform/dates"
)

type Service struct {
	repo             Repository
	defaultTolerance int
}

func NewService(repo Repository, defaultToleranceDays int) *Service {
	return &Service{repo: repo, defaultTolerance: defaultToleranceDays}
}

func (s *Service) Create(ctx context.Context, enc *Encounter) error {
	if enc.Source == "" {
		return fmt.Errorf("source is required")
	}
	enc.Date = dates.Normalize(enc.Date)
	return s.repo.Create(ctx, enc)
}

func (s *Service) Get(ctx context.Context, id int64) (*Encounter, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Encounter, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) ListBySource(ctx context.Context, source string, limit, offset int) ([]*Encounter, int, error) {
	return s.repo.ListBySource(ctx, source, limit, offset)
}

// Coalesced reads every encounter and returns the cross-source visit
// groups. toleranceDays < 0 selects the configured default.
func (s *Service) Coalesced(ctx context.Context, toleranceDays int) ([]Group, error) {
	if toleranceDays < 0 {
		toleranceDays = s.defaultTolerance
	}
	encs, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Coalesce(encs, toleranceDays), nil
}
