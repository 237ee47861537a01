package medication

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

func (s *Service) Create(ctx context.Context, m *Medication) error {
	if m.Source == "" {
		return fmt.Errorf("source is required")
	}
	if m.Name == "" {
		return fmt.Errorf("name is required")
	}
	m.StartDate = dates.Normalize(m.StartDate)
	m.StopDate = dates.Normalize(m.StopDate)
	return s.repo.Create(ctx, m)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*Medication, int, error) {
	return s.repo.List(ctx, limit, offset)
}

func (s *Service) Active(ctx context.Context) ([]*Medication, error) {
	return s.repo.ListActive(ctx)
}

func (s *Service) History(ctx context.Context, nameFilter string) ([]*Medication, error) {
	return s.repo.History(ctx, nameFilter)
}

// Reconciled reads every medication and builds the cross-source view.
func (s *Service) Reconciled(ctx context.Context) (Reconciliation, error) {
	meds, err := s.repo.ListAll(ctx)
	if err != nil {
		return Reconciliation{}, err
	}
	return Reconcile(meds), nil
}
