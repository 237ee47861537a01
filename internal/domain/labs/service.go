package labs

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

func (s *Service) Create(ctx context.Context, lab *LabResult) error {
	if lab.Source == "" {
		return fmt.Errorf("source is required")
	}
	if lab.TestName == "" {
		return fmt.Errorf("test_name is required")
	}
	lab.Date = dates.Normalize(lab.Date)
	if lab.ValueNumeric == nil {
		if f, ok := TryParseNumeric(lab.Value); ok {
			lab.ValueNumeric = &f
		}
	}
	return s.repo.Create(ctx, lab)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]*LabResult, int, error) {
	return s.repo.List(ctx, limit, offset)
}

// Duplicates reads every result and returns the cross-source same-test,
// same-date groups.
func (s *Service) Duplicates(ctx context.Context) ([]DuplicateGroup, error) {
	results, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return FindDuplicates(results), nil
}

func (s *Service) Trend(ctx context.Context, f TrendFilter) ([]*LabResult, error) {
	return s.repo.Trend(ctx, f)
}

func (s *Service) Abnormal(ctx context.Context, startDate, endDate string) ([]*LabResult, error) {
	return s.repo.Abnormal(ctx, startDate, endDate)
}
