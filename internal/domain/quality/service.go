package quality

import (
	"context"
	"fmt"

	"github.com/chartfold/chartfold/internal/domain/labs"
)

type Service struct {
	repo Repository
	labs *labs.Service
}

func NewService(repo Repository, labSvc *labs.Service) *Service {
	return &Service{repo: repo, labs: labSvc}
}

// CoverageMatrix builds the per-table, per-source record counts plus a
// per-source total.
func (s *Service) CoverageMatrix(ctx context.Context) (Coverage, error) {
	sources, err := s.repo.Sources(ctx)
	if err != nil {
		return Coverage{}, fmt.Errorf("list sources: %w", err)
	}

	cov := Coverage{
		Sources: sources,
		Tables:  make(map[string]map[string]int, len(entityTables)),
		Summary: make(map[string]int, len(sources)),
	}
	for _, src := range sources {
		cov.Summary[src] = 0
	}

	for _, table := range entityTables {
		counts, err := s.repo.CountsBySource(ctx, table)
		if err != nil {
			return Coverage{}, fmt.Errorf("counts for %s: %w", table, err)
		}
		cov.Tables[table] = counts
		for src, n := range counts {
			if _, known := cov.Summary[src]; known {
				cov.Summary[src] += n
			}
		}
	}
	return cov, nil
}

// DataQuality runs every quality check and returns the combined view.
func (s *Service) DataQuality(ctx context.Context) (Report, error) {
	dupes, err := s.labs.Duplicates(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("duplicate labs: %w", err)
	}
	cov, err := s.CoverageMatrix(ctx)
	if err != nil {
		return Report{}, err
	}
	return Report{
		DuplicateLabs:  dupes,
		Coverage:       cov,
		DuplicateCount: len(dupes),
	}, nil
}
