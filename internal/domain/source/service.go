package source

import (
	"context"
	"fmt"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) RecordLoad(ctx context.Context, log *LoadLog) error {
	if log.Source == "" {
		return fmt.Errorf("source is required")
	}
	return s.repo.RecordLoad(ctx, log)
}

func (s *Service) ListLoads(ctx context.Context) ([]*LoadLog, error) {
	return s.repo.ListLoads(ctx)
}

func (s *Service) LastLoad(ctx context.Context, src string) (*LoadLog, error) {
	if src == "" {
		return nil, fmt.Errorf("source is required")
	}
	return s.repo.LastLoad(ctx, src)
}

func (s *Service) Sources(ctx context.Context) ([]string, error) {
	return s.repo.Sources(ctx)
}
