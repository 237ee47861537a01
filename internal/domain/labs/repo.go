package labs

import "context"

type Repository interface {
	Create(ctx context.Context, r *LabResult) error
	List(ctx context.Context, limit, offset int) ([]*LabResult, int, error)
	ListAll(ctx context.Context) ([]*LabResult, error)
	// Trend returns the chronological series selected by the filter,
	// date ascending.
	Trend(ctx context.Context, f TrendFilter) ([]*LabResult, error)
	// Abnormal returns results with a non-empty interpretation flag,
	// newest first, optionally bounded by ISO dates.
	Abnormal(ctx context.Context, startDate, endDate string) ([]*LabResult, error)
}
