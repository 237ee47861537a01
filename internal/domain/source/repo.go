package source

import "context"

type Repository interface {
	RecordLoad(ctx context.Context, log *LoadLog) error
	ListLoads(ctx context.Context) ([]*LoadLog, error)
	LastLoad(ctx context.Context, source string) (*LoadLog, error)
	Sources(ctx context.Context) ([]string, error)
}
