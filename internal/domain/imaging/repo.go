package imaging

import "context"

type Repository interface {
	Create(ctx context.Context, rep *Report) error
	List(ctx context.Context, limit, offset int) ([]*Report, int, error)
	// ListAll returns every study ordered by date ascending, then id.
	ListAll(ctx context.Context) ([]*Report, error)
}
