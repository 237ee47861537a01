package procedure

import "context"

type Repository interface {
	Create(ctx context.Context, p *Procedure) error
	GetByID(ctx context.Context, id int64) (*Procedure, error)
	List(ctx context.Context, limit, offset int) ([]*Procedure, int, error)
	// ListAll returns every procedure ordered by date ascending, then id.
	// The stable ordering is what makes linker tie-breaks reproducible.
	ListAll(ctx context.Context) ([]*Procedure, error)
}
