package encounter

import "context"

type Repository interface {
	Create(ctx context.Context, enc *Encounter) error
	GetByID(ctx context.Context, id int64) (*Encounter, error)
	List(ctx context.Context, limit, offset int) ([]*Encounter, int, error)
	ListAll(ctx context.Context) ([]*Encounter, error)
	ListBySource(ctx context.Context, source string, limit, offset int) ([]*Encounter, int, error)
}
