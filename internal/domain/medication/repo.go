package medication

import "context"

type Repository interface {
	Create(ctx context.Context, m *Medication) error
	List(ctx context.Context, limit, offset int) ([]*Medication, int, error)
	// ListAll returns every medication ordered by name, then id.
	ListAll(ctx context.Context) ([]*Medication, error)
	// ListActive returns rows whose status is "active" case-insensitively.
	ListActive(ctx context.Context) ([]*Medication, error)
	// History returns rows filtered by a partial, case-insensitive name.
	History(ctx context.Context, nameFilter string) ([]*Medication, error)
}
