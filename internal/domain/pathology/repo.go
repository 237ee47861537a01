package pathology

import "context"

type Repository interface {
	Create(ctx context.Context, rep *Report) error
	GetByID(ctx context.Context, id int64) (*Report, error)
	List(ctx context.Context, limit, offset int) ([]*Report, int, error)
	// ListUnlinked returns reports with no procedure_id, date ascending.
	// Linking passes read only this subset, which makes re-runs idempotent.
	ListUnlinked(ctx context.Context) ([]*Report, error)
	ListByProcedure(ctx context.Context, procedureID int64) ([]*Report, error)
	// SetProcedureID writes the one field the engine is allowed to mutate.
	SetProcedureID(ctx context.Context, reportID, procedureID int64) error
}
