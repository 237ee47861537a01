package imaging

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/chartfold/chartfold/internal/platform/db"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

type querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

func (r *repoPG) conn(ctx context.Context) querier {
	if tx := db.TxFromContext(ctx); tx != nil {
		return tx
	}
	return r.pool
}

const imgCols = `id, source, date, study_name, modality, impression, created_at`

func (r *repoPG) Create(ctx context.Context, rep *Report) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO imaging_reports (source, date, study_name, modality, impression)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id, created_at`,
		rep.Source, rep.Date, rep.StudyName, rep.Modality, rep.Impression,
	).Scan(&rep.ID, &rep.CreatedAt)
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Report, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM imaging_reports`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+imgCols+` FROM imaging_reports ORDER BY date, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	reps, err := collectReports(rows)
	return reps, total, err
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Report, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+imgCols+` FROM imaging_reports ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

func collectReports(rows pgx.Rows) ([]*Report, error) {
	var reps []*Report
	for rows.Next() {
		var rep Report
		if err := rows.Scan(&rep.ID, &rep.Source, &rep.Date, &rep.StudyName, &rep.Modality, &rep.Impression, &rep.CreatedAt); err != nil {
			return nil, err
		}
		reps = append(reps, &rep)
	}
	return reps, rows.Err()
}
