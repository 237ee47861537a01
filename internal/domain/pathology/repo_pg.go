package pathology

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

const repCols = `id, source, date, specimen, diagnosis, gross_description,
	microscopic_description, staging, margins, lymph_nodes, full_text,
	procedure_id, created_at`

func (r *repoPG) Create(ctx context.Context, rep *Report) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO pathology_reports (
			source, date, specimen, diagnosis, gross_description,
			microscopic_description, staging, margins, lymph_nodes, full_text
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
		RETURNING id, created_at`,
		rep.Source, rep.Date, rep.Specimen, rep.Diagnosis, rep.GrossDescription,
		rep.MicroscopicDescription, rep.Staging, rep.Margins, rep.LymphNodes, rep.FullText,
	).Scan(&rep.ID, &rep.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Report, error) {
	return scanReport(r.conn(ctx).QueryRow(ctx,
		`SELECT `+repCols+` FROM pathology_reports WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Report, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM pathology_reports`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+repCols+` FROM pathology_reports ORDER BY date, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	reps, err := collectReports(rows)
	return reps, total, err
}

func (r *repoPG) ListUnlinked(ctx context.Context) ([]*Report, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+repCols+` FROM pathology_reports WHERE procedure_id IS NULL ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

func (r *repoPG) ListByProcedure(ctx context.Context, procedureID int64) ([]*Report, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+repCols+` FROM pathology_reports WHERE procedure_id = $1 ORDER BY id`, procedureID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

func (r *repoPG) SetProcedureID(ctx context.Context, reportID, procedureID int64) error {
	_, err := r.conn(ctx).Exec(ctx, `
		UPDATE pathology_reports SET procedure_id = $2
		WHERE id = $1 AND procedure_id IS NULL`,
		reportID, procedureID)
	return err
}

func scanReport(row pgx.Row) (*Report, error) {
	var rep Report
	err := row.Scan(
		&rep.ID, &rep.Source, &rep.Date, &rep.Specimen, &rep.Diagnosis, &rep.GrossDescription,
		&rep.MicroscopicDescription, &rep.Staging, &rep.Margins, &rep.LymphNodes, &rep.FullText,
		&rep.ProcedureID, &rep.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &rep, nil
}

func collectReports(rows pgx.Rows) ([]*Report, error) {
	var reps []*Report
	for rows.Next() {
		var rep Report
		err := rows.Scan(
			&rep.ID, &rep.Source, &rep.Date, &rep.Specimen, &rep.Diagnosis, &rep.GrossDescription,
			&rep.MicroscopicDescription, &rep.Staging, &rep.Margins, &rep.LymphNodes, &rep.FullText,
			&rep.ProcedureID, &rep.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		reps = append(reps, &rep)
	}
	return reps, rows.Err()
}
