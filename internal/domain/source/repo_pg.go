package source

import (
	"context"

	"github.com/google/uuid"
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

const loadCols = `id, batch_id, source, loaded_at, duration_seconds,
	encounters_count, procedures_count, pathology_reports_count,
	lab_results_count, medications_count, imaging_reports_count`

func (r *repoPG) RecordLoad(ctx context.Context, log *LoadLog) error {
	if log.BatchID == uuid.Nil {
		log.BatchID = uuid.New()
	}
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO load_log (
			batch_id, source, loaded_at, duration_seconds,
			encounters_count, procedures_count, pathology_reports_count,
			lab_results_count, medications_count, imaging_reports_count
		) VALUES ($1,$2,NOW(),$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, loaded_at`,
		log.BatchID, log.Source, log.DurationSeconds,
		log.EncountersCount, log.ProceduresCount, log.PathologyReportsCount,
		log.LabResultsCount, log.MedicationsCount, log.ImagingReportsCount,
	).Scan(&log.ID, &log.LoadedAt)
}

func (r *repoPG) ListLoads(ctx context.Context) ([]*LoadLog, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+loadCols+` FROM load_log ORDER BY loaded_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLoads(rows)
}

func (r *repoPG) LastLoad(ctx context.Context, source string) (*LoadLog, error) {
	return scanLoad(r.conn(ctx).QueryRow(ctx,
		`SELECT `+loadCols+` FROM load_log WHERE source = $1 ORDER BY loaded_at DESC LIMIT 1`,
		source))
}

func (r *repoPG) Sources(ctx context.Context) ([]string, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT DISTINCT source FROM load_log ORDER BY source`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sources []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		sources = append(sources, s)
	}
	return sources, rows.Err()
}

func scanLoad(row pgx.Row) (*LoadLog, error) {
	var l LoadLog
	err := row.Scan(
		&l.ID, &l.BatchID, &l.Source, &l.LoadedAt, &l.DurationSeconds,
		&l.EncountersCount, &l.ProceduresCount, &l.PathologyReportsCount,
		&l.LabResultsCount, &l.MedicationsCount, &l.ImagingReportsCount,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func collectLoads(rows pgx.Rows) ([]*LoadLog, error) {
	var logs []*LoadLog
	for rows.Next() {
		var l LoadLog
		err := rows.Scan(
			&l.ID, &l.BatchID, &l.Source, &l.LoadedAt, &l.DurationSeconds,
			&l.EncountersCount, &l.ProceduresCount, &l.PathologyReportsCount,
			&l.LabResultsCount, &l.MedicationsCount, &l.ImagingReportsCount,
		)
		if err != nil {
			return nil, err
		}
		logs = append(logs, &l)
	}
	return logs, rows.Err()
}
