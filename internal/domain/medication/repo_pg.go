package medication

import (
	"context"
	"strings"

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

const medCols = `id, source, name, rxnorm_code, status, sig, route,
	start_date, stop_date, prescriber, created_at`

func (r *repoPG) Create(ctx context.Context, m *Medication) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO medications (
			source, name, rxnorm_code, status, sig, route,
			start_date, stop_date, prescriber
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at`,
		m.Source, m.Name, m.RxNormCode, m.Status, m.Sig, m.Route,
		m.StartDate, m.StopDate, m.Prescriber,
	).Scan(&m.ID, &m.CreatedAt)
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Medication, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM medications`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+medCols+` FROM medications ORDER BY name, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	meds, err := collectMeds(rows)
	return meds, total, err
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Medication, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+medCols+` FROM medications ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMeds(rows)
}

func (r *repoPG) ListActive(ctx context.Context) ([]*Medication, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+medCols+` FROM medications WHERE LOWER(status) = 'active' ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMeds(rows)
}

func (r *repoPG) History(ctx context.Context, nameFilter string) ([]*Medication, error) {
	if nameFilter == "" {
		rows, err := r.conn(ctx).Query(ctx,
			`SELECT `+medCols+` FROM medications ORDER BY status, name, id`)
		if err != nil {
			return nil, err
		}
		defer rows.Close()
		return collectMeds(rows)
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+medCols+` FROM medications WHERE LOWER(name) LIKE $1 ORDER BY start_date DESC, id`,
		"%"+strings.ToLower(nameFilter)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMeds(rows)
}

func collectMeds(rows pgx.Rows) ([]*Medication, error) {
	var meds []*Medication
	for rows.Next() {
		var m Medication
		err := rows.Scan(
			&m.ID, &m.Source, &m.Name, &m.RxNormCode, &m.Status, &m.Sig, &m.Route,
			&m.StartDate, &m.StopDate, &m.Prescriber, &m.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		meds = append(meds, &m)
	}
	return meds, rows.Err()
}
