package procedure

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

const procCols = `id, source, date, name, provider, facility, outcome, created_at`

func (r *repoPG) Create(ctx context.Context, p *Procedure) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO procedures (source, date, name, provider, facility, outcome)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at`,
		p.Source, p.Date, p.Name, p.Provider, p.Facility, p.Outcome,
	).Scan(&p.ID, &p.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Procedure, error) {
	return scanProc(r.conn(ctx).QueryRow(ctx,
		`SELECT `+procCols+` FROM procedures WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Procedure, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM procedures`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+procCols+` FROM procedures ORDER BY date, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	procs, err := collectProcs(rows)
	return procs, total, err
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Procedure, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+procCols+` FROM procedures ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectProcs(rows)
}

func scanProc(row pgx.Row) (*Procedure, error) {
	var p Procedure
	err := row.Scan(&p.ID, &p.Source, &p.Date, &p.Name, &p.Provider, &p.Facility, &p.Outcome, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func collectProcs(rows pgx.Rows) ([]*Procedure, error) {
	var procs []*Procedure
	for rows.Next() {
		var p Procedure
		if err := rows.Scan(&p.ID, &p.Source, &p.Date, &p.Name, &p.Provider, &p.Facility, &p.Outcome, &p.CreatedAt); err != nil {
			return nil, err
		}
		procs = append(procs, &p)
	}
	return procs, rows.Err()
}
