package encounter

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

const encCols = `id, source, date, encounter_type, provider, facility, reason, created_at`

func (r *repoPG) Create(ctx context.Context, enc *Encounter) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO encounters (source, date, encounter_type, provider, facility, reason)
		VALUES ($1,$2,$3,$4,$5,$6)
		RETURNING id, created_at`,
		enc.Source, enc.Date, enc.EncounterType, enc.Provider, enc.Facility, enc.Reason,
	).Scan(&enc.ID, &enc.CreatedAt)
}

func (r *repoPG) GetByID(ctx context.Context, id int64) (*Encounter, error) {
	return scanEnc(r.conn(ctx).QueryRow(ctx,
		`SELECT `+encCols+` FROM encounters WHERE id = $1`, id))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Encounter, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM encounters`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+encCols+` FROM encounters ORDER BY date, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	encs, err := collectEncs(rows)
	return encs, total, err
}

func (r *repoPG) ListAll(ctx context.Context) ([]*Encounter, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+encCols+` FROM encounters ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEncs(rows)
}

func (r *repoPG) ListBySource(ctx context.Context, source string, limit, offset int) ([]*Encounter, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx,
		`SELECT COUNT(*) FROM encounters WHERE source = $1`, source).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+encCols+` FROM encounters WHERE source = $1 ORDER BY date, id LIMIT $2 OFFSET $3`,
		source, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	encs, err := collectEncs(rows)
	return encs, total, err
}

func scanEnc(row pgx.Row) (*Encounter, error) {
	var e Encounter
	err := row.Scan(&e.ID, &e.Source, &e.Date, &e.EncounterType, &e.Provider, &e.Facility, &e.Reason, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEncs(rows pgx.Rows) ([]*Encounter, error) {
	var encs []*Encounter
	for rows.Next() {
		var e Encounter
		if err := rows.Scan(&e.ID, &e.Source, &e.Date, &e.EncounterType, &e.Provider, &e.Facility, &e.Reason, &e.CreatedAt); err != nil {
			return nil, err
		}
		encs = append(encs, &e)
	}
	return encs, rows.Err()
}
