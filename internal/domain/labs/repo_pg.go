package labs

import (
	"context"
	"fmt"
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

const labCols = `id, source, date, test_name, test_loinc, value, value_numeric,
	unit, ref_range, interpretation, created_at`

func (r *repoPG) Create(ctx context.Context, lab *LabResult) error {
	return r.conn(ctx).QueryRow(ctx, `
		INSERT INTO lab_results (
			source, date, test_name, test_loinc, value, value_numeric,
			unit, ref_range, interpretation
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
		RETURNING id, created_at`,
		lab.Source, lab.Date, lab.TestName, lab.TestLOINC, lab.Value, lab.ValueNumeric,
		lab.Unit, lab.RefRange, lab.Interpretation,
	).Scan(&lab.ID, &lab.CreatedAt)
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*LabResult, int, error) {
	var total int
	if err := r.conn(ctx).QueryRow(ctx, `SELECT COUNT(*) FROM lab_results`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+labCols+` FROM lab_results ORDER BY date, id LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	labs, err := collectLabs(rows)
	return labs, total, err
}

func (r *repoPG) ListAll(ctx context.Context) ([]*LabResult, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+labCols+` FROM lab_results ORDER BY date, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLabs(rows)
}

func (r *repoPG) Trend(ctx context.Context, f TrendFilter) ([]*LabResult, error) {
	var conds []string
	var args []interface{}
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	switch {
	case f.TestLOINC != "":
		conds = append(conds, "test_loinc = "+arg(f.TestLOINC))
	case len(f.TestNames) > 0:
		names := make([]string, len(f.TestNames))
		for i, n := range f.TestNames {
			names[i] = "LOWER(test_name) = " + arg(strings.ToLower(n))
		}
		conds = append(conds, "("+strings.Join(names, " OR ")+")")
	case f.TestName != "":
		conds = append(conds, "LOWER(test_name) LIKE "+arg("%"+strings.ToLower(f.TestName)+"%"))
	default:
		return nil, nil
	}

	if f.StartDate != "" {
		conds = append(conds, "date >= "+arg(f.StartDate))
	}
	if f.EndDate != "" {
		conds = append(conds, "date <= "+arg(f.EndDate))
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+labCols+` FROM lab_results WHERE `+strings.Join(conds, " AND ")+` ORDER BY date, id`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLabs(rows)
}

func (r *repoPG) Abnormal(ctx context.Context, startDate, endDate string) ([]*LabResult, error) {
	conds := []string{"interpretation != ''"}
	var args []interface{}
	if startDate != "" {
		args = append(args, startDate)
		conds = append(conds, fmt.Sprintf("date >= $%d", len(args)))
	}
	if endDate != "" {
		args = append(args, endDate)
		conds = append(conds, fmt.Sprintf("date <= $%d", len(args)))
	}

	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+labCols+` FROM lab_results WHERE `+strings.Join(conds, " AND ")+` ORDER BY date DESC, id`,
		args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectLabs(rows)
}

func collectLabs(rows pgx.Rows) ([]*LabResult, error) {
	var labs []*LabResult
	for rows.Next() {
		var l LabResult
		err := rows.Scan(
			&l.ID, &l.Source, &l.Date, &l.TestName, &l.TestLOINC, &l.Value, &l.ValueNumeric,
			&l.Unit, &l.RefRange, &l.Interpretation, &l.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		labs = append(labs, &l)
	}
	return labs, rows.Err()
}
