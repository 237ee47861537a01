package quality

import (
	"context"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct {
	pool *pgxpool.Pool
}

func NewRepo(pool *pgxpool.Pool) Repository {
	return &repoPG{pool: pool}
}

func (r *repoPG) Sources(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT DISTINCT source FROM load_log ORDER BY source`)
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
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(sources) > 0 {
		return sources, nil
	}

	// No loads logged; discover sources from the record tables instead.
	seen := make(map[string]bool)
	for _, table := range entityTables {
		trows, err := r.pool.Query(ctx, `SELECT DISTINCT source FROM `+table)
		if err != nil {
			return nil, err
		}
		for trows.Next() {
			var s string
			if err := trows.Scan(&s); err != nil {
				trows.Close()
				return nil, err
			}
			if s != "" {
				seen[s] = true
			}
		}
		if err := trows.Err(); err != nil {
			trows.Close()
			return nil, err
		}
		trows.Close()
	}
	for s := range seen {
		sources = append(sources, s)
	}
	sort.Strings(sources)
	return sources, nil
}

func (r *repoPG) CountsBySource(ctx context.Context, table string) (map[string]int, error) {
	rows, err := r.pool.Query(ctx, `SELECT source, COUNT(*) FROM `+table+` GROUP BY source`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var src string
		var n int
		if err := rows.Scan(&src, &n); err != nil {
			return nil, err
		}
		counts[src] = n
	}
	return counts, rows.Err()
}
