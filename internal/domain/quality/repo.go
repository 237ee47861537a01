package quality

import "context"

// entityTables are the record tables that participate in the coverage
// matrix. load_log is excluded; it is the audit trail, not patient data.
var entityTables = []string{
	"encounters",
	"procedures",
	"pathology_reports",
	"lab_results",
	"medications",
	"imaging_reports",
}

type Repository interface {
	// Sources returns the distinct source tags known to the load log,
	// falling back to tags discovered in the record tables when no loads
	// were logged.
	Sources(ctx context.Context) ([]string, error)
	// CountsBySource returns per-source row counts for one record table.
	CountsBySource(ctx context.Context, table string) (map[string]int, error)
}
