package pathology

import (
	"github.com/chartfold/chartfold/internal/platform/dates"
	"github.com/chartfold/chartfold/internal/platform/textmatch"
)

// LinkConfig holds the linker thresholds. Defaults come from config; the
// zero value is not usable.
type LinkConfig struct {
	MaxDays    int
	MinScore   float64
	DateWeight float64
	NameWeight float64
}

// DefaultLinkConfig returns the tuned thresholds for a single-patient,
// human-reviewed dataset.
func DefaultLinkConfig() LinkConfig {
	return LinkConfig{MaxDays: 14, MinScore: 0.2, DateWeight: 0.6, NameWeight: 0.4}
}

// ProcedureCandidate is the slice of a procedure the linker scores against.
type ProcedureCandidate struct {
	ID   int64
	Date string
	Name string
}

// Link is one accepted report-to-procedure assignment.
type Link struct {
	ReportID    int64 `json:"report_id"`
	ProcedureID int64 `json:"procedure_id"`
}

// ComputeLinks assigns each report its best candidate procedure by date
// proximity and specimen/diagnosis name similarity. Reports or candidates
// without a known date are skipped, as are candidates farther than
// cfg.MaxDays away. A candidate scores
//
//	cfg.DateWeight*(1 - gap/MaxDays) + cfg.NameWeight*Similarity(specimen+" "+diagnosis, name)
//
// and the report links to the highest-scoring candidate when that score
// strictly exceeds cfg.MinScore. On equal scores the earlier candidate in
// procs wins, so callers must supply a stable ordering. This is a greedy
// per-report match: one procedure may receive several reports, and no
// global re-optimization happens. Pure function; persisting the links is
// the caller's job.
func ComputeLinks(reports []*Report, procs []ProcedureCandidate, cfg LinkConfig) []Link {
	var links []Link
	for _, rep := range reports {
		if rep.Date == "" {
			continue
		}

		var best *ProcedureCandidate
		bestScore := 0.0

		for i := range procs {
			proc := &procs[i]
			if proc.Date == "" {
				continue
			}
			gap, ok := dates.DaysBetween(rep.Date, proc.Date)
			if !ok || gap > cfg.MaxDays {
				continue
			}

			dateScore := 1.0 - float64(gap)/float64(cfg.MaxDays)
			nameScore := textmatch.Similarity(rep.Specimen+" "+rep.Diagnosis, proc.Name)
			score := cfg.DateWeight*dateScore + cfg.NameWeight*nameScore

			if score > bestScore {
				bestScore = score
				best = proc
			}
		}

		if best != nil && bestScore > cfg.MinScore {
			links = append(links, Link{ReportID: rep.ID, ProcedureID: best.ID})
		}
	}
	return links
}
