package source

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

// LoadLog records one import batch from a source system. It backs the
// provenance view and the coverage matrix; engine passes never modify it.
type LoadLog struct {
	ID              int64     `json:"id"`
	BatchID         uuid.UUID `json:"batch_id"`
	Source          string    `json:"source"`
	LoadedAt        time.Time `json:"loaded_at"`
	DurationSeconds float64   `json:"duration_seconds"`

	EncountersCount       int `json:"encounters_count"`
	ProceduresCount       int `json:"procedures_count"`
	PathologyReportsCount int `json:"pathology_reports_count"`
	LabResultsCount       int `json:"lab_results_count"`
	MedicationsCount      int `json:"medications_count"`
	ImagingReportsCount   int `json:"imaging_reports_count"`
}

var nonAlnum = regexp.MustCompile(`[^a-z0-9]+`)

// Subdirectories that vendor exports commonly nest their documents under.
// When the input path ends in one of these, the parent directory carries
// the meaningful name.
var commonSubdirs = map[string]bool{
	"ccda":         true,
	"document_xml": true,
	"ihe_xdm":      true,
}

// DeriveSourceName builds a stable source tag from an export directory and
// a source system type, e.g. "/exports/anderson/" + "epic" gives
// "epic_anderson". The directory name is lower-cased with runs of
// non-alphanumeric characters collapsed to single underscores.
func DeriveSourceName(inputDir, sourceType string) string {
	path := filepath.Clean(inputDir)
	dir := filepath.Base(path)
	if commonSubdirs[strings.ToLower(dir)] {
		dir = filepath.Base(filepath.Dir(path))
	}
	if dir == string(os.PathSeparator) || dir == "." {
		dir = ""
	}

	normalized := strings.Trim(nonAlnum.ReplaceAllString(strings.ToLower(dir), "_"), "_")
	if normalized == "" {
		normalized = "unknown"
	}
	return sourceType + "_" + normalized
}
