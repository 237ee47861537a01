package quality

import "github.com/chartfold/chartfold/internal/domain/labs"

// Coverage shows which tables hold data from which sources.
type Coverage struct {
	Sources []string                  `json:"sources"`
	Tables  map[string]map[string]int `json:"tables"`
	Summary map[string]int            `json:"summary"`
}

// Report is the combined data quality view.
type Report struct {
	DuplicateLabs  []labs.DuplicateGroup `json:"duplicate_labs"`
	Coverage       Coverage              `json:"coverage"`
	DuplicateCount int                   `json:"duplicate_count"`
}
