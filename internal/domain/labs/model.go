package labs

import "time"

// LabResult is one reported lab value. Value keeps the raw string so
// operator-prefixed results like "<0.5" survive; ValueNumeric is the
// parsed form when one exists.
type LabResult struct {
	ID             int64     `json:"id"`
	Source         string    `json:"source"`
	Date           string    `json:"date"`
	TestName       string    `json:"test_name"`
	TestLOINC      string    `json:"test_loinc"`
	Value          string    `json:"value"`
	ValueNumeric   *float64  `json:"value_numeric"`
	Unit           string    `json:"unit"`
	RefRange       string    `json:"ref_range"`
	Interpretation string    `json:"interpretation"`
	CreatedAt      time.Time `json:"created_at"`
}

// DuplicateGroup is a same-test, same-date cluster reported by more than
// one source. ValueMatch is true only when every raw value string is
// byte-identical; no numeric tolerance or unit normalization is applied,
// so analysts see raw disagreement.
type DuplicateGroup struct {
	TestName   string       `json:"test_name"`
	Date       string       `json:"date"`
	Records    []*LabResult `json:"records"`
	ValueMatch bool         `json:"value_match"`
}

// TrendFilter selects a chronological series for one test. Exactly one of
// TestLOINC, TestNames, or TestName is used, in that priority order.
type TrendFilter struct {
	TestName  string
	TestLOINC string
	TestNames []string
	StartDate string
	EndDate   string
}
