package medication

import "time"

// Medication is one prescription row from a source system. StartDate and
// StopDate are normalized YYYY-MM-DD strings, empty when unknown. Status
// is free text; "active", "completed", and "stopped" are the common
// values but nothing is enforced.
type Medication struct {
	ID         int64     `json:"id"`
	Source     string    `json:"source"`
	Name       string    `json:"name"`
	RxNormCode string    `json:"rxnorm_code"`
	Status     string    `json:"status"`
	Sig        string    `json:"sig"`
	Route      string    `json:"route"`
	StartDate  string    `json:"start_date"`
	StopDate   string    `json:"stop_date"`
	Prescriber string    `json:"prescriber"`
	CreatedAt  time.Time `json:"created_at"`
}

// ActiveEntry is one stem group with at least one active member. Name is
// the first member's raw name; Sources and Statuses are the distinct sets
// seen across the group.
type ActiveEntry struct {
	Name     string   `json:"name"`
	Sources  []string `json:"sources"`
	Statuses []string `json:"statuses"`
}

// Discrepancy is a stem group whose members disagree on status. All rows
// are carried so the conflict can be reviewed manually.
type Discrepancy struct {
	Name    string        `json:"name"`
	Entries []*Medication `json:"entries"`
}

// Reconciliation is the cross-source medication view.
type Reconciliation struct {
	Active        []ActiveEntry `json:"active"`
	Discrepancies []Discrepancy `json:"discrepancies"`
}
