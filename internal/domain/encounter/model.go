package encounter

import "time"

// Encounter is one visit or admission record as imported from a source
// system. Date is a normalized YYYY-MM-DD string, empty when the source
// date could not be parsed. Source is assigned at import and never changes.
type Encounter struct {
	ID            int64     `json:"id"`
	Source        string    `json:"source"`
	Date          string    `json:"date"`
	EncounterType string    `json:"encounter_type"`
	Provider      string    `json:"provider"`
	Facility      string    `json:"facility"`
	Reason        string    `json:"reason"`
	CreatedAt     time.Time `json:"created_at"`
}

// Group is a set of encounters believed to describe one real-world visit
// reported by more than one source. Date is the seed date of the group.
type Group struct {
	Date       string       `json:"date"`
	Sources    []string     `json:"sources"`
	Encounters []*Encounter `json:"encounters"`
}
