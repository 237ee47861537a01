package procedure

import "time"

// Procedure is a surgical or clinical intervention imported from a source
// system. Date is a normalized YYYY-MM-DD string, empty when unknown.
type Procedure struct {
	ID        int64     `json:"id"`
	Source    string    `json:"source"`
	Date      string    `json:"date"`
	Name      string    `json:"name"`
	Provider  string    `json:"provider"`
	Facility  string    `json:"facility"`
	Outcome   string    `json:"outcome"`
	CreatedAt time.Time `json:"created_at"`
}
