package imaging

import "time"

// Report is one imaging study result from a source system. Date is the
// normalized study date, empty when unknown.
type Report struct {
	ID         int64     `json:"id"`
	Source     string    `json:"source"`
	Date       string    `json:"date"`
	StudyName  string    `json:"study_name"`
	Modality   string    `json:"modality"`
	Impression string    `json:"impression"`
	CreatedAt  time.Time `json:"created_at"`
}
