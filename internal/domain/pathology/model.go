package pathology

import "time"

// Report is one tissue/specimen analysis result. Date is the normalized
// report date. ProcedureID is nil until the linker assigns the report to a
// procedure; once set it is never cleared by a later pass.
type Report struct {
	ID                     int64     `json:"id"`
	Source                 string    `json:"source"`
	Date                   string    `json:"date"`
	Specimen               string    `json:"specimen"`
	Diagnosis              string    `json:"diagnosis"`
	GrossDescription       string    `json:"gross_description"`
	MicroscopicDescription string    `json:"microscopic_description"`
	Staging                string    `json:"staging"`
	Margins                string    `json:"margins"`
	LymphNodes             string    `json:"lymph_nodes"`
	FullText               string    `json:"full_text,omitempty"`
	ProcedureID            *int64    `json:"procedure_id"`
	CreatedAt              time.Time `json:"created_at"`
}
