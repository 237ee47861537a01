package timeline

// Entry is one procedure with everything the engine can relate to it.
type Entry struct {
	Procedure   ProcedureView    `json:"procedure"`
	Pathology   *PathologyView   `json:"pathology"`
	Imaging     []ImagingView    `json:"related_imaging"`
	Medications []MedicationView `json:"related_medications"`
}

type ProcedureView struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Date     string `json:"date"`
	Provider string `json:"provider"`
	Facility string `json:"facility"`
	Source   string `json:"source"`
}

type PathologyView struct {
	ID         int64  `json:"id"`
	Diagnosis  string `json:"diagnosis"`
	Staging    string `json:"staging"`
	Margins    string `json:"margins"`
	LymphNodes string `json:"lymph_nodes"`
	Source     string `json:"source"`
	FullText   string `json:"full_text,omitempty"`
}

// ImagingView is a study inside the procedure's window. Timing is
// "pre-op", "post-op", or "same-day" relative to the procedure date.
type ImagingView struct {
	ID         int64  `json:"id"`
	Study      string `json:"study"`
	Modality   string `json:"modality"`
	Date       string `json:"date"`
	Impression string `json:"impression"`
	Source     string `json:"source"`
	Timing     string `json:"timing"`
}

type MedicationView struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}
