package types

import "time"

// OutputBundle describes the files written for one company/role application.
// Paths are absolute. Empty fields mean the artifact was not produced.
type OutputBundle struct {
	OutputDir string `json:"output_dir"`

	CVSource string `json:"cv_source"`
	CVPDF    string `json:"cv_pdf,omitempty"`

	CoverLetterSource string `json:"cover_letter_source,omitempty"`
	CoverLetterPDF    string `json:"cover_letter_pdf,omitempty"`

	NotesFile string `json:"notes_file"`
}

// NotesMetadata is what the notes file records about a generation run.
type NotesMetadata struct {
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	JobLink     string    `json:"job_link"`
	RunID       string    `json:"run_id"`
	GeneratedAt time.Time `json:"generated_at"`
}
