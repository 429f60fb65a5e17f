package types

// ApplicationRecord holds everything collected from the form (or flags) for a
// single generation run. It is never persisted; only the files derived from
// it are.
type ApplicationRecord struct {
	JobType  string `json:"job_type" validate:"required"`
	Company  string `json:"company" validate:"required"`
	Role     string `json:"role" validate:"required"`
	JobLink  string `json:"job_link" validate:"required"`
	Summary  string `json:"summary" validate:"required"`
	RawLaTeX bool   `json:"raw_latex"`

	// Selected project IDs, in the order the user picked them.
	ProjectIDs []string `json:"project_ids" validate:"required,min=1,max=4"`

	IncludeCoverLetter bool   `json:"include_cover_letter"`
	CoverLetterBody    string `json:"cover_letter_body" validate:"required_if=IncludeCoverLetter true"`

	// The cover letter has its own compile/open pair so it can be kept as
	// source while the CV is compiled, or vice versa.
	CoverLetterCompile bool `json:"cover_letter_compile"`
	CoverLetterOpen    bool `json:"cover_letter_open"`

	Compile    bool `json:"compile"`
	CleanJunk  bool `json:"clean_junk"`
	OpenPDF    bool `json:"open_pdf"`
	OpenFolder bool `json:"open_folder"`
}
