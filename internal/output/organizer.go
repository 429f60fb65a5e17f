package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/obarouni/cv-builder/internal/types"
)

// NotesFileName is the per-application metadata file.
const NotesFileName = "job-notes.md"

// Organizer places generated artifacts under JobsDir, keyed by sanitized
// company and role names. Re-running generation for the same pair overwrites
// the previous artifacts.
type Organizer struct {
	JobsDir       string
	CandidateName string
}

// Prepare resolves and creates the output directory for one application.
func (o Organizer) Prepare(company, role string) (string, error) {
	if role == "" {
		role = "general"
	}
	dir := filepath.Join(o.JobsDir, SanitizeName(company), SanitizeName(role))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return dir, nil
}

// CVPath returns the CV source path inside dir, e.g. Barouni_Omar_CV.tex.
func (o Organizer) CVPath(dir string) string {
	return filepath.Join(dir, FileStem(o.CandidateName)+"_CV.tex")
}

// CoverLetterPath returns the cover-letter source path inside dir.
func (o Organizer) CoverLetterPath(dir string) string {
	return filepath.Join(dir, FileStem(o.CandidateName)+"_Cover_Letter.tex")
}

// WriteNotes writes the notes file recording the job link and generation
// metadata. An existing notes file from a previous run is overwritten; the
// run ID tells the runs apart.
func (o Organizer) WriteNotes(dir string, meta types.NotesMetadata) (string, error) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("# Job Application Notes - %s\n\n", meta.Company))
	sb.WriteString(fmt.Sprintf("**Role:** %s\n", meta.Role))
	sb.WriteString(fmt.Sprintf("**Job Link:** %s\n", meta.JobLink))
	sb.WriteString(fmt.Sprintf("**Generated:** %s\n", meta.GeneratedAt.Format("2006-01-02 15:04")))
	sb.WriteString(fmt.Sprintf("**Run ID:** %s\n", meta.RunID))

	path := filepath.Join(dir, NotesFileName)
	if err := os.WriteFile(path, []byte(sb.String()), 0644); err != nil {
		return "", fmt.Errorf("failed to write notes file %s: %w", path, err)
	}
	return path, nil
}

// RemoveCoverLetterArtifacts deletes cover-letter files from a previous run.
// Called when the cover-letter toggle is off so a re-generated application
// does not keep a stale letter on disk.
func (o Organizer) RemoveCoverLetterArtifacts(dir string) {
	base := strings.TrimSuffix(o.CoverLetterPath(dir), ".tex")
	for _, ext := range []string{".tex", ".pdf", ".aux", ".out", ".log"} {
		_ = os.Remove(base + ext)
	}
}
