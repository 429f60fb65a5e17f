package assembly

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Template files are versioned: a _v1 candidate is preferred over the plain
// name so template edits can ship alongside the previous revision. The first
// existing candidate wins.

// ResolveCVTemplate finds the CV template for a job type in templateDir.
func ResolveCVTemplate(templateDir, jobType string) (string, error) {
	code := strings.ToLower(jobType)
	candidates := []string{
		fmt.Sprintf("template_%s_v1.tex", code),
		fmt.Sprintf("template_%s.tex", code),
	}
	return firstExisting(templateDir, jobType, candidates)
}

// ResolveCoverTemplate finds the cover-letter template for a job type,
// falling back to the generic cover letter when no type-specific one exists.
func ResolveCoverTemplate(templateDir, jobType string) (string, error) {
	code := strings.ToLower(jobType)
	candidates := []string{
		fmt.Sprintf("cover_letter_%s_v1.tex", code),
		fmt.Sprintf("cover_letter_%s.tex", code),
		"cover_letter_v1.tex",
		"cover_letter.tex",
	}
	return firstExisting(templateDir, jobType, candidates)
}

func firstExisting(dir, jobType string, names []string) (string, error) {
	for _, name := range names {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", &TemplateNotFoundError{JobType: jobType, Dir: dir}
}
