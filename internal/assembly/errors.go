// Package assembly fills LaTeX template placeholders with user-supplied text.
package assembly

import "fmt"

// MarkerError reports a template whose required marker line does not occur
// exactly once. Count distinguishes a missing marker (0) from a duplicated
// one (>1).
type MarkerError struct {
	Placeholder Placeholder
	Count       int
}

func (e *MarkerError) Error() string {
	if e.Count == 0 {
		return fmt.Sprintf("template is missing required marker %q (%s)", e.Placeholder.Marker, e.Placeholder.Name)
	}
	return fmt.Sprintf("template contains marker %q (%s) %d times, expected exactly once", e.Placeholder.Marker, e.Placeholder.Name, e.Count)
}

// TemplateNotFoundError reports that no template candidate exists for a job
// type.
type TemplateNotFoundError struct {
	JobType string
	Dir     string
}

func (e *TemplateNotFoundError) Error() string {
	return fmt.Sprintf("no template found for job type %q in %s", e.JobType, e.Dir)
}
