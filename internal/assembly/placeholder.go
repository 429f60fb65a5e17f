package assembly

import "strings"

// Placeholder names one injection point in a template: a fixed sentinel
// comment line that generated text replaces. Each required placeholder must
// occur exactly once; Verify enforces that before any substitution runs.
type Placeholder struct {
	Name   string // stable identifier used in error messages
	Marker string // the exact sentinel comment line
}

// The CV template contract.
var (
	SummaryPlaceholder  = Placeholder{Name: "summary", Marker: "%% PASTE SUMMARY HERE"}
	ProjectsPlaceholder = Placeholder{Name: "projects", Marker: "%% PROJECT PATHS HERE"}
)

// The cover-letter template contract.
var BodyPlaceholder = Placeholder{Name: "body", Marker: "% PASTE HERE"}

// CVPlaceholders lists the placeholders a CV template must declare.
func CVPlaceholders() []Placeholder {
	return []Placeholder{SummaryPlaceholder, ProjectsPlaceholder}
}

// CoverLetterPlaceholders lists the placeholders a cover-letter template must
// declare.
func CoverLetterPlaceholders() []Placeholder {
	return []Placeholder{BodyPlaceholder}
}

// isMarkerLine reports whether a template line is the given marker. Leading
// and trailing whitespace is ignored; anything else on the line disqualifies
// it, so a marker mentioned inside prose does not count.
func isMarkerLine(line string, p Placeholder) bool {
	return strings.TrimSpace(line) == p.Marker
}

// countMarker counts marker lines for one placeholder.
func countMarker(lines []string, p Placeholder) int {
	count := 0
	for _, line := range lines {
		if isMarkerLine(line, p) {
			count++
		}
	}
	return count
}

// Verify is the pre-flight check: every required placeholder must occur as a
// marker line exactly once. The first violation is returned as a
// *MarkerError.
func Verify(template string, placeholders []Placeholder) error {
	lines := strings.Split(template, "\n")
	for _, p := range placeholders {
		if count := countMarker(lines, p); count != 1 {
			return &MarkerError{Placeholder: p, Count: count}
		}
	}
	return nil
}
