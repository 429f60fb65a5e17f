package assembly

import (
	"fmt"
	"path/filepath"
	"strings"
)

// AssembleCV replaces the two CV markers: the summary marker with the summary
// text (escaped unless rawLaTeX) and the projects marker with one \input line
// per selected project path, in selection order. Every other template line
// passes through unchanged. Verify runs first, so a missing or duplicated
// marker fails before anything is substituted.
func AssembleCV(template, summary string, projectPaths []string, rawLaTeX bool) (string, error) {
	if err := Verify(template, CVPlaceholders()); err != nil {
		return "", err
	}

	inputs := make([]string, len(projectPaths))
	for i, path := range projectPaths {
		inputs[i] = fmt.Sprintf(`\input{%s}`, filepath.ToSlash(path))
	}

	body := strings.TrimSpace(summary)
	if !rawLaTeX {
		body = EscapeLaTeX(body)
	}

	lines := strings.Split(template, "\n")
	out := make([]string, 0, len(lines)+len(inputs))
	for _, line := range lines {
		switch {
		case isMarkerLine(line, SummaryPlaceholder):
			out = append(out, body)
		case isMarkerLine(line, ProjectsPlaceholder):
			out = append(out, inputs...)
		default:
			out = append(out, line)
		}
	}

	return strings.Join(out, "\n"), nil
}

// AssembleCoverLetter replaces the cover-letter body marker with the body
// text, escaped unless rawLaTeX.
func AssembleCoverLetter(template, body string, rawLaTeX bool) (string, error) {
	if err := Verify(template, CoverLetterPlaceholders()); err != nil {
		return "", err
	}

	text := strings.TrimSpace(body)
	if !rawLaTeX {
		text = EscapeLaTeX(text)
	}

	lines := strings.Split(template, "\n")
	for i, line := range lines {
		if isMarkerLine(line, BodyPlaceholder) {
			lines[i] = text
			break
		}
	}

	return strings.Join(lines, "\n"), nil
}
