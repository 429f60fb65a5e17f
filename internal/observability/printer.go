// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/obarouni/cv-builder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 8
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintCatalog outputs a human-readable summary of the resolved project
// catalog, including any loader warnings.
func (p *Printer) PrintCatalog(projects []types.Project, warnings []string) {
	var sb strings.Builder

	count := min(len(projects), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("%s - %s\n", projects[i].ID, projects[i].Name))
	}
	if len(projects) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("... and %d more\n", len(projects)-maxItemsToShow))
	}
	if len(projects) == 0 {
		sb.WriteString("(no projects found)\n")
	}

	for _, warning := range warnings {
		sb.WriteString(fmt.Sprintf("warning: %s\n", warning))
	}

	p.printBox(fmt.Sprintf("Project Catalog (%d)", len(projects)), strings.TrimRight(sb.String(), "\n"))
}

// PrintBundle outputs the files written for one application.
func (p *Printer) PrintBundle(bundle *types.OutputBundle) {
	if bundle == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Dir:   %s\n", bundle.OutputDir))
	sb.WriteString(fmt.Sprintf("CV:    %s\n", bundle.CVSource))
	if bundle.CVPDF != "" {
		sb.WriteString(fmt.Sprintf("PDF:   %s\n", bundle.CVPDF))
	}
	if bundle.CoverLetterSource != "" {
		sb.WriteString(fmt.Sprintf("CL:    %s\n", bundle.CoverLetterSource))
	}
	if bundle.CoverLetterPDF != "" {
		sb.WriteString(fmt.Sprintf("CLPDF: %s\n", bundle.CoverLetterPDF))
	}
	sb.WriteString(fmt.Sprintf("Notes: %s", bundle.NotesFile))

	p.printBox("Output Bundle", sb.String())
}

// PrintStep outputs a one-line progress message.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintStep(step, message string) {
	fmt.Fprintf(p.out, "[%s] %s\n", step, message)
}
