// Package compiler shells out to an external LaTeX toolchain to turn
// assembled .tex sources into PDFs.
package compiler

import (
	"errors"
	"fmt"
)

// ErrNoCompiler means neither latexmk nor pdflatex is installed.
var ErrNoCompiler = errors.New("no LaTeX compiler found in PATH (tried latexmk, pdflatex); install a TeX distribution such as TeX Live or MiKTeX")

// CompilationError represents a failed compiler run, carrying the captured
// log output for diagnostics.
type CompilationError struct {
	Message   string
	LogOutput string
	Cause     error
}

func (e *CompilationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("compilation error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("compilation error: %s", e.Message)
}

func (e *CompilationError) Unwrap() error {
	return e.Cause
}
