package compiler

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// DefaultTimeout bounds one compiler invocation. A misconfigured TeX install
// can sit waiting for interactive input; the run must never hang.
const DefaultTimeout = 120 * time.Second

// pdflatexPasses is how many times the fallback compiler runs, so references
// resolve without latexmk's dependency tracking.
const pdflatexPasses = 2

// Compiler invokes latexmk, falling back to pdflatex when latexmk is absent
// or fails.
type Compiler struct {
	Runner    Runner
	Timeout   time.Duration
	TexInputs string // extra directory prepended to TEXINPUTS (the template dir)

	// LookPath is swappable for tests; defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// New returns a Compiler backed by real subprocess execution.
func New() *Compiler {
	return &Compiler{
		Runner:   ExecRunner{},
		Timeout:  DefaultTimeout,
		LookPath: exec.LookPath,
	}
}

// Compile builds texPath into a PDF alongside the source. It returns the PDF
// path and the captured compiler log. On failure the partial artifacts are
// left in place for inspection.
func (c *Compiler) Compile(ctx context.Context, texPath string) (pdfPath string, logOutput string, err error) {
	dir := filepath.Dir(texPath)
	base := strings.TrimSuffix(filepath.Base(texPath), ".tex")
	pdfPath = filepath.Join(dir, base+".pdf")

	env := c.environ()

	lookPath := c.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	_, haveLatexmk := lookPathOK(lookPath, "latexmk")
	_, havePdflatex := lookPathOK(lookPath, "pdflatex")
	if !haveLatexmk && !havePdflatex {
		return "", "", ErrNoCompiler
	}

	var logs strings.Builder

	if haveLatexmk {
		log, runErr := c.runBounded(ctx, dir, env, "latexmk", "-pdf", "-silent", base+".tex")
		logs.WriteString(log)
		if runErr == nil {
			if _, statErr := os.Stat(pdfPath); statErr == nil {
				return pdfPath, logs.String(), nil
			}
		}
		if !havePdflatex {
			return "", logs.String(), &CompilationError{
				Message:   "latexmk failed and pdflatex is not installed",
				LogOutput: logs.String(),
				Cause:     runErr,
			}
		}
		// fall through to pdflatex
	}

	var runErr error
	for i := 0; i < pdflatexPasses; i++ {
		var log string
		log, runErr = c.runBounded(ctx, dir, env, "pdflatex", "-interaction=nonstopmode", base+".tex")
		logs.WriteString(log)
	}

	logOutput = logs.String()

	if _, statErr := os.Stat(pdfPath); os.IsNotExist(statErr) {
		return "", logOutput, &CompilationError{
			Message:   "LaTeX compilation failed: PDF was not generated",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	// pdflatex can emit a usable PDF even when it exits non-zero; surface
	// the error but keep the PDF path.
	if runErr != nil {
		return pdfPath, logOutput, &CompilationError{
			Message:   "LaTeX compilation completed with errors (PDF may be incomplete)",
			LogOutput: logOutput,
			Cause:     runErr,
		}
	}

	return pdfPath, logOutput, nil
}

// runBounded executes one compiler invocation under the configured timeout.
func (c *Compiler) runBounded(ctx context.Context, dir string, env []string, name string, args ...string) (string, error) {
	timeout := c.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	log, err := c.Runner.Run(runCtx, dir, env, name, args...)
	if err != nil && errors.Is(runCtx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%s timed out after %s: %w", name, timeout, err)
	}
	return log, err
}

// environ extends TEXINPUTS with the template directory so the resume class
// and shared fragments resolve from any working directory.
func (c *Compiler) environ() []string {
	env := os.Environ()
	if c.TexInputs == "" {
		return env
	}

	value := c.TexInputs + string(os.PathListSeparator) + os.Getenv("TEXINPUTS")
	return append(env, "TEXINPUTS="+value)
}

func lookPathOK(lookPath func(string) (string, error), name string) (string, bool) {
	path, err := lookPath(name)
	return path, err == nil
}
