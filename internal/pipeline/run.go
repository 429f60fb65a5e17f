// Package pipeline orchestrates one generation run: validate input, assemble
// the documents, place them in the application folder, compile, clean, and
// record notes.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/obarouni/cv-builder/internal/assembly"
	"github.com/obarouni/cv-builder/internal/catalog"
	"github.com/obarouni/cv-builder/internal/compiler"
	"github.com/obarouni/cv-builder/internal/output"
	"github.com/obarouni/cv-builder/internal/types"
	"github.com/obarouni/cv-builder/internal/validation"
	"github.com/obarouni/cv-builder/internal/viewer"
)

// ProgressEvent represents a progress update during a generation run.
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
}

// ProgressCallback is called as the run advances.
type ProgressCallback func(event ProgressEvent)

// RunOptions holds everything a generation run needs.
type RunOptions struct {
	Record   *types.ApplicationRecord
	Projects []types.Project

	CandidateName string
	TemplateDir   string
	ResourceRoot  string // root the modules/ references are rewritten against; defaults to the template dir's parent
	JobsDir       string

	Compiler   *compiler.Compiler  // defaults to a real compiler with TEXINPUTS set to TemplateDir
	OpenFunc   func(string) error  // defaults to viewer.Open
	OnProgress ProgressCallback
}

// Run executes the full generation pipeline. On compile failure the partial
// artifacts (and the .log) are retained and the bundle written so far is
// returned alongside the error.
func Run(ctx context.Context, opts RunOptions) (*types.OutputBundle, error) {
	runID := uuid.NewString()
	rec := opts.Record

	emit := func(step, message string) {
		if opts.OnProgress != nil {
			opts.OnProgress(ProgressEvent{Step: step, Message: message, RunID: runID})
		}
	}

	emit("validate", "checking application fields")
	if err := validation.ValidateApplication(rec); err != nil {
		return nil, err
	}

	projectPaths, missing := catalog.ResolveSelection(opts.Projects, rec.ProjectIDs)
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing project files for entries: %s", strings.Join(missing, ", "))
	}

	resourceRoot := opts.ResourceRoot
	if resourceRoot == "" {
		resourceRoot = filepath.Dir(opts.TemplateDir)
	}

	emit("assemble", "filling CV template")
	cvText, err := assembleCV(opts, rec, projectPaths, resourceRoot)
	if err != nil {
		return nil, err
	}

	var coverText string
	if rec.IncludeCoverLetter {
		emit("assemble", "filling cover letter template")
		coverText, err = assembleCoverLetter(opts, rec, resourceRoot)
		if err != nil {
			return nil, err
		}
	}

	organizer := output.Organizer{JobsDir: opts.JobsDir, CandidateName: opts.CandidateName}

	emit("place", "creating application folder")
	dir, err := organizer.Prepare(rec.Company, rec.Role)
	if err != nil {
		return nil, err
	}

	bundle := &types.OutputBundle{OutputDir: dir}

	bundle.CVSource = organizer.CVPath(dir)
	if err := os.WriteFile(bundle.CVSource, []byte(cvText), 0644); err != nil {
		return nil, fmt.Errorf("failed to write CV source: %w", err)
	}

	if rec.IncludeCoverLetter {
		bundle.CoverLetterSource = organizer.CoverLetterPath(dir)
		if err := os.WriteFile(bundle.CoverLetterSource, []byte(coverText), 0644); err != nil {
			return nil, fmt.Errorf("failed to write cover letter source: %w", err)
		}
	} else {
		// A previous run for this company/role may have left a letter behind.
		organizer.RemoveCoverLetterArtifacts(dir)
	}

	var compileErr error
	if rec.Compile || (rec.IncludeCoverLetter && rec.CoverLetterCompile) {
		emit("compile", "running LaTeX compiler")
		compileErr = compileBundle(ctx, opts, rec, bundle)
	}

	if rec.CleanJunk {
		emit("clean", "removing auxiliary files")
		// Keep logs around when compilation failed.
		compiler.CleanJunk(bundle.CVSource, compileErr != nil)
		if bundle.CoverLetterSource != "" {
			compiler.CleanJunk(bundle.CoverLetterSource, compileErr != nil)
		}
	}

	emit("notes", "writing job notes")
	notesPath, err := organizer.WriteNotes(dir, types.NotesMetadata{
		Company:     rec.Company,
		Role:        rec.Role,
		JobLink:     rec.JobLink,
		RunID:       runID,
		GeneratedAt: time.Now(),
	})
	if err != nil {
		return bundle, err
	}
	bundle.NotesFile = notesPath

	if compileErr != nil {
		return bundle, compileErr
	}

	openFunc := opts.OpenFunc
	if openFunc == nil {
		openFunc = viewer.Open
	}
	open := func(path string) {
		if path == "" {
			return
		}
		if err := openFunc(path); err != nil {
			emit("open", fmt.Sprintf("could not open %s: %v", path, err))
		}
	}
	if rec.OpenPDF {
		open(bundle.CVPDF)
	}
	if rec.IncludeCoverLetter && rec.CoverLetterOpen {
		open(bundle.CoverLetterPDF)
	}
	if rec.OpenFolder {
		open(bundle.OutputDir)
	}

	emit("done", "generation complete")
	return bundle, nil
}

func assembleCV(opts RunOptions, rec *types.ApplicationRecord, projectPaths []string, resourceRoot string) (string, error) {
	templatePath, err := assembly.ResolveCVTemplate(opts.TemplateDir, rec.JobType)
	if err != nil {
		return "", err
	}

	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read template %s: %w", templatePath, err)
	}

	text := assembly.NormalizeResumeClass(string(raw))
	text = assembly.RewriteResourcePaths(text, resourceRoot)

	return assembly.AssembleCV(text, rec.Summary, projectPaths, rec.RawLaTeX)
}

func assembleCoverLetter(opts RunOptions, rec *types.ApplicationRecord, resourceRoot string) (string, error) {
	templatePath, err := assembly.ResolveCoverTemplate(opts.TemplateDir, rec.JobType)
	if err != nil {
		return "", err
	}

	raw, err := os.ReadFile(templatePath)
	if err != nil {
		return "", fmt.Errorf("failed to read cover letter template %s: %w", templatePath, err)
	}

	text := assembly.RewriteResourcePaths(string(raw), resourceRoot)

	return assembly.AssembleCoverLetter(text, rec.CoverLetterBody, rec.RawLaTeX)
}

// compileBundle compiles the CV and the cover letter, each behind its own
// toggle. The two compiles are independent, so they run concurrently.
func compileBundle(ctx context.Context, opts RunOptions, rec *types.ApplicationRecord, bundle *types.OutputBundle) error {
	comp := opts.Compiler
	if comp == nil {
		comp = compiler.New()
		comp.TexInputs = opts.TemplateDir
	}

	g, gctx := errgroup.WithContext(ctx)

	if rec.Compile {
		g.Go(func() error {
			pdf, _, err := comp.Compile(gctx, bundle.CVSource)
			bundle.CVPDF = pdf
			if err != nil {
				return fmt.Errorf("CV compilation failed: %w", err)
			}
			return nil
		})
	}

	if rec.IncludeCoverLetter && rec.CoverLetterCompile && bundle.CoverLetterSource != "" {
		g.Go(func() error {
			pdf, _, err := comp.Compile(gctx, bundle.CoverLetterSource)
			bundle.CoverLetterPDF = pdf
			if err != nil {
				return fmt.Errorf("cover letter compilation failed: %w", err)
			}
			return nil
		})
	}

	return g.Wait()
}
