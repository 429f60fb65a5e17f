package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/obarouni/cv-builder/internal/catalog"
	"github.com/obarouni/cv-builder/internal/compiler"
	"github.com/obarouni/cv-builder/internal/config"
	"github.com/obarouni/cv-builder/internal/observability"
	"github.com/obarouni/cv-builder/internal/pipeline"
	"github.com/obarouni/cv-builder/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a CV (and optional cover letter) for one application",
	Long: `Fills the job-type template with the summary and selected projects, writes the
result under jobs/<company>/<role>/, compiles it to PDF, and records the job
link in a notes file.

Configuration can be loaded from a JSON file using --config. Command-line
arguments override config file values.`,
	RunE: runGenerate,
}

var (
	genConfigPath   string
	genName         string
	genJobType      string
	genCompany      string
	genRole         string
	genLink         string
	genSummary      string
	genSummaryFile  string
	genProjects     []string
	genRawLaTeX     bool
	genCoverBody    string
	genCoverFile    string
	genCoverCompile bool
	genCoverOpen    bool
	genCompile      bool
	genClean        bool
	genOpen         bool
	genOpenFolder   bool
	genVerbose      bool
)

func init() {
	generateCmd.Flags().StringVar(&genConfigPath, "config", "", "Path to config JSON file (values can be overridden by other flags)")
	generateCmd.Flags().StringVarP(&genName, "name", "n", "", "Candidate name, used for output file names")
	generateCmd.Flags().StringVarP(&genJobType, "job-type", "t", "", "Job type selecting the template family (e.g. EE, Data)")
	generateCmd.Flags().StringVarP(&genCompany, "company", "c", "", "Company name (required)")
	generateCmd.Flags().StringVarP(&genRole, "role", "r", "", "Role title (required)")
	generateCmd.Flags().StringVarP(&genLink, "link", "u", "", "Job posting link (required)")
	generateCmd.Flags().StringVarP(&genSummary, "summary", "s", "", "Summary text (mutually exclusive with --summary-file)")
	generateCmd.Flags().StringVar(&genSummaryFile, "summary-file", "", "Path to a file holding the summary text")
	generateCmd.Flags().StringSliceVarP(&genProjects, "projects", "p", nil, "Selected project IDs in include order (1-4 entries)")
	generateCmd.Flags().BoolVar(&genRawLaTeX, "raw-latex", false, "Insert the summary and cover letter body without escaping")
	generateCmd.Flags().StringVar(&genCoverBody, "cover-letter", "", "Cover letter body text; enables the cover letter")
	generateCmd.Flags().StringVar(&genCoverFile, "cover-letter-file", "", "Path to a file holding the cover letter body")
	generateCmd.Flags().BoolVar(&genCoverCompile, "cover-compile", true, "Compile the cover letter to PDF (when a cover letter is generated)")
	generateCmd.Flags().BoolVar(&genCoverOpen, "cover-open", false, "Open the compiled cover letter in the system viewer")
	generateCmd.Flags().BoolVar(&genCompile, "compile", true, "Compile the generated CV to PDF")
	generateCmd.Flags().BoolVar(&genClean, "clean", true, "Remove LaTeX auxiliary files after compiling")
	generateCmd.Flags().BoolVar(&genOpen, "open", false, "Open the compiled CV in the system viewer")
	generateCmd.Flags().BoolVar(&genOpenFolder, "open-folder", false, "Open the application folder when done")
	generateCmd.Flags().BoolVarP(&genVerbose, "verbose", "v", false, "Print detailed progress information")

	if err := generateCmd.MarkFlagRequired("company"); err != nil {
		panic(fmt.Sprintf("failed to mark company flag as required: %v", err))
	}
	if err := generateCmd.MarkFlagRequired("role"); err != nil {
		panic(fmt.Sprintf("failed to mark role flag as required: %v", err))
	}
	if err := generateCmd.MarkFlagRequired("projects"); err != nil {
		panic(fmt.Sprintf("failed to mark projects flag as required: %v", err))
	}

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if genSummary != "" && genSummaryFile != "" {
		return fmt.Errorf("--summary and --summary-file are mutually exclusive; provide only one")
	}
	if genCoverBody != "" && genCoverFile != "" {
		return fmt.Errorf("--cover-letter and --cover-letter-file are mutually exclusive; provide only one")
	}

	cfg, err := resolveConfig(genConfigPath, config.Config{
		CandidateName: genName,
		JobType:       genJobType,
	})
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = genVerbose
	}

	summary := genSummary
	if genSummaryFile != "" {
		data, err := os.ReadFile(genSummaryFile)
		if err != nil {
			return fmt.Errorf("failed to read summary file: %w", err)
		}
		summary = string(data)
	}

	coverBody := genCoverBody
	if genCoverFile != "" {
		data, err := os.ReadFile(genCoverFile)
		if err != nil {
			return fmt.Errorf("failed to read cover letter file: %w", err)
		}
		coverBody = string(data)
	}

	projects, warnings := catalog.Source{
		ProjectDir: cfg.ProjectDir,
		Manifest:   cfg.Manifest,
	}.Load()

	printer := observability.NewPrinter(os.Stdout)
	if cfg.Verbose {
		printer.PrintCatalog(projects, warnings)
	}

	rec := &types.ApplicationRecord{
		JobType:            cfg.JobType,
		Company:            genCompany,
		Role:               genRole,
		JobLink:            genLink,
		Summary:            summary,
		RawLaTeX:           genRawLaTeX,
		ProjectIDs:         genProjects,
		IncludeCoverLetter: coverBody != "",
		CoverLetterBody:    coverBody,
		CoverLetterCompile: genCoverCompile,
		CoverLetterOpen:    genCoverOpen,
		Compile:            genCompile,
		CleanJunk:          genClean,
		OpenPDF:            genOpen,
		OpenFolder:         genOpenFolder,
	}

	comp := compiler.New()
	comp.Timeout = time.Duration(cfg.CompileTimeout) * time.Second
	comp.TexInputs = cfg.TemplateDir

	opts := pipeline.RunOptions{
		Record:        rec,
		Projects:      projects,
		CandidateName: cfg.CandidateName,
		TemplateDir:   cfg.TemplateDir,
		JobsDir:       cfg.JobsDir,
		Compiler:      comp,
	}
	if cfg.Verbose {
		opts.OnProgress = func(e pipeline.ProgressEvent) {
			printer.PrintStep(e.Step, e.Message)
		}
	}

	bundle, err := pipeline.Run(context.Background(), opts)
	if err != nil {
		var compErr *compiler.CompilationError
		if errors.As(err, &compErr) {
			_, _ = fmt.Fprintln(os.Stderr, tailOf(compErr.LogOutput, 20))
			if bundle != nil {
				_, _ = fmt.Fprintf(os.Stderr, "Partial artifacts kept in %s for inspection\n", bundle.OutputDir)
			}
		}
		return err
	}

	if cfg.Verbose {
		printer.PrintBundle(bundle)
	} else {
		_, _ = fmt.Fprintf(os.Stdout, "Documents created in %s\n", bundle.OutputDir)
	}

	return nil
}

// tailOf returns the last n lines of a compiler log; the useful error is
// almost always at the end.
func tailOf(log string, n int) string {
	lines := strings.Split(strings.TrimRight(log, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}
