package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/obarouni/cv-builder/internal/catalog"
	"github.com/obarouni/cv-builder/internal/compiler"
	"github.com/obarouni/cv-builder/internal/config"
	"github.com/obarouni/cv-builder/internal/tui"
)

var formCmd = &cobra.Command{
	Use:   "form",
	Short: "Open the interactive application form",
	Long:  "Opens a terminal form collecting company, role, link, summary, and project selections, then generates the documents without leaving the terminal.",
	RunE:  runForm,
}

var (
	formConfigPath string
	formName       string
)

func init() {
	formCmd.Flags().StringVar(&formConfigPath, "config", "", "Path to config JSON file")
	formCmd.Flags().StringVarP(&formName, "name", "n", "", "Candidate name, used for output file names")

	rootCmd.AddCommand(formCmd)
}

func runForm(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(formConfigPath, config.Config{CandidateName: formName})
	if err != nil {
		return err
	}

	projects, warnings := catalog.Source{
		ProjectDir: cfg.ProjectDir,
		Manifest:   cfg.Manifest,
	}.Load()
	if len(projects) == 0 {
		return fmt.Errorf("no projects found: add entries to %s or put .tex files in %s", cfg.Manifest, cfg.ProjectDir)
	}
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(os.Stderr, "Warning: %s\n", warning)
	}

	comp := compiler.New()
	comp.Timeout = time.Duration(cfg.CompileTimeout) * time.Second
	comp.TexInputs = cfg.TemplateDir

	model := tui.New(tui.Options{
		Projects:      projects,
		Warnings:      warnings,
		JobTypes:      jobTypes(cfg),
		CandidateName: cfg.CandidateName,
		TemplateDir:   cfg.TemplateDir,
		JobsDir:       cfg.JobsDir,
		Compiler:      comp,
	})

	_, err = tea.NewProgram(model).Run()
	return err
}

// jobTypes puts the configured default first so it starts selected.
func jobTypes(cfg config.Config) []string {
	all := []string{"EE", "Data"}
	if cfg.JobType == "" {
		return all
	}
	ordered := []string{cfg.JobType}
	for _, jt := range all {
		if jt != cfg.JobType {
			ordered = append(ordered, jt)
		}
	}
	return ordered
}
