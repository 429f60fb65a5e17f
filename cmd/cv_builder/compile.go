package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/obarouni/cv-builder/internal/compiler"
	"github.com/obarouni/cv-builder/internal/config"
	"github.com/obarouni/cv-builder/internal/viewer"
)

var compileCmd = &cobra.Command{
	Use:   "compile <file.tex>",
	Short: "Compile an existing LaTeX file to PDF",
	Long:  "Runs latexmk (falling back to pdflatex) on an already-assembled .tex file, with the template directory on TEXINPUTS.",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompile,
}

var (
	compileConfigPath string
	compileCleanJunk  bool
	compileOpen       bool
)

func init() {
	compileCmd.Flags().StringVar(&compileConfigPath, "config", "", "Path to config JSON file")
	compileCmd.Flags().BoolVar(&compileCleanJunk, "clean", true, "Remove LaTeX auxiliary files after compiling")
	compileCmd.Flags().BoolVar(&compileOpen, "open", false, "Open the compiled PDF in the system viewer")

	rootCmd.AddCommand(compileCmd)
}

func runCompile(_ *cobra.Command, args []string) error {
	texPath := args[0]
	if _, err := os.Stat(texPath); err != nil {
		return fmt.Errorf("cannot read %s: %w", texPath, err)
	}

	cfg, err := resolveConfig(compileConfigPath, config.Config{})
	if err != nil {
		return err
	}

	comp := compiler.New()
	comp.Timeout = time.Duration(cfg.CompileTimeout) * time.Second
	comp.TexInputs = cfg.TemplateDir

	pdfPath, log, err := comp.Compile(context.Background(), texPath)

	if compileCleanJunk {
		compiler.CleanJunk(texPath, err != nil)
	}

	if err != nil {
		var compErr *compiler.CompilationError
		if errors.As(err, &compErr) {
			_, _ = fmt.Fprintln(os.Stderr, tailOf(log, 20))
		}
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Compiled %s\n", pdfPath)

	if compileOpen {
		if err := viewer.Open(pdfPath); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Warning: could not open PDF viewer: %v\n", err)
		}
	}
	return nil
}
