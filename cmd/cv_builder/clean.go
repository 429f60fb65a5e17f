package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/obarouni/cv-builder/internal/compiler"
)

var cleanCmd = &cobra.Command{
	Use:   "clean <file.tex | directory>",
	Short: "Remove LaTeX auxiliary files",
	Long:  "Deletes the auxiliary files (.aux, .out, .toc, ...) left by a compiler run, preserving sources, PDFs, and notes. Given a directory, every .tex file in it is cleaned.",
	Args:  cobra.ExactArgs(1),
	RunE:  runClean,
}

var cleanKeepLog bool

func init() {
	cleanCmd.Flags().BoolVar(&cleanKeepLog, "keep-log", false, "Keep .log files for debugging")

	rootCmd.AddCommand(cleanCmd)
}

func runClean(_ *cobra.Command, args []string) error {
	target := args[0]

	info, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", target, err)
	}

	if !info.IsDir() {
		compiler.CleanJunk(target, cleanKeepLog)
		return nil
	}

	entries, err := os.ReadDir(target)
	if err != nil {
		return fmt.Errorf("cannot list %s: %w", target, err)
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".tex") {
			continue
		}
		compiler.CleanJunk(filepath.Join(target, entry.Name()), cleanKeepLog)
	}
	return nil
}
