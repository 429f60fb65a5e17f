// Package main provides the entry point for the CV builder CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_builder",
	Short: "Generate tailored CV and cover letter PDFs per job application",
	Long:  "CV Builder fills LaTeX templates with a summary and selected project snippets, compiles them with latexmk or pdflatex, and files the results under jobs/<company>/<role>/.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
