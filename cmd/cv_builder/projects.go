package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/obarouni/cv-builder/internal/catalog"
	"github.com/obarouni/cv-builder/internal/config"
	"github.com/obarouni/cv-builder/internal/observability"
)

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the resolved project catalog",
	Long:  "Resolves the project catalog from the manifest and the project directory and prints the selectable entries with their IDs.",
	RunE:  runProjects,
}

var projectsConfigPath string

func init() {
	projectsCmd.Flags().StringVar(&projectsConfigPath, "config", "", "Path to config JSON file")

	rootCmd.AddCommand(projectsCmd)
}

func runProjects(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig(projectsConfigPath, config.Config{})
	if err != nil {
		return err
	}

	projects, warnings := catalog.Source{
		ProjectDir: cfg.ProjectDir,
		Manifest:   cfg.Manifest,
	}.Load()

	observability.NewPrinter(os.Stdout).PrintCatalog(projects, warnings)
	if len(projects) == 0 {
		return fmt.Errorf("no projects found in %s", cfg.ProjectDir)
	}
	return nil
}
