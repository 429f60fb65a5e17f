// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// DefaultFileName is looked up in the working directory when --config is not
// given.
const DefaultFileName = "cv-builder.json"

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via
// CLI flags. The candidate name lives here, not in source, so a new user never
// edits code.
type Config struct {
	// Candidate
	CandidateName string `json:"candidate_name,omitempty"` // "First Last", used for output file names

	// Paths
	TemplateDir string `json:"template_dir,omitempty"` // Directory holding base templates and the resume class
	ProjectDir  string `json:"project_dir,omitempty"`  // Directory scanned for project snippets
	Manifest    string `json:"manifest,omitempty"`     // Optional project manifest (JSON or YAML)
	JobsDir     string `json:"jobs_dir,omitempty"`     // Root for per-application output folders

	// Behavior
	JobType        string `json:"job_type,omitempty"`        // Default job type (template family)
	CompileTimeout int    `json:"compile_timeout,omitempty"` // Seconds to wait for one compiler invocation
	Verbose        bool   `json:"verbose,omitempty"`         // Print detailed progress information
}

// Load reads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// LoadDefault loads DefaultFileName from the working directory if it exists.
// A missing file is not an error; it returns an empty Config.
func LoadDefault() (*Config, error) {
	if _, err := os.Stat(DefaultFileName); os.IsNotExist(err) {
		return &Config{}, nil
	}
	return Load(DefaultFileName)
}

// Validate checks that the configuration has valid values.
// Required fields are not checked here; they are enforced after merging with
// CLI flags.
func (c *Config) Validate() error {
	if c.CompileTimeout < 0 {
		return fmt.Errorf("config error: 'compile_timeout' must be non-negative")
	}

	if c.TemplateDir != "" {
		if _, err := os.Stat(c.TemplateDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: template directory not found: %s", c.TemplateDir)
		}
	}

	if c.Manifest != "" {
		if _, err := os.Stat(c.Manifest); os.IsNotExist(err) {
			return fmt.Errorf("config error: manifest file not found: %s", c.Manifest)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply baked-in defaults after config file and CLI
// flag values are resolved.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.CandidateName == "" {
		result.CandidateName = defaults.CandidateName
	}
	if result.TemplateDir == "" {
		result.TemplateDir = defaults.TemplateDir
	}
	if result.ProjectDir == "" {
		result.ProjectDir = defaults.ProjectDir
	}
	if result.Manifest == "" {
		result.Manifest = defaults.Manifest
	}
	if result.JobsDir == "" {
		result.JobsDir = defaults.JobsDir
	}
	if result.JobType == "" {
		result.JobType = defaults.JobType
	}
	if result.CompileTimeout == 0 {
		result.CompileTimeout = defaults.CompileTimeout
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
