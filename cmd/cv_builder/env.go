package main

import (
	"os"
	"path/filepath"

	"github.com/obarouni/cv-builder/internal/config"
)

// CandidateNameEnv overrides the configured candidate name; godotenv makes a
// .env entry work too.
const CandidateNameEnv = "CV_CANDIDATE_NAME"

// resolveConfig merges, in priority order: an explicit config file (or the
// default one in the working directory), the environment, and baked-in
// defaults. CLI flags are applied by each command before calling this.
func resolveConfig(configPath string, cfg config.Config) (config.Config, error) {
	var fileCfg *config.Config
	var err error
	if configPath != "" {
		fileCfg, err = config.Load(configPath)
	} else {
		fileCfg, err = config.LoadDefault()
	}
	if err != nil {
		return config.Config{}, err
	}
	if err := fileCfg.Validate(); err != nil {
		return config.Config{}, err
	}

	cfg = cfg.MergeWithDefaults(*fileCfg)

	// MergeWithDefaults skips bools, which would drop a "verbose": true from
	// the file. Carry it over here; commands still override it when the flag
	// was set explicitly.
	cfg.Verbose = cfg.Verbose || fileCfg.Verbose

	if cfg.CandidateName == "" {
		cfg.CandidateName = os.Getenv(CandidateNameEnv)
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		CandidateName:  "Candidate Name",
		TemplateDir:    "base",
		ProjectDir:     filepath.Join("modules", "projects"),
		JobsDir:        "jobs",
		JobType:        "EE",
		CompileTimeout: 120,
	})

	// The manifest conventionally lives next to the templates.
	if cfg.Manifest == "" {
		candidate := filepath.Join(cfg.TemplateDir, "projects.json")
		if _, err := os.Stat(candidate); err == nil {
			cfg.Manifest = candidate
		}
	}

	return cfg, nil
}
