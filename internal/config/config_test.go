package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "cv-builder.json")
	content := `{
		"candidate_name": "Omar Barouni",
		"jobs_dir": "jobs",
		"job_type": "Data",
		"compile_timeout": 60
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Omar Barouni", cfg.CandidateName)
	assert.Equal(t, "jobs", cfg.JobsDir)
	assert.Equal(t, "Data", cfg.JobType)
	assert.Equal(t, 60, cfg.CompileTimeout)
}

func TestLoad_EmptyPath(t *testing.T) {
	_, err := Load("")
	assert.Error(t, err)
}

func TestLoad_FileNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoad_InvalidJSON(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate_NegativeTimeout(t *testing.T) {
	cfg := Config{CompileTimeout: -1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_MissingTemplateDir(t *testing.T) {
	cfg := Config{TemplateDir: filepath.Join(t.TempDir(), "nope")}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ExistingPaths(t *testing.T) {
	tmpDir := t.TempDir()
	manifest := filepath.Join(tmpDir, "projects.json")
	require.NoError(t, os.WriteFile(manifest, []byte("[]"), 0644))

	cfg := Config{TemplateDir: tmpDir, Manifest: manifest, CompileTimeout: 30}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{CandidateName: "Omar Barouni"}
	defaults := Config{
		CandidateName:  "Candidate Name",
		TemplateDir:    "base",
		ProjectDir:     filepath.Join("modules", "projects"),
		JobsDir:        "jobs",
		JobType:        "EE",
		CompileTimeout: 120,
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "Omar Barouni", merged.CandidateName, "explicit value wins")
	assert.Equal(t, "base", merged.TemplateDir)
	assert.Equal(t, "jobs", merged.JobsDir)
	assert.Equal(t, "EE", merged.JobType)
	assert.Equal(t, 120, merged.CompileTimeout)
}

func TestLoadDefault_MissingFileIsNotAnError(t *testing.T) {
	tmpDir := t.TempDir()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(tmpDir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, Config{}, *cfg)
}
