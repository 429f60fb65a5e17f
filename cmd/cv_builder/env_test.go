package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obarouni/cv-builder/internal/config"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
}

func TestResolveConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := resolveConfig("", config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "Candidate Name", cfg.CandidateName)
	assert.Equal(t, "base", cfg.TemplateDir)
	assert.Equal(t, filepath.Join("modules", "projects"), cfg.ProjectDir)
	assert.Equal(t, "jobs", cfg.JobsDir)
	assert.Equal(t, "EE", cfg.JobType)
	assert.Equal(t, 120, cfg.CompileTimeout)
}

func TestResolveConfig_FlagBeatsFile(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	require.NoError(t, os.WriteFile(config.DefaultFileName, []byte(`{"candidate_name": "From File", "job_type": "Data"}`), 0644))

	cfg, err := resolveConfig("", config.Config{CandidateName: "From Flag"})
	require.NoError(t, err)
	assert.Equal(t, "From Flag", cfg.CandidateName)
	assert.Equal(t, "Data", cfg.JobType, "file value survives where no flag was given")
}

func TestResolveConfig_VerboseFromFileSurvives(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	require.NoError(t, os.WriteFile(config.DefaultFileName, []byte(`{"verbose": true}`), 0644))

	cfg, err := resolveConfig("", config.Config{})
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
}

func TestResolveConfig_EnvFillsCandidateName(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(CandidateNameEnv, "Omar Barouni")

	cfg, err := resolveConfig("", config.Config{})
	require.NoError(t, err)
	assert.Equal(t, "Omar Barouni", cfg.CandidateName)
}

func TestResolveConfig_ManifestDiscoveredNextToTemplates(t *testing.T) {
	tmpDir := t.TempDir()
	chdir(t, tmpDir)
	require.NoError(t, os.MkdirAll("base", 0755))
	require.NoError(t, os.WriteFile(filepath.Join("base", "projects.json"), []byte(`[]`), 0644))

	cfg, err := resolveConfig("", config.Config{})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("base", "projects.json"), cfg.Manifest)
}

func TestResolveConfig_ExplicitFileErrorsWhenMissing(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := resolveConfig("nope.json", config.Config{})
	assert.Error(t, err)
}

func TestTailOf(t *testing.T) {
	assert.Equal(t, "c\nd", tailOf("a\nb\nc\nd\n", 2))
	assert.Equal(t, "a\nb", tailOf("a\nb", 5))
}

func TestJobTypes_DefaultFirst(t *testing.T) {
	assert.Equal(t, []string{"Data", "EE"}, jobTypes(config.Config{JobType: "Data"}))
	assert.Equal(t, []string{"EE", "Data"}, jobTypes(config.Config{JobType: "EE"}))
}
