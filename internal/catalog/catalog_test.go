package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_DirectoryScanOnly(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "b.tex"), "% b")
	writeFile(t, filepath.Join(tmpDir, "a.tex"), "% a")
	writeFile(t, filepath.Join(tmpDir, "notes.txt"), "not a snippet")

	projects, warnings := Source{ProjectDir: tmpDir}.Load()
	require.Len(t, projects, 2)
	assert.Empty(t, warnings)

	assert.Equal(t, "1", projects[0].ID)
	assert.Equal(t, "A", projects[0].Name)
	assert.Equal(t, "2", projects[1].ID)
	assert.Equal(t, "B", projects[1].Name)
}

func TestLoad_MissingDirectoryYieldsEmptyCatalog(t *testing.T) {
	projects, warnings := Source{ProjectDir: filepath.Join(t.TempDir(), "nope")}.Load()
	assert.Empty(t, projects)
	assert.Empty(t, warnings)
}

func TestLoad_JSONManifestIsAuthoritative(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "projects", "solar_tracker.tex"), "% solar")
	writeFile(t, filepath.Join(tmpDir, "projects", "etl_pipeline.tex"), "% etl")

	manifest := filepath.Join(tmpDir, "projects.json")
	writeFile(t, manifest, `[
		{"id": "etl", "name": "ETL Pipeline", "path": "projects/etl_pipeline.tex"},
		{"path": "projects/solar_tracker.tex"}
	]`)

	projects, warnings := Source{
		ProjectDir: filepath.Join(tmpDir, "projects"),
		Manifest:   manifest,
	}.Load()
	require.Len(t, projects, 2)
	assert.Empty(t, warnings)

	// Manifest order wins, scan adds nothing since both files are listed.
	assert.Equal(t, "etl", projects[0].ID)
	assert.Equal(t, "ETL Pipeline", projects[0].Name)
	assert.Equal(t, "2", projects[1].ID, "id synthesized from position")
	assert.Equal(t, "Solar Tracker", projects[1].Name, "name synthesized from filename")
}

func TestLoad_ScanAppendsUnlistedFiles(t *testing.T) {
	tmpDir := t.TempDir()
	projDir := filepath.Join(tmpDir, "projects")
	writeFile(t, filepath.Join(projDir, "listed.tex"), "% listed")
	writeFile(t, filepath.Join(projDir, "extra.tex"), "% extra")

	manifest := filepath.Join(tmpDir, "projects.json")
	writeFile(t, manifest, `[{"id": "l", "name": "Listed", "path": "projects/listed.tex"}]`)

	projects, _ := Source{ProjectDir: projDir, Manifest: manifest}.Load()
	require.Len(t, projects, 2)
	assert.Equal(t, "Listed", projects[0].Name)
	assert.Equal(t, "Extra", projects[1].Name)
	assert.Equal(t, "2", projects[1].ID)
}

func TestLoad_ScanSkipsManifestClaimedIDs(t *testing.T) {
	tmpDir := t.TempDir()
	projDir := filepath.Join(tmpDir, "projects")
	writeFile(t, filepath.Join(projDir, "listed.tex"), "% listed")
	writeFile(t, filepath.Join(projDir, "extra.tex"), "% extra")

	manifest := filepath.Join(tmpDir, "projects.json")
	writeFile(t, manifest, `[{"id": "2", "name": "Listed", "path": "projects/listed.tex"}]`)

	projects, _ := Source{ProjectDir: projDir, Manifest: manifest}.Load()
	require.Len(t, projects, 2)
	assert.Equal(t, "2", projects[0].ID)
	assert.Equal(t, "3", projects[1].ID, "synthesized id steps over the one the manifest claims")
	assert.Equal(t, "Extra", projects[1].Name)
}

func TestLoad_BrokenManifestFallsBackToScan(t *testing.T) {
	tmpDir := t.TempDir()
	projDir := filepath.Join(tmpDir, "projects")
	writeFile(t, filepath.Join(projDir, "a.tex"), "% a")

	manifest := filepath.Join(tmpDir, "projects.json")
	writeFile(t, manifest, `{not json`)

	projects, warnings := Source{ProjectDir: projDir, Manifest: manifest}.Load()
	require.Len(t, projects, 1)
	assert.Equal(t, "A", projects[0].Name)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "manifest")
}

func TestLoad_ManifestEntryWithoutPathFallsBack(t *testing.T) {
	tmpDir := t.TempDir()
	manifest := filepath.Join(tmpDir, "projects.json")
	writeFile(t, manifest, `[{"id": "1", "name": "No Path"}]`)

	projects, warnings := Source{Manifest: manifest}.Load()
	assert.Empty(t, projects)
	assert.NotEmpty(t, warnings)
}

func TestLoad_YAMLManifest(t *testing.T) {
	tmpDir := t.TempDir()
	manifest := filepath.Join(tmpDir, "projects.yaml")
	writeFile(t, manifest, "- id: st\n  name: Solar Tracker\n  path: projects/solar_tracker.tex\n")

	projects, warnings := Source{Manifest: manifest}.Load()
	require.Len(t, projects, 1)
	assert.Empty(t, warnings)
	assert.Equal(t, "st", projects[0].ID)
	assert.Equal(t, filepath.Join(tmpDir, "projects", "solar_tracker.tex"), projects[0].Path)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Solar Tracker", DisplayName("modules/projects/solar_tracker.tex"))
	assert.Equal(t, "Etl Pipeline", DisplayName("etl-pipeline.tex"))
}

func TestResolveSelection_PreservesOrder(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.tex"), "% a")
	writeFile(t, filepath.Join(tmpDir, "b.tex"), "% b")

	projects, _ := Source{ProjectDir: tmpDir}.Load()
	require.Len(t, projects, 2)

	paths, missing := ResolveSelection(projects, []string{"2", "1"})
	require.Empty(t, missing)
	require.Len(t, paths, 2)
	assert.Equal(t, filepath.Join(tmpDir, "b.tex"), paths[0])
	assert.Equal(t, filepath.Join(tmpDir, "a.tex"), paths[1])
}

func TestResolveSelection_MissingID(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "a.tex"), "% a")

	projects, _ := Source{ProjectDir: tmpDir}.Load()
	paths, missing := ResolveSelection(projects, []string{"1", "99"})
	assert.Len(t, paths, 1)
	assert.Equal(t, []string{"99"}, missing)
}

func TestResolveSelection_DeletedSnippetFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "a.tex")
	writeFile(t, path, "% a")

	projects, _ := Source{ProjectDir: tmpDir}.Load()
	require.NoError(t, os.Remove(path))

	_, missing := ResolveSelection(projects, []string{"1"})
	assert.Equal(t, []string{"1"}, missing)
}
