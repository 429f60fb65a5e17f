// Package catalog resolves the ordered list of project snippets offered for
// selection. A manifest file (JSON or YAML) is authoritative when present; a
// non-recursive directory scan appends any snippet files the manifest does
// not already list. Catalog loading is best-effort: a missing directory
// yields an empty catalog and an unparsable manifest falls back to the scan,
// with warnings collected for verbose output.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"gopkg.in/yaml.v3"

	"github.com/obarouni/cv-builder/internal/schemas"
	"github.com/obarouni/cv-builder/internal/types"
)

// SnippetExtension is the recognized project snippet file extension.
const SnippetExtension = ".tex"

// DefaultSchemaPath locates the manifest schema relative to the repo root.
const DefaultSchemaPath = "schemas/projects.schema.json"

// Source describes where projects come from.
type Source struct {
	ProjectDir string // Directory scanned non-recursively for snippet files
	Manifest   string // Optional manifest path (.json or .yaml/.yml)
	SchemaPath string // Optional JSON Schema path; resolved via schemas.ResolveSchemaPath when empty
}

// manifestEntry mirrors one manifest record before defaults are applied.
type manifestEntry struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
	Path string `json:"path" yaml:"path"`
}

// Load resolves the catalog. It never fails: problems downgrade to warnings
// and the remaining sources are still used.
func (s Source) Load() ([]types.Project, []string) {
	var projects []types.Project
	var warnings []string

	if s.Manifest != "" {
		manifest, err := s.loadManifest()
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("manifest %s ignored: %v", s.Manifest, err))
		} else {
			projects = manifest
		}
	}

	listed := make(map[string]bool, len(projects))
	taken := make(map[string]bool, len(projects))
	for _, p := range projects {
		listed[resolvedKey(p.Path)] = true
		taken[p.ID] = true
	}

	scanned, scanWarnings := s.scanProjectDir(len(projects), listed, taken)
	projects = append(projects, scanned...)
	warnings = append(warnings, scanWarnings...)

	return projects, warnings
}

// loadManifest parses the manifest file and applies entry defaults. JSON
// manifests are validated against the project schema when it can be located.
func (s Source) loadManifest() ([]types.Project, error) {
	data, err := os.ReadFile(s.Manifest)
	if err != nil {
		return nil, err
	}

	var entries []manifestEntry
	switch strings.ToLower(filepath.Ext(s.Manifest)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("invalid YAML: %w", err)
		}
	default:
		if schemaPath := s.resolveSchema(); schemaPath != "" {
			if err := schemas.ValidateBytes(schemaPath, data); err != nil {
				return nil, err
			}
		}
		if err := json.Unmarshal(data, &entries); err != nil {
			return nil, fmt.Errorf("invalid JSON: %w", err)
		}
	}

	manifestDir := filepath.Dir(s.Manifest)
	projects := make([]types.Project, 0, len(entries))
	for i, entry := range entries {
		if entry.Path == "" {
			return nil, fmt.Errorf("entry %d has no path", i)
		}

		path := entry.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(manifestDir, path)
		}

		id := entry.ID
		if id == "" {
			id = strconv.Itoa(len(projects) + 1)
		}

		name := entry.Name
		if name == "" {
			name = DisplayName(path)
		}

		projects = append(projects, types.Project{ID: id, Name: name, Path: path})
	}

	return projects, nil
}

// scanProjectDir enumerates snippet files not already listed by the manifest.
// Synthesized IDs skip any the manifest already claims. A missing directory
// yields nothing; that is the empty-catalog case, not an error.
func (s Source) scanProjectDir(offset int, listed, taken map[string]bool) ([]types.Project, []string) {
	if s.ProjectDir == "" {
		return nil, nil
	}

	entries, err := os.ReadDir(s.ProjectDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, []string{fmt.Sprintf("project directory %s ignored: %v", s.ProjectDir, err)}
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), SnippetExtension) {
			continue
		}
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	var projects []types.Project
	next := offset
	for _, name := range names {
		path := filepath.Join(s.ProjectDir, name)
		if listed[resolvedKey(path)] {
			continue
		}
		next++
		for taken[strconv.Itoa(next)] {
			next++
		}
		id := strconv.Itoa(next)
		taken[id] = true
		projects = append(projects, types.Project{
			ID:   id,
			Name: DisplayName(path),
			Path: path,
		})
	}

	return projects, nil
}

func (s Source) resolveSchema() string {
	if s.SchemaPath != "" {
		return s.SchemaPath
	}
	return schemas.ResolveSchemaPath(DefaultSchemaPath)
}

// resolvedKey normalizes a path for listed-already comparison.
func resolvedKey(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	return abs
}

// DisplayName derives a human-readable name from a snippet file path:
// "solar_tracker.tex" becomes "Solar Tracker".
func DisplayName(path string) string {
	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	words := strings.FieldsFunc(stem, func(r rune) bool {
		return r == '_' || r == '-' || r == ' '
	})
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}

// IndexByID builds an id -> Project lookup for selection resolution.
func IndexByID(projects []types.Project) map[string]types.Project {
	index := make(map[string]types.Project, len(projects))
	for _, p := range projects {
		index[p.ID] = p
	}
	return index
}

// ResolveSelection maps selected IDs to project paths in selection order.
// IDs that do not resolve to an existing snippet file are returned as
// missing.
func ResolveSelection(projects []types.Project, selectedIDs []string) (paths []string, missing []string) {
	index := IndexByID(projects)
	for _, id := range selectedIDs {
		p, ok := index[id]
		if !ok {
			missing = append(missing, id)
			continue
		}
		if _, err := os.Stat(p.Path); err != nil {
			missing = append(missing, id)
			continue
		}
		paths = append(paths, p.Path)
	}
	return paths, missing
}
