package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"
)

func TestProjectsSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "projects.schema.json"))
	require.NoError(t, err, "should be able to read schema file")

	var v interface{}
	err = json.Unmarshal(data, &v)
	assert.NoError(t, err, "schema file should be valid JSON")
}

func TestProjectsSchema_CompilesAsJSONSchema(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "projects.schema.json"))
	require.NoError(t, err)

	loader := gojsonschema.NewBytesLoader(data)
	_, err = gojsonschema.NewSchema(loader)
	assert.NoError(t, err, "schema file should compile as a JSON Schema")
}

func TestProjectsSchema_AcceptsManifestEntries(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "projects.schema.json"))
	require.NoError(t, err)

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	require.NoError(t, err)

	doc := `[
		{"id": "1", "name": "Solar Tracker", "path": "modules/projects/solar_tracker.tex"},
		{"path": "modules/projects/etl_pipeline.tex"}
	]`
	result, err := schema.Validate(gojsonschema.NewStringLoader(doc))
	require.NoError(t, err)
	assert.True(t, result.Valid())
}

func TestProjectsSchema_RejectsEntryWithoutPath(t *testing.T) {
	data, err := os.ReadFile(filepath.Join(".", "projects.schema.json"))
	require.NoError(t, err)

	schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	require.NoError(t, err)

	result, err := schema.Validate(gojsonschema.NewStringLoader(`[{"id": "1"}]`))
	require.NoError(t, err)
	assert.False(t, result.Valid())
}
