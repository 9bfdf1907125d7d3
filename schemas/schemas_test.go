package schemas

import (
	"encoding/json"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xeipuuv/gojsonschema"

	"github.com/jonathan/resume-parser/internal/schemas"
)

const publishedSchema = "parsed_resume.schema.json"

func TestPublishedSchema_ValidJSON(t *testing.T) {
	data, err := os.ReadFile(publishedSchema)
	require.NoError(t, err, "should be able to read schema file")

	var v map[string]any
	require.NoError(t, json.Unmarshal(data, &v), "schema file should be valid JSON")
	assert.Equal(t, "ParsedResume", v["title"])
}

func TestPublishedSchema_ValidJSONSchema(t *testing.T) {
	data, err := os.ReadFile(publishedSchema)
	require.NoError(t, err)

	_, err = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(data))
	assert.NoError(t, err, "schema should compile")
}

func TestPublishedSchema_MatchesEmbedded(t *testing.T) {
	data, err := os.ReadFile(publishedSchema)
	require.NoError(t, err)

	assert.JSONEq(t, string(schemas.ResumeSchema()), string(data),
		"schemas/parsed_resume.schema.json must stay in sync with internal/schemas")
}
