package mcpserver

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasquery/internal/testutil"
	"github.com/erraggy/oasquery/oaserrors"
	"github.com/erraggy/oasquery/query"
)

func TestSpecInput_ResolveFile(t *testing.T) {
	path := testutil.WritePetStore(t)

	result, err := specInput{File: path}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", result.Version)
	assert.Equal(t, path, result.SourcePath)
}

func TestSpecInput_ResolveContent(t *testing.T) {
	result, err := specInput{Content: testutil.PetStoreYAML}.resolve()
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", result.Version)
}

func TestSpecInput_ResolveDefaultFile(t *testing.T) {
	saved := cfg.SpecFile
	cfg.SpecFile = testutil.WritePetStore(t)
	t.Cleanup(func() { cfg.SpecFile = saved })

	result, err := specInput{}.resolve()
	require.NoError(t, err)
	assert.Equal(t, cfg.SpecFile, result.SourcePath)
}

func TestSpecInput_ResolveBothProvided(t *testing.T) {
	_, err := specInput{File: "openapi.yaml", Content: "openapi: 3.0.0"}.resolve()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either file or content")
}

func TestSpecInput_ResolveFileNotFound(t *testing.T) {
	_, err := specInput{File: "/nonexistent/path.yaml"}.resolve()
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrParse)
}

func TestSpecInput_ResolveSizeLimit(t *testing.T) {
	saved := cfg.MaxFileSize
	cfg.MaxFileSize = 64
	t.Cleanup(func() { cfg.MaxFileSize = saved })

	_, err := specInput{Content: testutil.PetStoreYAML}.resolve()
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)
}

func TestRunQuery_ReloadsEveryCall(t *testing.T) {
	path := testutil.WritePetStore(t)
	spec := specInput{File: path}

	result, _, err := runQuery(query.ListEndpointsQuery, spec, query.Args{})
	require.NoError(t, err)
	assert.Contains(t, resultText(t, result), "/pets/{petId}")

	require.NoError(t, os.WriteFile(path, []byte("paths:\n  /orders:\n    get:\n      summary: List orders\n"), 0o600))

	result, _, err = runQuery(query.ListEndpointsQuery, spec, query.Args{})
	require.NoError(t, err)
	assert.Equal(t, "/orders:\n  GET: List orders", resultText(t, result))
}
