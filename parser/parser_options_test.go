package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasquery/oaserrors"
)

func TestParseWithOptions_FilePath(t *testing.T) {
	path := writeFile(t, "openapi.yaml", minimalYAML)

	result, err := ParseWithOptions(WithFilePath(path))
	require.NoError(t, err)
	assert.Equal(t, "3.0.3", result.Version)
	assert.Equal(t, path, result.SourcePath)
}

func TestParseWithOptions_Reader(t *testing.T) {
	result, err := ParseWithOptions(WithReader(strings.NewReader(minimalYAML)))
	require.NoError(t, err)
	assert.Equal(t, "reader.yaml", result.SourcePath)
}

func TestParseWithOptions_Bytes(t *testing.T) {
	result, err := ParseWithOptions(WithBytes([]byte(minimalJSON)))
	require.NoError(t, err)
	assert.Equal(t, "bytes.json", result.SourcePath)
	assert.Equal(t, "3.1.0", result.Version)
}

func TestParseWithOptions_SourceName(t *testing.T) {
	result, err := ParseWithOptions(
		WithBytes([]byte(minimalYAML)),
		WithSourceName("specs/petstore.yaml"),
	)
	require.NoError(t, err)
	assert.Equal(t, "specs/petstore.yaml", result.SourcePath)
}

func TestParseWithOptions_Limits(t *testing.T) {
	_, err := ParseWithOptions(WithBytes([]byte(minimalYAML)), WithMaxFileSize(8))
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)

	_, err = ParseWithOptions(WithBytes([]byte(minimalYAML)), WithMaxDepth(1))
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)

	_, err = ParseWithOptions(WithBytes([]byte(minimalYAML)), WithMaxNodes(3))
	assert.ErrorIs(t, err, oaserrors.ErrResourceLimit)
}

func TestParseWithOptions_InvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		opts []Option
	}{
		{"no input source", nil},
		{"multiple input sources", []Option{WithBytes([]byte("a: 1")), WithReader(strings.NewReader("a: 1"))}},
		{"empty path", []Option{WithFilePath("")}},
		{"nil reader", []Option{WithReader(nil)}},
		{"nil bytes", []Option{WithBytes(nil)}},
		{"negative size", []Option{WithBytes([]byte("a: 1")), WithMaxFileSize(-1)}},
		{"negative depth", []Option{WithBytes([]byte("a: 1")), WithMaxDepth(-1)}},
		{"negative nodes", []Option{WithBytes([]byte("a: 1")), WithMaxNodes(-1)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseWithOptions(tt.opts...)
			require.Error(t, err)
			assert.ErrorIs(t, err, oaserrors.ErrConfig)
			assert.Contains(t, err.Error(), "parser: invalid options")
		})
	}
}

func TestWithLogger(t *testing.T) {
	cfg, err := applyOptions(WithBytes([]byte("a: 1")), WithLogger(NopLogger{}))
	require.NoError(t, err)
	assert.Equal(t, NopLogger{}, cfg.logger)
}

func TestParserLog(t *testing.T) {
	p := New()
	assert.Equal(t, NopLogger{}, p.log())

	adapter := NewSlogAdapter(nil)
	p.Logger = adapter
	assert.Same(t, adapter, p.log())
}
