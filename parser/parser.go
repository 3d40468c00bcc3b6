package parser

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasquery/oaserrors"
	"github.com/erraggy/oasquery/value"
)

// DefaultMaxFileSize is the default maximum input size (10 MiB).
const DefaultMaxFileSize int64 = 10 << 20

// Parser loads OpenAPI documents into generic value trees.
type Parser struct {
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger

	// Resource limits (0 means use default)

	// MaxFileSize is the maximum input size in bytes.
	// Default: 10MB
	MaxFileSize int64
	// MaxDepth is the maximum nesting depth of the document, aliases expanded.
	// Default: value.DefaultMaxDepth
	MaxDepth int
	// MaxNodes is the maximum number of values in the document, aliases expanded.
	// Default: value.DefaultMaxNodes
	MaxNodes int
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

func (p *Parser) maxFileSize() int64 {
	if p.MaxFileSize > 0 {
		return p.MaxFileSize
	}
	return DefaultMaxFileSize
}

// SourceFormat represents the format of the source OpenAPI specification file
type SourceFormat string

const (
	// SourceFormatYAML indicates the source was in YAML format
	SourceFormatYAML SourceFormat = "yaml"
	// SourceFormatJSON indicates the source was in JSON format
	SourceFormatJSON SourceFormat = "json"
	// SourceFormatUnknown indicates the source format could not be determined
	SourceFormatUnknown SourceFormat = "unknown"
)

// ParseResult contains a loaded document and metadata about its source.
//
// Callers must treat Document as read-only. Each parse produces an independent
// tree, so results are never shared between calls.
type ParseResult struct {
	// SourcePath is the path the document was read from.
	// For reader and byte inputs it is "reader.yaml"/"bytes.json" style
	// placeholders unless overridden with WithSourceName.
	SourcePath string
	// SourceFormat is the format of the source (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the value of the top-level "openapi" or "swagger" field, if any
	Version string
	// Document is the root of the document tree. It is always a mapping.
	Document value.Value
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
}

// Parse reads and decodes the file at specPath. Relative paths are resolved
// against the current working directory.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := p.readFile(specPath)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, err
	}

	res, err := p.decode(data, specPath)
	if err != nil {
		return nil, err
	}

	res.SourcePath = specPath
	res.LoadTime = loadTime
	if format := detectFormatFromPath(specPath); format != SourceFormatUnknown {
		res.SourceFormat = format
	}
	p.logLoaded(res)
	return res, nil
}

// ParseReader reads and decodes a document from r.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := p.readLimited(r, "reader")
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, err
	}

	res, err := p.decode(data, "reader")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "reader." + string(res.SourceFormat)
	res.LoadTime = loadTime
	p.logLoaded(res)
	return res, nil
}

// ParseBytes decodes a document held in memory.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	if int64(len(data)) > p.maxFileSize() {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        p.maxFileSize(),
			Actual:       int64(len(data)),
		}
	}
	res, err := p.decode(data, "bytes")
	if err != nil {
		return nil, err
	}
	res.SourcePath = "bytes." + string(res.SourceFormat)
	p.logLoaded(res)
	return res, nil
}

func (p *Parser) readFile(specPath string) ([]byte, error) {
	f, err := os.Open(specPath) //nolint:gosec // G304: reading the caller's document is the purpose
	if err != nil {
		return nil, &oaserrors.ParseError{Path: specPath, Message: "failed to read file", Cause: err}
	}
	defer func() { _ = f.Close() }()

	info, err := f.Stat()
	if err != nil {
		return nil, &oaserrors.ParseError{Path: specPath, Message: "failed to stat file", Cause: err}
	}
	if info.IsDir() {
		return nil, &oaserrors.ParseError{Path: specPath, Message: "path is a directory"}
	}
	if info.Size() > p.maxFileSize() {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        p.maxFileSize(),
			Actual:       info.Size(),
			Message:      specPath,
		}
	}
	return p.readLimited(f, specPath)
}

// readLimited reads at most MaxFileSize bytes, failing if r holds more.
func (p *Parser) readLimited(r io.Reader, source string) ([]byte, error) {
	limit := p.maxFileSize()
	data, err := io.ReadAll(io.LimitReader(r, limit+1))
	if err != nil {
		return nil, &oaserrors.ParseError{Path: source, Message: "failed to read input", Cause: err}
	}
	if int64(len(data)) > limit {
		return nil, &oaserrors.ResourceLimitError{
			ResourceType: "file_size",
			Limit:        limit,
			Message:      source,
		}
	}
	return data, nil
}

// decode turns raw bytes into a ParseResult. JSON is decoded by the YAML
// decoder, which accepts it as a subset.
func (p *Parser) decode(data []byte, source string) (*ParseResult, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, yamlParseError(source, err)
	}

	doc, err := value.FromNode(&root, value.Limits{MaxDepth: p.MaxDepth, MaxNodes: p.MaxNodes})
	if err != nil {
		var limitErr *oaserrors.ResourceLimitError
		if errors.As(err, &limitErr) {
			return nil, err
		}
		return nil, &oaserrors.ParseError{Path: source, Message: "unsupported document structure", Cause: err}
	}
	if !doc.IsMapping() {
		return nil, &oaserrors.ParseError{
			Path:    source,
			Message: fmt.Sprintf("document root must be a mapping, got %s", doc.Kind()),
		}
	}

	return &ParseResult{
		SourceFormat: detectFormatFromContent(data),
		Version:      detectVersion(doc),
		Document:     doc,
		SourceSize:   int64(len(data)),
	}, nil
}

func (p *Parser) logLoaded(res *ParseResult) {
	p.log().Debug("loaded document",
		"path", res.SourcePath,
		"format", string(res.SourceFormat),
		"version", res.Version,
		"size", FormatBytes(res.SourceSize),
		"duration", res.LoadTime,
	)
}

// detectVersion returns the "openapi" (3.x) or "swagger" (2.0) field.
func detectVersion(doc value.Value) string {
	for _, key := range []string{"openapi", "swagger"} {
		if v := doc.Get(key); v.Exists() {
			return v.Scalar()
		}
	}
	return ""
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// yamlParseError wraps a decoder error, extracting the line number when the
// decoder reports one.
func yamlParseError(source string, err error) error {
	pe := &oaserrors.ParseError{Path: source, Message: "invalid YAML or JSON", Cause: err}
	if m := yamlLinePattern.FindStringSubmatch(err.Error()); m != nil {
		pe.Line, _ = strconv.Atoi(m[1])
	}
	return pe
}
