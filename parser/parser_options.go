package parser

import (
	"fmt"
	"io"

	"github.com/erraggy/oasquery/internal/options"
	"github.com/erraggy/oasquery/oaserrors"
)

// Option is a function that configures a parse operation
type Option func(*parseConfig) error

// parseConfig holds configuration for a parse operation
type parseConfig struct {
	// Input source (exactly one must be set)
	filePath *string
	reader   io.Reader
	bytes    []byte

	logger      Logger
	maxFileSize int64
	maxDepth    int
	maxNodes    int

	// Source identification
	sourceName *string // Override SourcePath in the result
}

// ParseWithOptions parses an OpenAPI document using functional options.
//
// Example:
//
//	result, err := parser.ParseWithOptions(
//	    parser.WithFilePath("openapi.yaml"),
//	    parser.WithMaxFileSize(1<<20),
//	)
func ParseWithOptions(opts ...Option) (*ParseResult, error) {
	cfg, err := applyOptions(opts...)
	if err != nil {
		return nil, fmt.Errorf("parser: invalid options: %w", err)
	}

	p := &Parser{
		Logger:      cfg.logger,
		MaxFileSize: cfg.maxFileSize,
		MaxDepth:    cfg.maxDepth,
		MaxNodes:    cfg.maxNodes,
	}

	var result *ParseResult
	switch {
	case cfg.filePath != nil:
		result, err = p.Parse(*cfg.filePath)
	case cfg.reader != nil:
		result, err = p.ParseReader(cfg.reader)
	default:
		result, err = p.ParseBytes(cfg.bytes)
	}
	if err != nil {
		return nil, err
	}

	if cfg.sourceName != nil {
		result.SourcePath = *cfg.sourceName
	}
	return result, nil
}

// applyOptions applies option functions and validates configuration
func applyOptions(opts ...Option) (*parseConfig, error) {
	cfg := &parseConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if err := options.RequireOne("input",
		"must specify an input source (use WithFilePath, WithReader, or WithBytes)",
		"must specify exactly one input source",
		cfg.filePath != nil, cfg.reader != nil, cfg.bytes != nil,
	); err != nil {
		return nil, err
	}
	return cfg, nil
}

// WithFilePath specifies a file path as the input source.
// Relative paths are resolved against the current working directory.
func WithFilePath(path string) Option {
	return func(cfg *parseConfig) error {
		if path == "" {
			return &oaserrors.ConfigError{Option: "file_path", Message: "path cannot be empty"}
		}
		cfg.filePath = &path
		return nil
	}
}

// WithReader specifies an io.Reader as the input source
func WithReader(r io.Reader) Option {
	return func(cfg *parseConfig) error {
		if r == nil {
			return &oaserrors.ConfigError{Option: "reader", Message: "reader cannot be nil"}
		}
		cfg.reader = r
		return nil
	}
}

// WithBytes specifies a byte slice as the input source
func WithBytes(data []byte) Option {
	return func(cfg *parseConfig) error {
		if data == nil {
			return &oaserrors.ConfigError{Option: "bytes", Message: "bytes cannot be nil"}
		}
		cfg.bytes = data
		return nil
	}
}

// WithLogger sets a structured logger for debug output during parsing.
// By default, no logging is performed.
func WithLogger(l Logger) Option {
	return func(cfg *parseConfig) error {
		cfg.logger = l
		return nil
	}
}

// WithMaxFileSize sets the maximum input size in bytes.
// Default: 10MB (0 uses the default)
func WithMaxFileSize(size int64) Option {
	return func(cfg *parseConfig) error {
		if size < 0 {
			return &oaserrors.ConfigError{Option: "max_file_size", Value: size, Message: "cannot be negative"}
		}
		cfg.maxFileSize = size
		return nil
	}
}

// WithMaxDepth sets the maximum nesting depth of the document.
// Default: value.DefaultMaxDepth (0 uses the default)
func WithMaxDepth(depth int) Option {
	return func(cfg *parseConfig) error {
		if depth < 0 {
			return &oaserrors.ConfigError{Option: "max_depth", Value: depth, Message: "cannot be negative"}
		}
		cfg.maxDepth = depth
		return nil
	}
}

// WithMaxNodes sets the maximum number of values the document may expand to.
// Default: value.DefaultMaxNodes (0 uses the default)
func WithMaxNodes(n int) Option {
	return func(cfg *parseConfig) error {
		if n < 0 {
			return &oaserrors.ConfigError{Option: "max_nodes", Value: n, Message: "cannot be negative"}
		}
		cfg.maxNodes = n
		return nil
	}
}

// WithSourceName overrides SourcePath in the result, e.g. to report a
// path relative to a project root.
func WithSourceName(name string) Option {
	return func(cfg *parseConfig) error {
		cfg.sourceName = &name
		return nil
	}
}
