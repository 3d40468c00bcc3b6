// Package config loads oasquery settings from OASQUERY_* environment variables.
package config

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/erraggy/oasquery/parser"
	"github.com/erraggy/oasquery/value"
)

// Config holds the settings shared by the MCP server and the CLI.
type Config struct {
	// SpecFile is the document queried when a call names no file.
	SpecFile string

	// Loader limits.
	MaxFileSize int64
	MaxDepth    int

	// Rendering.
	LineWidth int

	// Logging and error reporting.
	LogLevel       slog.Level
	SanitizeErrors bool
}

// ParserOptions returns the loader limits as parser options.
func (c *Config) ParserOptions() []parser.Option {
	return []parser.Option{
		parser.WithMaxFileSize(c.MaxFileSize),
		parser.WithMaxDepth(c.MaxDepth),
	}
}

// RenderOptions returns the rendering settings as value render options.
func (c *Config) RenderOptions() []value.RenderOption {
	return []value.RenderOption{value.WithLineWidth(c.LineWidth)}
}

// NewLogger returns a text logger on w at the configured level.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: c.LogLevel}))
}

// Load reads configuration from OASQUERY_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func Load() *Config {
	return &Config{
		SpecFile:       envString("OASQUERY_SPEC_FILE", "openapi.yaml"),
		MaxFileSize:    envInt64("OASQUERY_MAX_FILE_SIZE", parser.DefaultMaxFileSize),
		MaxDepth:       envInt("OASQUERY_MAX_DEPTH", value.DefaultMaxDepth),
		LineWidth:      envInt("OASQUERY_LINE_WIDTH", value.DefaultLineWidth),
		LogLevel:       envLevel("OASQUERY_LOG_LEVEL", slog.LevelInfo),
		SanitizeErrors: envBool("OASQUERY_SANITIZE_ERRORS", true),
	}
}

func envString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return n
}

func envLevel(key string, fallback slog.Level) slog.Level {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		slog.Warn("invalid log level env var, using default", "key", key, "value", v, "default", fallback) //nolint:gosec // G706: values are structured log fields, not format strings
		return fallback
	}
	return level
}
