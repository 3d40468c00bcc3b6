// Package commands implements the oasquery subcommands.
package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/erraggy/oasquery/internal/config"
	"github.com/erraggy/oasquery/parser"
)

// Output format constants for query results.
const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// StdinFilePath is the special file path that reads the document from stdin.
const StdinFilePath = "-"

// ValidateOutputFormat checks that format is one of the supported output formats.
func ValidateOutputFormat(format string) error {
	switch format {
	case FormatYAML, FormatJSON:
		return nil
	default:
		return fmt.Errorf("invalid format %q: must be %q or %q", format, FormatYAML, FormatJSON)
	}
}

// Writef writes formatted output to w. Write errors are reported on stderr
// since there is nowhere else to send them.
func Writef(w io.Writer, format string, args ...any) {
	if _, err := fmt.Fprintf(w, format, args...); err != nil { //nolint:gosec // G705 - CLI tool, not a web server
		_, _ = fmt.Fprintf(os.Stderr, "write error: %v\n", err)
	}
}

// loadDocument parses the document at file, or from stdin when file is
// StdinFilePath, applying the limits from cfg. Parser logs go to stderr.
func loadDocument(cfg *config.Config, file string, stdin io.Reader) (*parser.ParseResult, error) {
	opts := cfg.ParserOptions()
	opts = append(opts, parser.WithLogger(parser.NewSlogAdapter(cfg.NewLogger(os.Stderr))))
	if file == StdinFilePath {
		opts = append(opts, parser.WithReader(stdin), parser.WithSourceName("stdin"))
	} else {
		opts = append(opts, parser.WithFilePath(file))
	}

	res, err := parser.ParseWithOptions(opts...)
	if err != nil {
		return nil, err
	}
	slog.Debug("loaded document", "source", res.SourcePath, "size", parser.FormatBytes(res.SourceSize), "loadTime", res.LoadTime)
	return res, nil
}
