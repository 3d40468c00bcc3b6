package mcpserver

import (
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasquery/internal/options"
	"github.com/erraggy/oasquery/parser"
	"github.com/erraggy/oasquery/query"
)

// specInput is the document a tool call reads. At most one of File or
// Content may be set; with neither, cfg.SpecFile is read.
//
// Nothing is cached: every call parses its input again.
type specInput struct {
	File    string
	Content string
}

// resolve parses the document named by s.
func (s specInput) resolve() (*parser.ParseResult, error) {
	if err := options.AtMostOne("spec", "provide either file or content, not both", s.File != "", s.Content != ""); err != nil {
		return nil, err
	}

	opts := cfg.ParserOptions()
	opts = append(opts, parser.WithLogger(parser.NewSlogAdapter(slog.Default())))
	switch {
	case s.Content != "":
		opts = append(opts, parser.WithReader(strings.NewReader(s.Content)))
	case s.File != "":
		opts = append(opts, parser.WithFilePath(s.File))
	default:
		opts = append(opts, parser.WithFilePath(cfg.SpecFile))
	}
	return parser.ParseWithOptions(opts...)
}

// runQuery loads the document, runs the named query, and renders the result
// as one text block. Load and pattern failures become error results; missing
// data is a normal result carrying the diagnostic sentence.
func runQuery(name string, spec specInput, args query.Args) (*mcp.CallToolResult, any, error) {
	slog.Debug("query", "name", name, "file", spec.File, "inline", spec.Content != "")

	loaded, err := spec.resolve()
	if err != nil {
		slog.Warn("failed to load document", "query", name, "error", err)
		return errResult(err), nil, nil
	}

	res, err := query.Dispatch(loaded.Document, name, args)
	if err != nil {
		return errResult(err), nil, nil
	}

	text, err := res.Render(cfg.RenderOptions()...)
	if err != nil {
		return errResult(err), nil, nil
	}
	return textResult(text), nil, nil
}
