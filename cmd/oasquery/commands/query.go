package commands

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/erraggy/oasquery/internal/config"
	"github.com/erraggy/oasquery/query"
)

// QueryFlags contains flags shared by the query subcommands. Each
// subcommand registers only the flags its query reads.
type QueryFlags struct {
	File          string
	Format        string
	Path          string
	Method        string
	Status        string
	PathFilter    string
	Type          string
	Name          string
	ComponentType string
	ComponentName string
	Pattern       string
}

// args converts the flags to query arguments.
func (f *QueryFlags) args() query.Args {
	return query.Args{
		Path:          f.Path,
		Method:        f.Method,
		StatusCode:    f.Status,
		PathFilter:    f.PathFilter,
		Type:          f.Type,
		Name:          f.Name,
		ComponentType: f.ComponentType,
		ComponentName: f.ComponentName,
		Pattern:       f.Pattern,
	}
}

// queryUsage is the one-line description shown in subcommand help.
var queryUsage = map[string]string{
	query.ListEndpointsQuery:       "List every path and its operations with their summaries",
	query.GetEndpointQuery:         "Show one operation with defaults filled in",
	query.GetRequestBodyQuery:      "Show the request body of an operation",
	query.GetResponseSchemaQuery:   "Show one response of an operation",
	query.GetPathParametersQuery:   "Show the parameters of a path or operation",
	query.ListComponentsQuery:      "List component categories and their entry names",
	query.GetComponentQuery:        "Show one component definition",
	query.ListSecuritySchemesQuery: "Summarize the security schemes",
	query.GetExamplesQuery:         "Collect examples for a request, response, or component",
	query.SearchSchemaQuery:        "Search paths, operations, parameters, and schemas by regular expression",
}

// requiredFlags lists the flags a query cannot run without.
var requiredFlags = map[string][]string{
	query.GetEndpointQuery:       {"path", "method"},
	query.GetRequestBodyQuery:    {"path", "method"},
	query.GetResponseSchemaQuery: {"path", "method"},
	query.GetPathParametersQuery: {"path"},
	query.GetComponentQuery:      {"type", "name"},
	query.GetExamplesQuery:       {"type"},
	query.SearchSchemaQuery:      {"pattern"},
}

// IsQuery reports whether name is a query subcommand.
func IsQuery(name string) bool {
	_, ok := queryUsage[name]
	return ok
}

// SetupQueryFlags creates and configures the flag set for the named query.
func SetupQueryFlags(name string) (*flag.FlagSet, *QueryFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	flags := &QueryFlags{}

	fs.StringVar(&flags.File, "file", "", "document to query (default $OASQUERY_SPEC_FILE or openapi.yaml, '-' for stdin)")
	fs.StringVar(&flags.Format, "format", FormatYAML, "output format: yaml or json")

	switch name {
	case query.ListEndpointsQuery:
		fs.StringVar(&flags.PathFilter, "path-filter", "", "glob over path templates, e.g. '/pets/**'")
	case query.GetEndpointQuery, query.GetRequestBodyQuery:
		fs.StringVar(&flags.Path, "path", "", "path template, e.g. '/pets/{petId}'")
		fs.StringVar(&flags.Method, "method", "", "HTTP method, any case")
	case query.GetResponseSchemaQuery:
		fs.StringVar(&flags.Path, "path", "", "path template, e.g. '/pets/{petId}'")
		fs.StringVar(&flags.Method, "method", "", "HTTP method, any case")
		fs.StringVar(&flags.Status, "status", query.DefaultStatusCode, "response status code or 'default'")
	case query.GetPathParametersQuery:
		fs.StringVar(&flags.Path, "path", "", "path template, e.g. '/pets/{petId}'")
		fs.StringVar(&flags.Method, "method", "", "HTTP method; omit for path-level parameters")
	case query.GetComponentQuery:
		fs.StringVar(&flags.Type, "type", "", "component category, e.g. schemas")
		fs.StringVar(&flags.Name, "name", "", "component name")
	case query.GetExamplesQuery:
		fs.StringVar(&flags.Type, "type", "", "example source: request, response, or component")
		fs.StringVar(&flags.Path, "path", "", "path template for request and response examples")
		fs.StringVar(&flags.Method, "method", "", "HTTP method for request and response examples")
		fs.StringVar(&flags.Status, "status", "", "status code for response examples (default: first response)")
		fs.StringVar(&flags.ComponentType, "component-type", "", "component category for component examples")
		fs.StringVar(&flags.ComponentName, "component-name", "", "component name for component examples")
	case query.SearchSchemaQuery:
		fs.StringVar(&flags.Pattern, "pattern", "", "case-insensitive regular expression")
	}

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oasquery %s [flags] [file]\n\n", name)
		Writef(fs.Output(), "%s.\n\nFlags:\n", queryUsage[name])
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExit status 1 on load or pattern errors. Missing data is reported on stdout.\n")
	}

	return fs, flags
}

// RunQuery parses args for the named query, loads the document, and writes
// the rendered result to stdout. Diagnostics are written like any other
// result; only load, pattern, and usage errors are returned.
func RunQuery(name string, args []string, stdin io.Reader, stdout io.Writer) error {
	if !IsQuery(name) {
		return fmt.Errorf("%w: %q", query.ErrUnknownQuery, name)
	}

	fs, flags := SetupQueryFlags(name)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if err := ValidateOutputFormat(flags.Format); err != nil {
		return err
	}
	if missing := missingFlags(fs, requiredFlags[name]); len(missing) > 0 {
		fs.Usage()
		return fmt.Errorf("%s requires %s", name, strings.Join(missing, ", "))
	}

	cfg := config.Load()
	file, err := resolveFile(fs, flags.File, cfg.SpecFile)
	if err != nil {
		return err
	}

	loaded, err := loadDocument(cfg, file, stdin)
	if err != nil {
		return err
	}

	res, err := query.Dispatch(loaded.Document, name, flags.args())
	if err != nil {
		return err
	}

	var text string
	if flags.Format == FormatJSON {
		text, err = res.RenderJSON()
	} else {
		text, err = res.Render(cfg.RenderOptions()...)
	}
	if err != nil {
		return fmt.Errorf("rendering result: %w", err)
	}
	Writef(stdout, "%s\n", text)
	return nil
}

// resolveFile picks the document path from the -file flag, a positional
// argument, or the configured default, in that order.
func resolveFile(fs *flag.FlagSet, fileFlag, fallback string) (string, error) {
	if fs.NArg() > 1 {
		return "", fmt.Errorf("%s accepts at most one file, got %d", fs.Name(), fs.NArg())
	}
	if fs.NArg() == 1 {
		if fileFlag != "" {
			return "", fmt.Errorf("file given both as -file and as an argument")
		}
		return fs.Arg(0), nil
	}
	if fileFlag != "" {
		return fileFlag, nil
	}
	return fallback, nil
}

// missingFlags returns the "-name" form of every flag in names left empty.
func missingFlags(fs *flag.FlagSet, names []string) []string {
	var missing []string
	for _, n := range names {
		if f := fs.Lookup(n); f != nil && f.Value.String() == "" {
			missing = append(missing, "-"+n)
		}
	}
	return missing
}
