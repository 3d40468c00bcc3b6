package main

import (
	"io"
	"os"

	"github.com/erraggy/oasquery"
	"github.com/erraggy/oasquery/cmd/oasquery/commands"
	"github.com/erraggy/oasquery/query"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run dispatches args to a subcommand and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) < 1 {
		printUsage(stderr)
		return 1
	}

	command := args[0]
	var err error
	switch {
	case command == "version" || command == "-v" || command == "--version":
		commands.Writef(stdout, "oasquery\n%s\n", oasquery.BuildInfo())
		return 0
	case command == "help" || command == "-h" || command == "--help":
		printUsage(stdout)
		return 0
	case command == "mcp":
		err = commands.HandleMCP(args[1:])
	case commands.IsQuery(command):
		err = commands.RunQuery(command, args[1:], os.Stdin, stdout)
	default:
		commands.Writef(stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			commands.Writef(stderr, "Did you mean: %s?\n", suggestion)
		}
		commands.Writef(stderr, "Run 'oasquery help' for usage.\n")
		return 1
	}

	if err != nil {
		commands.Writef(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// knownCommands returns every subcommand name for suggestions.
func knownCommands() []string {
	return append([]string{"mcp", "version", "help"}, query.Names()...)
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, cmd := range knownCommands() {
		if d := editDistance(input, cmd); d < bestDist {
			best, bestDist = cmd, d
		}
	}
	return best
}

// editDistance is the Levenshtein distance between a and b.
func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage(w io.Writer) {
	commands.Writef(w, "%s", `oasquery - targeted queries over one OpenAPI document

Usage:
  oasquery <command> [flags] [file]

Commands:
  mcp                     Serve the queries as MCP tools over stdio
  list-endpoints          List paths, methods, and summaries
  get-endpoint            Show one operation
  get-request-body        Show the request body of an operation
  get-response-schema     Show one response of an operation
  get-path-parameters     Show the parameters of a path or operation
  list-components         List component categories and names
  get-component           Show one component definition
  list-security-schemes   Summarize the security schemes
  get-examples            Collect examples
  search-schema           Search the document by regular expression
  version                 Show version information
  help                    Show this help message

Environment:
  OASQUERY_SPEC_FILE        default document (openapi.yaml)
  OASQUERY_LINE_WIDTH       YAML output line width (100)
  OASQUERY_MAX_FILE_SIZE    largest document accepted, in bytes (10485760)
  OASQUERY_MAX_DEPTH        deepest nesting accepted (256)
  OASQUERY_LOG_LEVEL        stderr log level (info)
  OASQUERY_SANITIZE_ERRORS  hide absolute paths in MCP error text (true)

Examples:
  oasquery list-endpoints -path-filter '/pets/**' openapi.yaml
  oasquery get-endpoint -path '/pets/{petId}' -method get
  oasquery get-examples -type response -path /pets -method post -status 201
  oasquery search-schema -pattern 'pet|owner' -format json

Run 'oasquery <command> -help' for more information on a command.
`)
}
