// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes oasquery queries as MCP tools over stdio.
package mcpserver

import (
	"context"
	"log/slog"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasquery"
	"github.com/erraggy/oasquery/internal/config"
)

const serverInstructions = `oasquery MCP server: answers targeted questions about one OpenAPI document so you never have to read the whole file.

Start with list_endpoints or search_schema to discover what exists, then use get_endpoint, get_request_body, get_response_schema, get_path_parameters, get_component, or get_examples for details. Path lookups are exact: pass the path template as written, braces included (e.g. /pets/{petId}).

Every tool takes an optional file argument (relative to the server's working directory). When omitted, OASQUERY_SPEC_FILE is used (default: openapi.yaml). The file is re-read on every call, so edits are always reflected.

Missing paths, methods, status codes, components, or examples are reported as plain sentences listing the valid alternatives, not as errors.

Configuration (environment variables):
- OASQUERY_SPEC_FILE (default: openapi.yaml): default document
- OASQUERY_LINE_WIDTH (default: 100): YAML output line width
- OASQUERY_MAX_FILE_SIZE (default: 10485760): largest document accepted, in bytes
- OASQUERY_MAX_DEPTH (default: 256): deepest nesting accepted
- OASQUERY_LOG_LEVEL (default: info): stderr log level
- OASQUERY_SANITIZE_ERRORS (default: true): hide absolute paths in error text`

// cfg is the active server configuration, initialized at package load time.
var cfg = config.Load()

// Run starts the MCP server over stdio and blocks until the client disconnects
// or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasquery", Version: oasquery.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	slog.Debug("serving MCP over stdio", "spec_file", cfg.SpecFile, "version", oasquery.Version())
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_endpoints",
		Description: "List every path in the OpenAPI document with its HTTP methods and operation summaries (\"No summary\" when absent). Use path_filter to narrow large APIs: * matches one segment, ** any number of segments, e.g. /users/** or /pets/*.",
	}, handleListEndpoints)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_endpoint",
		Description: "Get one operation by exact path template and HTTP method: summary, description, tags, parameters, requestBody, responses, security, and deprecated. $ref values are returned as written.",
	}, handleGetEndpoint)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_request_body",
		Description: "Get the requestBody of an operation (description, required, content by media type).",
	}, handleGetRequestBody)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_response_schema",
		Description: "Get the response object for a status code (default 200) of an operation. Falls back to the 'default' response when the exact code is missing; otherwise lists the available status codes.",
	}, handleGetResponseSchema)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_path_parameters",
		Description: "Get the parameters shared by a path, followed by those of one operation when method is given. Entries are listed as written; a parameter redefined by the operation appears twice.",
	}, handleGetPathParameters)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_components",
		Description: "List component names grouped by category (schemas, parameters, responses, securitySchemes, ...), in document order.",
	}, handleListComponents)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_component",
		Description: "Get the full definition of one component, e.g. type=schemas name=Pet.",
	}, handleGetComponent)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_security_schemes",
		Description: "Summarize the security schemes: type and description plus in/name (apiKey), scheme/bearerFormat (http), flow names (oauth2), or openIdConnectUrl.",
	}, handleListSecuritySchemes)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_examples",
		Description: "Get examples keyed by media type. type=request or type=response need path and method; response takes an optional status_code (without it, the FIRST response in document order is used, which is not necessarily 200). type=component needs component_type and component_name.",
	}, handleGetExamples)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "search_schema",
		Description: "Search the document with a case-insensitive regular expression (RE2 syntax). Matches path templates, operations (summary, description, tags), operation parameters (name, description), components (name, description), and security schemes. Categories without matches are omitted.",
	}, handleSearchSchema)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	if !cfg.SanitizeErrors {
		return err.Error()
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}

// textResult creates an MCP result holding a single text block.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}
