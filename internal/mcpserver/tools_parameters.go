package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasquery/query"
)

type getPathParametersInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to the OpenAPI file (default from OASQUERY_SPEC_FILE)"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML) instead of a file"`
	Path    string `json:"path"              jsonschema:"Exact path template\\, e.g. /pets/{petId}"`
	Method  string `json:"method,omitempty"  jsonschema:"HTTP method; when set\\, the operation's parameters are appended"`
}

func handleGetPathParameters(_ context.Context, _ *mcp.CallToolRequest, input getPathParametersInput) (*mcp.CallToolResult, any, error) {
	return runQuery(query.GetPathParametersQuery, specInput{File: input.File, Content: input.Content}, query.Args{
		Path:   input.Path,
		Method: input.Method,
	})
}
