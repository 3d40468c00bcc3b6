package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasquery/query"
)

type listSecuritySchemesInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to the OpenAPI file (default from OASQUERY_SPEC_FILE)"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML) instead of a file"`
}

func handleListSecuritySchemes(_ context.Context, _ *mcp.CallToolRequest, input listSecuritySchemesInput) (*mcp.CallToolResult, any, error) {
	return runQuery(query.ListSecuritySchemesQuery, specInput(input), query.Args{})
}
