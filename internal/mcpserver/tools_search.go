package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasquery/query"
)

type searchSchemaInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to the OpenAPI file (default from OASQUERY_SPEC_FILE)"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML) instead of a file"`
	Pattern string `json:"pattern"           jsonschema:"Case-insensitive regular expression (RE2 syntax\\, not escaped)"`
}

func handleSearchSchema(_ context.Context, _ *mcp.CallToolRequest, input searchSchemaInput) (*mcp.CallToolResult, any, error) {
	return runQuery(query.SearchSchemaQuery, specInput{File: input.File, Content: input.Content}, query.Args{
		Pattern: input.Pattern,
	})
}
