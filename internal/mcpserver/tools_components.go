package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasquery/query"
)

type listComponentsInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to the OpenAPI file (default from OASQUERY_SPEC_FILE)"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML) instead of a file"`
}

func handleListComponents(_ context.Context, _ *mcp.CallToolRequest, input listComponentsInput) (*mcp.CallToolResult, any, error) {
	return runQuery(query.ListComponentsQuery, specInput(input), query.Args{})
}

type getComponentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to the OpenAPI file (default from OASQUERY_SPEC_FILE)"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML) instead of a file"`
	Type    string `json:"type"              jsonschema:"Component category\\, e.g. schemas\\, parameters\\, responses\\, securitySchemes"`
	Name    string `json:"name"              jsonschema:"Component name\\, e.g. Pet"`
}

func handleGetComponent(_ context.Context, _ *mcp.CallToolRequest, input getComponentInput) (*mcp.CallToolResult, any, error) {
	return runQuery(query.GetComponentQuery, specInput{File: input.File, Content: input.Content}, query.Args{
		Type: input.Type,
		Name: input.Name,
	})
}
