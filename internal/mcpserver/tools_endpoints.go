package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasquery/query"
)

type listEndpointsInput struct {
	File       string `json:"file,omitempty"        jsonschema:"Path to the OpenAPI file (default from OASQUERY_SPEC_FILE)"`
	Content    string `json:"content,omitempty"     jsonschema:"Inline OpenAPI document content (JSON or YAML) instead of a file"`
	PathFilter string `json:"path_filter,omitempty" jsonschema:"Only list paths matching this glob (* = one segment\\, ** = zero or more segments)"`
}

func handleListEndpoints(_ context.Context, _ *mcp.CallToolRequest, input listEndpointsInput) (*mcp.CallToolResult, any, error) {
	return runQuery(query.ListEndpointsQuery, specInput{File: input.File, Content: input.Content}, query.Args{
		PathFilter: input.PathFilter,
	})
}

type getEndpointInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to the OpenAPI file (default from OASQUERY_SPEC_FILE)"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML) instead of a file"`
	Path    string `json:"path"              jsonschema:"Exact path template\\, e.g. /pets/{petId}"`
	Method  string `json:"method"            jsonschema:"HTTP method (case-insensitive)"`
}

func handleGetEndpoint(_ context.Context, _ *mcp.CallToolRequest, input getEndpointInput) (*mcp.CallToolResult, any, error) {
	return runQuery(query.GetEndpointQuery, specInput{File: input.File, Content: input.Content}, query.Args{
		Path:   input.Path,
		Method: input.Method,
	})
}
