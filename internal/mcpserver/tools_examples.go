package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasquery/query"
)

type getExamplesInput struct {
	File          string `json:"file,omitempty"           jsonschema:"Path to the OpenAPI file (default from OASQUERY_SPEC_FILE)"`
	Content       string `json:"content,omitempty"        jsonschema:"Inline OpenAPI document content (JSON or YAML) instead of a file"`
	Type          string `json:"type"                     jsonschema:"Where to look: request\\, response\\, or component"`
	Path          string `json:"path,omitempty"           jsonschema:"Exact path template (request and response)"`
	Method        string `json:"method,omitempty"         jsonschema:"HTTP method (request and response)"`
	StatusCode    string `json:"status_code,omitempty"    jsonschema:"Response status code (response only; default is the first response in document order)"`
	ComponentType string `json:"component_type,omitempty" jsonschema:"Component category (component only)\\, e.g. schemas"`
	ComponentName string `json:"component_name,omitempty" jsonschema:"Component name (component only)"`
}

func handleGetExamples(_ context.Context, _ *mcp.CallToolRequest, input getExamplesInput) (*mcp.CallToolResult, any, error) {
	return runQuery(query.GetExamplesQuery, specInput{File: input.File, Content: input.Content}, query.Args{
		Type:          input.Type,
		Path:          input.Path,
		Method:        input.Method,
		StatusCode:    input.StatusCode,
		ComponentType: input.ComponentType,
		ComponentName: input.ComponentName,
	})
}
