package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/oasquery/query"
)

type getRequestBodyInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to the OpenAPI file (default from OASQUERY_SPEC_FILE)"`
	Content string `json:"content,omitempty" jsonschema:"Inline OpenAPI document content (JSON or YAML) instead of a file"`
	Path    string `json:"path"              jsonschema:"Exact path template\\, e.g. /pets"`
	Method  string `json:"method"            jsonschema:"HTTP method (case-insensitive)"`
}

func handleGetRequestBody(_ context.Context, _ *mcp.CallToolRequest, input getRequestBodyInput) (*mcp.CallToolResult, any, error) {
	return runQuery(query.GetRequestBodyQuery, specInput{File: input.File, Content: input.Content}, query.Args{
		Path:   input.Path,
		Method: input.Method,
	})
}

type getResponseSchemaInput struct {
	File       string `json:"file,omitempty"        jsonschema:"Path to the OpenAPI file (default from OASQUERY_SPEC_FILE)"`
	Content    string `json:"content,omitempty"     jsonschema:"Inline OpenAPI document content (JSON or YAML) instead of a file"`
	Path       string `json:"path"                  jsonschema:"Exact path template\\, e.g. /pets/{petId}"`
	Method     string `json:"method"                jsonschema:"HTTP method (case-insensitive)"`
	StatusCode string `json:"status_code,omitempty" jsonschema:"Response status code as written in the document (default 200)"`
}

func handleGetResponseSchema(_ context.Context, _ *mcp.CallToolRequest, input getResponseSchemaInput) (*mcp.CallToolResult, any, error) {
	return runQuery(query.GetResponseSchemaQuery, specInput{File: input.File, Content: input.Content}, query.Args{
		Path:       input.Path,
		Method:     input.Method,
		StatusCode: input.StatusCode,
	})
}
