// Package oasquery answers targeted questions about a single OpenAPI document
// so a caller never has to read the whole file.
//
// The module is split into small packages that compose into a pipeline:
//
//   - parser: Load a YAML or JSON document into an ordered value tree
//   - value: The immutable, document-ordered tree and its YAML/JSON rendering
//   - query: Read-only extractors over the tree (endpoints, bodies, responses,
//     parameters, components, security schemes, examples, search)
//   - oaserrors: Structured error types shared by every package
//
// Every query is a pure function of the document and its arguments. Nothing is
// cached between calls, so edits to the file are visible on the next query.
//
// # Quick Start
//
// Load a document and list its endpoints:
//
//	import (
//		"github.com/erraggy/oasquery/parser"
//		"github.com/erraggy/oasquery/query"
//	)
//
//	res, err := parser.ParseWithOptions(parser.WithFilePath("openapi.yaml"))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	out, err := query.ListEndpoints(res.Document, "/pets/**")
//	if err != nil {
//		log.Fatal(err)
//	}
//	text, _ := out.Render()
//	fmt.Println(text)
//
// # Diagnostics
//
// Missing data is not an error. A query for an unknown path, method, status
// code, component, or example returns a [query.Result] whose Diagnostic is a
// sentence naming the valid alternatives, for example:
//
//	Method 'DELETE' not found for path '/pets'. Available methods: GET, POST
//
// Only load failures ([oaserrors.ParseError], [oaserrors.ResourceLimitError])
// and malformed search or filter patterns ([oaserrors.PatternError]) are
// returned as errors.
//
// # Running Queries by Name
//
// [query.Dispatch] runs any query by its name with a single [query.Args]
// value. The CLI and the MCP server both go through it:
//
//	res, err := query.Dispatch(doc, query.GetEndpointQuery, query.Args{
//		Path:   "/pets/{petId}",
//		Method: "get",
//	})
//
// # Command Line
//
// The oasquery command exposes each query as a subcommand and serves all of
// them as MCP tools over stdio with "oasquery mcp":
//
//	oasquery list-endpoints openapi.yaml
//	oasquery get-response-schema -path /pets -method get -status 200 openapi.yaml
//	oasquery search-schema -pattern 'pet' -format json openapi.yaml
//
// Settings come from OASQUERY_* environment variables; run "oasquery help"
// for the list.
package oasquery
