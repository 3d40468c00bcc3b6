package query

import (
	"errors"
	"fmt"

	"github.com/erraggy/oasquery/value"
)

// Query names accepted by Dispatch.
const (
	ListEndpointsQuery       = "list-endpoints"
	GetEndpointQuery         = "get-endpoint"
	GetRequestBodyQuery      = "get-request-body"
	GetResponseSchemaQuery   = "get-response-schema"
	GetPathParametersQuery   = "get-path-parameters"
	ListComponentsQuery      = "list-components"
	GetComponentQuery        = "get-component"
	ListSecuritySchemesQuery = "list-security-schemes"
	GetExamplesQuery         = "get-examples"
	SearchSchemaQuery        = "search-schema"
)

// ErrUnknownQuery is returned by Dispatch for names not listed in Names.
var ErrUnknownQuery = errors.New("unknown query")

// Names returns every query name in a stable order.
func Names() []string {
	return []string{
		ListEndpointsQuery,
		GetEndpointQuery,
		GetRequestBodyQuery,
		GetResponseSchemaQuery,
		GetPathParametersQuery,
		ListComponentsQuery,
		GetComponentQuery,
		ListSecuritySchemesQuery,
		GetExamplesQuery,
		SearchSchemaQuery,
	}
}

// Args carries the arguments of any query. Each query reads only the fields
// it needs.
type Args struct {
	Path       string
	Method     string
	StatusCode string
	// PathFilter is the optional glob for list-endpoints.
	PathFilter string
	// Type is the component category for get-component and the example mode
	// for get-examples.
	Type          string
	Name          string
	ComponentType string
	ComponentName string
	Pattern       string
}

// Dispatch runs the named query against doc.
func Dispatch(doc value.Value, name string, args Args) (Result, error) {
	switch name {
	case ListEndpointsQuery:
		return ListEndpoints(doc, args.PathFilter)
	case GetEndpointQuery:
		return GetEndpoint(doc, args.Path, args.Method), nil
	case GetRequestBodyQuery:
		return RequestBody(doc, args.Path, args.Method), nil
	case GetResponseSchemaQuery:
		return ResponseSchema(doc, args.Path, args.Method, args.StatusCode), nil
	case GetPathParametersQuery:
		return PathParameters(doc, args.Path, args.Method), nil
	case ListComponentsQuery:
		return ListComponents(doc), nil
	case GetComponentQuery:
		return GetComponent(doc, args.Type, args.Name), nil
	case ListSecuritySchemesQuery:
		return ListSecuritySchemes(doc), nil
	case GetExamplesQuery:
		return Examples(doc, ExampleArgs{
			Type:          args.Type,
			Path:          args.Path,
			Method:        args.Method,
			StatusCode:    args.StatusCode,
			ComponentType: args.ComponentType,
			ComponentName: args.ComponentName,
		}), nil
	case SearchSchemaQuery:
		return Search(doc, args.Pattern)
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrUnknownQuery, name)
	}
}
