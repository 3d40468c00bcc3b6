// Package httputil provides the HTTP method names recognized on OpenAPI
// path items.
package httputil

import "slices"

// HTTP Method Constants, as written for path item keys.
const (
	MethodGet     = "get"
	MethodPut     = "put"
	MethodPost    = "post"
	MethodDelete  = "delete"
	MethodOptions = "options"
	MethodHead    = "head"
	MethodPatch   = "patch"
)

// OperationMethods lists the operation keys of a path item in the order they
// are visited. Any other key on a path item (parameters, summary,
// extensions) is not an operation.
var OperationMethods = []string{
	MethodGet,
	MethodPost,
	MethodPut,
	MethodDelete,
	MethodPatch,
	MethodOptions,
	MethodHead,
}

// IsOperationMethod reports whether key names an operation on a path item.
// key must already be lower case.
func IsOperationMethod(key string) bool {
	return slices.Contains(OperationMethods, key)
}
