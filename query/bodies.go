package query

import (
	"github.com/erraggy/oasquery/value"
)

// DefaultStatusCode is the response looked up when no status code is given.
const DefaultStatusCode = "200"

// RequestBody returns the requestBody of an operation.
func RequestBody(doc value.Value, path, method string) Result {
	op, diag := resolve(doc, path, method)
	if diag != nil {
		return *diag
	}

	body := op.Get("requestBody")
	if !body.Exists() || body.IsNull() {
		return Diagnosticf("No request body defined for %s %s.", upperMethod(method), path)
	}
	return Found(body)
}

// ResponseSchema returns the response for statusCode, falling back to the
// "default" response. An empty statusCode means DefaultStatusCode.
func ResponseSchema(doc value.Value, path, method, statusCode string) Result {
	op, diag := resolve(doc, path, method)
	if diag != nil {
		return *diag
	}

	resp, diag := lookupResponse(op, path, method, statusCode)
	if diag != nil {
		return *diag
	}
	return Found(resp)
}

// lookupResponse finds statusCode, then "default", among the operation's
// responses. Keys are compared as written in the document.
func lookupResponse(op value.Value, path, method, statusCode string) (value.Value, *Result) {
	if statusCode == "" {
		statusCode = DefaultStatusCode
	}
	responses := op.Get("responses")
	if resp, ok := responses.Lookup(statusCode); ok {
		return resp, nil
	}
	if resp, ok := responses.Lookup("default"); ok {
		return resp, nil
	}
	res := Diagnosticf("Response '%s' not found for %s %s. Available status codes: %s",
		statusCode, upperMethod(method), path, joinOrNone(responses.Keys()))
	return value.Absent(), &res
}

// upperMethod normalizes and upper-cases a method for diagnostics.
func upperMethod(method string) string {
	m, _ := normalizeMethod(method)
	return displayMethod(m)
}
