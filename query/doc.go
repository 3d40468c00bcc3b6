// Package query answers read-only questions about a loaded OpenAPI document.
//
// Every function works on the generic tree produced by the parser package
// (a value.Value) rather than on a typed OpenAPI model, so partial or
// malformed documents never cause a failure: missing sections read as empty.
//
// # Results and diagnostics
//
// Extractors return a Result. A Result either carries a value tree or a
// Diagnostic, a plain sentence explaining what could not be found and, where
// cheap, which alternatives exist:
//
//	res := query.ResponseSchema(doc, "/pets", "get", "404")
//	if res.IsDiagnostic() {
//		fmt.Println(res.Diagnostic)
//		// Response '404' not found for GET /pets. Available status codes: 200, default
//	}
//
// Diagnostics are not errors. The only errors returned by this package are
// malformed patterns (see Search and ListEndpoints) and unknown query names
// passed to Dispatch.
//
// # Ordering
//
// Output follows document order. Within a path item, methods are visited in
// the fixed order get, post, put, delete, patch, options, head.
package query
