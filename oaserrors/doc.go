// Package oaserrors provides structured error types for oasquery.
//
// Import path: github.com/erraggy/oasquery/oaserrors
//
// Only conditions that abort a query are errors. A missing path, method, status
// code, component, or example is not an error: the query package reports those as
// diagnostics in its result. The error types here cover the rest:
//
//   - [ParseError]: the document could not be read or decoded from YAML/JSON
//   - [ResourceLimitError]: the document exceeds a size or nesting limit
//   - [PatternError]: a search pattern is not a valid regular expression
//   - [ConfigError]: invalid options passed to the loader or a query
//
// # Sentinel Errors
//
// Each error type has a corresponding sentinel error for use with errors.Is():
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrResourceLimit]: Matches any [ResourceLimitError]
//   - [ErrPattern]: Matches any [PatternError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Usage Examples
//
//	result, err := parser.ParseWithOptions(parser.WithFilePath("api.yaml"))
//	if errors.Is(err, oaserrors.ErrParse) {
//	    // the file is missing or not YAML/JSON
//	}
//
//	var patErr *oaserrors.PatternError
//	if errors.As(err, &patErr) {
//	    fmt.Printf("bad pattern %q\n", patErr.Pattern)
//	}
package oaserrors
