package query

import (
	"fmt"
	"strings"

	"github.com/erraggy/oasquery/value"
)

// Result is the outcome of an extractor: either a value tree or a Diagnostic.
type Result struct {
	// Value is the extracted tree. It is Absent when Diagnostic is set.
	Value value.Value
	// Diagnostic is a user-facing sentence describing missing data.
	Diagnostic string
}

// Found wraps v as a successful Result.
func Found(v value.Value) Result {
	return Result{Value: v}
}

// Diagnosticf returns a Result carrying a formatted diagnostic sentence.
func Diagnosticf(format string, args ...any) Result {
	return Result{Diagnostic: fmt.Sprintf(format, args...)}
}

// IsDiagnostic reports whether r carries a diagnostic instead of a value.
func (r Result) IsDiagnostic() bool {
	return r.Diagnostic != ""
}

// Render returns the text payload for r: the diagnostic sentence itself, or
// the value rendered as YAML.
func (r Result) Render(opts ...value.RenderOption) (string, error) {
	if r.IsDiagnostic() {
		return r.Diagnostic, nil
	}
	return value.Render(r.Value, opts...)
}

// RenderJSON is like Render but renders values as JSON. Diagnostics are
// returned unchanged.
func (r Result) RenderJSON(opts ...value.RenderOption) (string, error) {
	if r.IsDiagnostic() {
		return r.Diagnostic, nil
	}
	return value.RenderJSON(r.Value, opts...)
}

// orDefault returns v, or def when v is absent.
func orDefault(v, def value.Value) value.Value {
	if v.IsAbsent() {
		return def
	}
	return v
}

// joinOrNone joins names for a diagnostic, or returns "none".
func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}
