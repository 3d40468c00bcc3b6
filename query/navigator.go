package query

import (
	"fmt"

	"github.com/erraggy/oasquery/value"
)

// NotFoundKind identifies which part of an operation address was missing.
type NotFoundKind int

const (
	// PathNotFound means the path template is not a key of "paths".
	PathNotFound NotFoundKind = iota + 1
	// MethodNotFound means the path exists but has no such method.
	MethodNotFound
)

// NotFoundError reports an unresolvable (path, method) pair. Its message is
// the diagnostic shown to callers.
type NotFoundError struct {
	Kind   NotFoundKind
	Path   string
	Method string
	// Available lists the methods defined on the path, upper-cased.
	Available []string
}

// Error returns the diagnostic sentence.
func (e *NotFoundError) Error() string {
	if e.Kind == PathNotFound {
		return fmt.Sprintf("Path '%s' not found. Use list-endpoints to see available paths.", e.Path)
	}
	return fmt.Sprintf("Method '%s' not found for path '%s'. Available methods: %s",
		upperMethod(e.Method), e.Path, joinOrNone(e.Available))
}

// ResolveOperation returns the operation stored under paths[path][method].
// The path must match a key exactly, braces included; the method is matched
// case-insensitively against Methods. Failures are *NotFoundError.
func ResolveOperation(doc value.Value, path, method string) (value.Value, error) {
	pathItem, ok := doc.Get("paths").Lookup(path)
	if !ok {
		return value.Absent(), &NotFoundError{Kind: PathNotFound, Path: path, Method: method}
	}

	m, known := normalizeMethod(method)
	if known {
		if op, ok := pathItem.Lookup(m); ok {
			return op, nil
		}
	}

	defined := definedMethods(pathItem)
	available := make([]string, 0, len(defined))
	for _, d := range defined {
		available = append(available, displayMethod(d))
	}
	return value.Absent(), &NotFoundError{Kind: MethodNotFound, Path: path, Method: method, Available: available}
}

// resolve is ResolveOperation with the error turned into a diagnostic.
func resolve(doc value.Value, path, method string) (value.Value, *Result) {
	op, err := ResolveOperation(doc, path, method)
	if err != nil {
		res := Diagnosticf("%s", err.Error())
		return value.Absent(), &res
	}
	return op, nil
}
