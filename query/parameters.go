package query

import (
	"slices"

	"github.com/erraggy/oasquery/value"
)

// PathParameters returns the parameters shared by a path item followed by
// those of one of its operations when method is non-empty. Entries are
// concatenated as written; a parameter repeated at both levels appears twice.
func PathParameters(doc value.Value, path, method string) Result {
	pathItem, ok := doc.Get("paths").Lookup(path)
	if !ok {
		return Diagnosticf("%s", (&NotFoundError{Kind: PathNotFound, Path: path}).Error())
	}

	params := slices.Clone(pathItem.Get("parameters").Items())
	if method == "" {
		if len(params) == 0 {
			return Diagnosticf("No parameters defined for %s.", path)
		}
		return Found(value.Seq(params...))
	}

	op, diag := resolve(doc, path, method)
	if diag != nil {
		return *diag
	}
	params = append(params, op.Get("parameters").Items()...)
	if len(params) == 0 {
		return Diagnosticf("No parameters defined for %s %s.", upperMethod(method), path)
	}
	return Found(value.Seq(params...))
}
