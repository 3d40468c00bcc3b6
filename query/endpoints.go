package query

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/erraggy/oasquery/oaserrors"
	"github.com/erraggy/oasquery/value"
)

const noSummary = "No summary"

// pathPatternEscaper makes braces literal so templates like /pets/{petId}
// can appear in a filter without being read as alternation.
var pathPatternEscaper = strings.NewReplacer("{", `\{`, "}", `\}`)

// ListEndpoints maps every path to its methods and their summaries:
//
//	/pets:
//	  GET: List all pets
//	  POST: No summary
//
// A non-empty filter keeps only paths matching the glob, where * matches
// within one segment and ** matches any number of segments. A malformed
// filter returns a *oaserrors.PatternError.
func ListEndpoints(doc value.Value, filter string) (Result, error) {
	var pattern string
	if filter != "" {
		pattern = pathPatternEscaper.Replace(filter)
		if !doublestar.ValidatePattern(pattern) {
			return Result{}, &oaserrors.PatternError{Pattern: filter, Cause: doublestar.ErrBadPattern}
		}
	}

	out := value.NewMap(doc.Get("paths").Len())
	for _, e := range doc.Get("paths").Entries() {
		if pattern != "" && !doublestar.MatchUnvalidated(pattern, e.Key) {
			continue
		}
		methods := value.NewMap(len(Methods))
		for _, m := range definedMethods(e.Value) {
			summary := e.Value.Path(m, "summary").StringOr(noSummary)
			methods.Set(displayMethod(m), value.String(summary))
		}
		out.Set(e.Key, methods.Value())
	}
	return Found(out.Value()), nil
}

// GetEndpoint returns a flattened view of one operation. Fields the operation
// omits are filled with empty defaults so the shape is always the same.
func GetEndpoint(doc value.Value, path, method string) Result {
	op, diag := resolve(doc, path, method)
	if diag != nil {
		return *diag
	}

	detail := value.NewMap(10).
		Set("path", value.String(path)).
		Set("method", value.String(upperMethod(method))).
		Set("summary", orDefault(op.Get("summary"), value.String(""))).
		Set("description", orDefault(op.Get("description"), value.String(""))).
		Set("tags", orDefault(op.Get("tags"), value.Seq())).
		Set("parameters", orDefault(op.Get("parameters"), value.Seq())).
		Set("requestBody", orDefault(op.Get("requestBody"), value.Null())).
		Set("responses", orDefault(op.Get("responses"), value.NewMap(0).Value())).
		Set("security", orDefault(op.Get("security"), value.Null())).
		Set("deprecated", orDefault(op.Get("deprecated"), value.Bool(false)))
	return Found(detail.Value())
}
