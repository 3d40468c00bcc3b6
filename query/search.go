package query

import (
	"fmt"
	"regexp"

	"github.com/erraggy/oasquery/oaserrors"
	"github.com/erraggy/oasquery/value"
)

// Search categories, in the order they appear in a result.
const (
	CategoryPaths           = "paths"
	CategoryOperations      = "operations"
	CategoryParameters      = "parameters"
	CategoryComponents      = "components"
	CategorySecuritySchemes = "securitySchemes"
)

const unnamedParameter = "<unnamed>"

// Search matches pattern case-insensitively against the document. The
// pattern is RE2 syntax and is used as given; a malformed pattern returns a
// *oaserrors.PatternError.
//
// Matches are grouped by category:
//
//	paths            path templates
//	operations       "METHOD path" by summary, description, or tag
//	parameters       "name (METHOD path)" by operation parameter name or description
//	components       "category.name" by name or description
//	securitySchemes  scheme names by name or description
//
// Categories without matches are left out. If nothing matches, the result is
// a diagnostic.
func Search(doc value.Value, pattern string) (Result, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return Result{}, &oaserrors.PatternError{Pattern: pattern, Cause: err}
	}

	s := &searcher{re: re}
	paths := doc.Get("paths").Entries()
	components := doc.Get("components")

	out := value.NewMap(5)
	addCategory(out, CategoryPaths, s.paths(paths))
	addCategory(out, CategoryOperations, s.operations(paths))
	addCategory(out, CategoryParameters, s.parameters(paths))
	addCategory(out, CategoryComponents, s.components(components))
	addCategory(out, CategorySecuritySchemes, s.securitySchemes(components.Get("securitySchemes")))

	if out.Len() == 0 {
		return Diagnosticf("No matches found for pattern '%s'.", pattern), nil
	}
	return Found(out.Value()), nil
}

func addCategory(out *value.Map, name string, matches []string) {
	if len(matches) > 0 {
		out.Set(name, value.Strings(matches...))
	}
}

type searcher struct {
	re *regexp.Regexp
}

// match reports whether v is a scalar whose text matches. Absent fields and
// collections never match.
func (s *searcher) match(v value.Value) bool {
	switch v.Kind() {
	case value.KindString, value.KindNumber, value.KindBool:
		return s.re.MatchString(v.Scalar())
	default:
		return false
	}
}

func (s *searcher) paths(paths []value.Entry) []string {
	var out []string
	for _, e := range paths {
		if s.re.MatchString(e.Key) {
			out = append(out, e.Key)
		}
	}
	return out
}

func (s *searcher) operations(paths []value.Entry) []string {
	var out []string
	for _, e := range paths {
		for _, m := range definedMethods(e.Value) {
			op := e.Value.Get(m)
			if s.match(op.Get("summary")) || s.match(op.Get("description")) || s.anyMatch(op.Get("tags")) {
				out = append(out, displayMethod(m)+" "+e.Key)
			}
		}
	}
	return out
}

func (s *searcher) anyMatch(items value.Value) bool {
	for _, item := range items.Items() {
		if s.match(item) {
			return true
		}
	}
	return false
}

func (s *searcher) parameters(paths []value.Entry) []string {
	var out []string
	for _, e := range paths {
		for _, m := range definedMethods(e.Value) {
			for _, param := range e.Value.Path(m, "parameters").Items() {
				name := param.Get("name")
				if s.match(name) || s.match(param.Get("description")) {
					out = append(out, fmt.Sprintf("%s (%s %s)", parameterLabel(param), displayMethod(m), e.Key))
				}
			}
		}
	}
	return out
}

// parameterLabel names a parameter hit by its name, then its $ref, then
// unnamedParameter.
func parameterLabel(param value.Value) string {
	if name := param.Get("name").Scalar(); name != "" {
		return name
	}
	if ref := param.Get("$ref").StringOr(""); ref != "" {
		return ref
	}
	return unnamedParameter
}

func (s *searcher) components(components value.Value) []string {
	var out []string
	for _, category := range components.Entries() {
		for _, c := range category.Value.Entries() {
			if s.re.MatchString(c.Key) || s.match(c.Value.Get("description")) {
				out = append(out, category.Key+"."+c.Key)
			}
		}
	}
	return out
}

func (s *searcher) securitySchemes(schemes value.Value) []string {
	var out []string
	for _, e := range schemes.Entries() {
		if s.re.MatchString(e.Key) || s.match(e.Value.Get("description")) {
			out = append(out, e.Key)
		}
	}
	return out
}
