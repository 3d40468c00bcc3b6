package query

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/erraggy/oasquery/internal/httputil"
	"github.com/erraggy/oasquery/value"
)

// Methods lists the HTTP methods recognized on a path item, in the order
// they are visited.
var Methods = httputil.OperationMethods

// normalizeMethod folds method to lower case and reports whether it is one of
// Methods.
func normalizeMethod(method string) (string, bool) {
	m := cases.Lower(language.Und).String(strings.TrimSpace(method))
	return m, httputil.IsOperationMethod(m)
}

// displayMethod returns the upper-case form used in output.
// A Caser is stateful, so each call builds its own.
func displayMethod(method string) string {
	return cases.Upper(language.Und).String(method)
}

// definedMethods returns the methods present on pathItem, in visiting order.
func definedMethods(pathItem value.Value) []string {
	var out []string
	for _, m := range Methods {
		if _, ok := pathItem.Lookup(m); ok {
			out = append(out, m)
		}
	}
	return out
}
