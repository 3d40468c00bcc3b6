package query

import (
	"github.com/erraggy/oasquery/value"
)

const noSecuritySchemes = "No security schemes defined in the specification."

// ListSecuritySchemes summarizes components.securitySchemes. Each entry has
// type and description plus the fields that matter for its type:
//
//	apiKey         in, name
//	http           scheme, bearerFormat (when set)
//	oauth2         flows (the flow names)
//	openIdConnect  openIdConnectUrl
func ListSecuritySchemes(doc value.Value) Result {
	schemes := doc.Path("components", "securitySchemes")
	if schemes.Len() == 0 || !schemes.IsMapping() {
		return Result{Diagnostic: noSecuritySchemes}
	}

	out := value.NewMap(schemes.Len())
	for _, e := range schemes.Entries() {
		out.Set(e.Key, summarizeScheme(e.Value))
	}
	return Found(out.Value())
}

func summarizeScheme(scheme value.Value) value.Value {
	typ := scheme.Get("type")
	summary := value.NewMap(4).
		Set("type", orDefault(typ, value.Null())).
		Set("description", orDefault(scheme.Get("description"), value.String("")))

	switch typ.StringOr("") {
	case "apiKey":
		summary.Set("in", orDefault(scheme.Get("in"), value.Null()))
		summary.Set("name", orDefault(scheme.Get("name"), value.Null()))
	case "http":
		summary.Set("scheme", orDefault(scheme.Get("scheme"), value.Null()))
		if bf := scheme.Get("bearerFormat"); bf.Exists() {
			summary.Set("bearerFormat", bf)
		}
	case "oauth2":
		summary.Set("flows", value.Strings(scheme.Get("flows").Keys()...))
	case "openIdConnect":
		summary.Set("openIdConnectUrl", orDefault(scheme.Get("openIdConnectUrl"), value.Null()))
	}
	return summary.Value()
}
