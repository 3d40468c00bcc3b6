package query

import (
	"github.com/erraggy/oasquery/value"
)

// ListComponents maps each component category to the names it defines, in
// document order.
func ListComponents(doc value.Value) Result {
	components := doc.Get("components")
	out := value.NewMap(components.Len())
	for _, e := range components.Entries() {
		out.Set(e.Key, value.Strings(e.Value.Keys()...))
	}
	return Found(out.Value())
}

// GetComponent returns components[componentType][name] unchanged.
func GetComponent(doc value.Value, componentType, name string) Result {
	component, diag := lookupComponent(doc, componentType, name)
	if diag != nil {
		return *diag
	}
	return Found(component)
}

func lookupComponent(doc value.Value, componentType, name string) (value.Value, *Result) {
	components := doc.Get("components")
	category, ok := components.Lookup(componentType)
	if !ok {
		res := Diagnosticf("Component type '%s' not found. Available types: %s",
			componentType, joinOrNone(components.Keys()))
		return value.Absent(), &res
	}
	component, ok := category.Lookup(name)
	if !ok {
		res := Diagnosticf("Component '%s' not found in %s. Available: %s",
			name, componentType, joinOrNone(category.Keys()))
		return value.Absent(), &res
	}
	return component, nil
}
