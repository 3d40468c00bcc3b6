package query

import (
	"fmt"

	"github.com/erraggy/oasquery/value"
)

// Example modes accepted by Examples.
const (
	ExampleRequest   = "request"
	ExampleResponse  = "response"
	ExampleComponent = "component"
)

// ExampleArgs selects where Examples looks.
type ExampleArgs struct {
	// Type is one of ExampleRequest, ExampleResponse, or ExampleComponent.
	Type string
	// Path and Method address the operation for request and response modes.
	Path   string
	Method string
	// StatusCode picks the response in response mode. When empty, the first
	// response in document order is used.
	StatusCode string
	// ComponentType and ComponentName address the component in component mode.
	ComponentType string
	ComponentName string
}

// Examples collects examples keyed by media type. For each media type, a
// multi-example "examples" map is used as is; a single "example" becomes
// {default: {value: <example>}}.
//
// In component mode a component with a "content" map is read per media type;
// any other component is treated as a content node keyed by its own name.
func Examples(doc value.Value, args ExampleArgs) Result {
	switch args.Type {
	case ExampleRequest:
		return requestExamples(doc, args)
	case ExampleResponse:
		return responseExamples(doc, args)
	case ExampleComponent:
		return componentExamples(doc, args)
	default:
		return Diagnosticf("Invalid example type '%s'. Use one of: %s, %s, %s.",
			args.Type, ExampleRequest, ExampleResponse, ExampleComponent)
	}
}

func requestExamples(doc value.Value, args ExampleArgs) Result {
	op, diag := operationFor(doc, args)
	if diag != nil {
		return *diag
	}
	return examplesResult(collectExamples(op.Path("requestBody", "content")),
		fmt.Sprintf("request body of %s %s", upperMethod(args.Method), args.Path))
}

func responseExamples(doc value.Value, args ExampleArgs) Result {
	op, diag := operationFor(doc, args)
	if diag != nil {
		return *diag
	}

	status := args.StatusCode
	var resp value.Value
	if status == "" {
		// First response in document order, not necessarily 200.
		entries := op.Get("responses").Entries()
		if len(entries) == 0 {
			return Diagnosticf("No examples found for responses of %s %s.", upperMethod(args.Method), args.Path)
		}
		status, resp = entries[0].Key, entries[0].Value
	} else {
		resp, diag = lookupResponse(op, args.Path, args.Method, status)
		if diag != nil {
			return *diag
		}
	}
	return examplesResult(collectExamples(resp.Get("content")),
		fmt.Sprintf("response %s of %s %s", status, upperMethod(args.Method), args.Path))
}

func componentExamples(doc value.Value, args ExampleArgs) Result {
	if args.ComponentType == "" || args.ComponentName == "" {
		return Diagnosticf("componentType and componentName are required for component examples.")
	}
	component, diag := lookupComponent(doc, args.ComponentType, args.ComponentName)
	if diag != nil {
		return *diag
	}

	content := component.Get("content")
	if !content.IsMapping() {
		content = value.NewMap(1).Set(args.ComponentName, component).Value()
	}
	return examplesResult(collectExamples(content),
		fmt.Sprintf("component %s.%s", args.ComponentType, args.ComponentName))
}

func operationFor(doc value.Value, args ExampleArgs) (value.Value, *Result) {
	if args.Path == "" || args.Method == "" {
		res := Diagnosticf("path and method are required for %s examples.", args.Type)
		return value.Absent(), &res
	}
	return resolve(doc, args.Path, args.Method)
}

// collectExamples walks a content map (media type -> media type object).
// A named examples map is kept verbatim; a list of examples, as schemas
// carry them, is keyed example1, example2, ... in the single-example shape.
func collectExamples(content value.Value) *value.Map {
	out := value.NewMap(content.Len())
	for _, e := range content.Entries() {
		examples, ok := e.Value.Lookup("examples")
		if ok && examples.IsMapping() {
			out.Set(e.Key, examples)
			continue
		}
		if ok && examples.IsSequence() && examples.Len() > 0 {
			listed := value.NewMap(examples.Len())
			for i, item := range examples.Items() {
				listed.Set(fmt.Sprintf("example%d", i+1), value.NewMap(1).Set("value", item).Value())
			}
			out.Set(e.Key, listed.Value())
			continue
		}
		if example, ok := e.Value.Lookup("example"); ok {
			single := value.NewMap(1).Set("value", example).Value()
			out.Set(e.Key, value.NewMap(1).Set("default", single).Value())
		}
	}
	return out
}

func examplesResult(examples *value.Map, what string) Result {
	if examples.Len() == 0 {
		return Diagnosticf("No examples found for %s.", what)
	}
	return Found(examples.Value())
}
