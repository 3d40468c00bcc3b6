package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasquery/internal/testutil"
)

const examplesDoc = `paths:
  /orders:
    post:
      requestBody:
        content:
          application/json:
            examples:
              small:
                summary: One item
                value: {items: 1}
              large:
                value: {items: 50}
            example: {ignored: true}
          application/xml:
            schema:
              type: object
      responses:
        '404':
          description: Not found
          content:
            application/json:
              example: {error: missing}
        '200':
          description: OK
          content:
            application/json:
              example: {id: 7}
components:
  schemas:
    Order:
      type: object
      example:
        id: 7
    Plain:
      type: string
  responses:
    Error:
      description: Error payload
      content:
        application/json:
          examples:
            boom:
              value: {error: boom}
`

func TestExamples_ResponseFluffy(t *testing.T) {
	doc := testutil.LoadPetStore(t)

	res := Examples(doc, ExampleArgs{Type: ExampleResponse, Path: "/pets/{petId}", Method: "get", StatusCode: "200"})
	require.False(t, res.IsDiagnostic(), res.Diagnostic)

	assert.Equal(t, []string{"application/json"}, res.Value.Keys())
	pet := res.Value.Path("application/json", "default", "value")
	assert.Equal(t, "1", pet.Get("id").Scalar())
	assert.Equal(t, "Fluffy", pet.Get("name").StringOr(""))
}

func TestExamples_Request(t *testing.T) {
	doc := testutil.LoadPetStore(t)

	res := Examples(doc, ExampleArgs{Type: ExampleRequest, Path: "/pets", Method: "POST"})
	require.False(t, res.IsDiagnostic(), res.Diagnostic)
	assert.Equal(t, "Rex", res.Value.Path("application/json", "default", "value", "name").StringOr(""))

	res = Examples(doc, ExampleArgs{Type: ExampleRequest, Path: "/pets", Method: "get"})
	assert.Equal(t, "No examples found for request body of GET /pets.", res.Diagnostic)
}

func TestExamples_MultipleExamplesVerbatim(t *testing.T) {
	doc := testutil.LoadYAML(t, examplesDoc)

	res := Examples(doc, ExampleArgs{Type: ExampleRequest, Path: "/orders", Method: "post"})
	require.False(t, res.IsDiagnostic(), res.Diagnostic)

	// Media types without examples contribute nothing.
	assert.Equal(t, []string{"application/json"}, res.Value.Keys())
	assert.True(t, res.Value.Get("application/json").Equal(
		doc.Path("paths", "/orders", "post", "requestBody", "content", "application/json", "examples")))
}

func TestExamples_ResponseFirstInDocumentOrder(t *testing.T) {
	doc := testutil.LoadYAML(t, examplesDoc)

	res := Examples(doc, ExampleArgs{Type: ExampleResponse, Path: "/orders", Method: "post"})
	require.False(t, res.IsDiagnostic(), res.Diagnostic)
	assert.Equal(t, "missing", res.Value.Path("application/json", "default", "value", "error").StringOr(""))

	res = Examples(doc, ExampleArgs{Type: ExampleResponse, Path: "/orders", Method: "post", StatusCode: "200"})
	require.False(t, res.IsDiagnostic(), res.Diagnostic)
	assert.Equal(t, "7", res.Value.Path("application/json", "default", "value", "id").Scalar())
}

func TestExamples_ResponseDiagnostics(t *testing.T) {
	doc := testutil.LoadPetStore(t)

	tests := []struct {
		name string
		args ExampleArgs
		want string
	}{
		{
			name: "response without content",
			args: ExampleArgs{Type: ExampleResponse, Path: "/pets/{petId}", Method: "get", StatusCode: "404"},
			want: "No examples found for response 404 of GET /pets/{petId}.",
		},
		{
			name: "default fallback without examples",
			args: ExampleArgs{Type: ExampleResponse, Path: "/pets", Method: "get", StatusCode: "500"},
			want: "No examples found for response 500 of GET /pets.",
		},
		{
			name: "unknown status code",
			args: ExampleArgs{Type: ExampleResponse, Path: "/pets", Method: "post", StatusCode: "500"},
			want: "Response '500' not found for POST /pets. Available status codes: 201, 400",
		},
		{
			name: "first response has no examples",
			args: ExampleArgs{Type: ExampleResponse, Path: "/pets", Method: "post"},
			want: "No examples found for response 201 of POST /pets.",
		},
		{
			name: "missing address",
			args: ExampleArgs{Type: ExampleResponse, Path: "/pets"},
			want: "path and method are required for response examples.",
		},
		{
			name: "unknown path",
			args: ExampleArgs{Type: ExampleRequest, Path: "/dogs", Method: "get"},
			want: "Path '/dogs' not found. Use list-endpoints to see available paths.",
		},
		{
			name: "invalid type",
			args: ExampleArgs{Type: "header"},
			want: "Invalid example type 'header'. Use one of: request, response, component.",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Examples(doc, tt.args).Diagnostic)
		})
	}
}

func TestExamples_NoResponses(t *testing.T) {
	doc := testutil.LoadYAML(t, "paths:\n  /a:\n    get: {}\n")

	res := Examples(doc, ExampleArgs{Type: ExampleResponse, Path: "/a", Method: "get"})
	assert.Equal(t, "No examples found for responses of GET /a.", res.Diagnostic)
}

func TestExamples_Component(t *testing.T) {
	doc := testutil.LoadYAML(t, examplesDoc)

	// A component without content contributes under its own name.
	res := Examples(doc, ExampleArgs{Type: ExampleComponent, ComponentType: "schemas", ComponentName: "Order"})
	require.False(t, res.IsDiagnostic(), res.Diagnostic)
	assert.Equal(t, []string{"Order"}, res.Value.Keys())
	assert.Equal(t, "7", res.Value.Path("Order", "default", "value", "id").Scalar())

	// A component with content is read per media type.
	res = Examples(doc, ExampleArgs{Type: ExampleComponent, ComponentType: "responses", ComponentName: "Error"})
	require.False(t, res.IsDiagnostic(), res.Diagnostic)
	assert.Equal(t, "boom", res.Value.Path("application/json", "boom", "value", "error").StringOr(""))
}

func TestExamples_ComponentDiagnostics(t *testing.T) {
	doc := testutil.LoadYAML(t, examplesDoc)

	res := Examples(doc, ExampleArgs{Type: ExampleComponent, ComponentType: "schemas", ComponentName: "Plain"})
	assert.Equal(t, "No examples found for component schemas.Plain.", res.Diagnostic)

	res = Examples(doc, ExampleArgs{Type: ExampleComponent, ComponentType: "schemas"})
	assert.Equal(t, "componentType and componentName are required for component examples.", res.Diagnostic)

	res = Examples(doc, ExampleArgs{Type: ExampleComponent, ComponentType: "schemas", ComponentName: "Missing"})
	assert.Equal(t, "Component 'Missing' not found in schemas. Available: Order, Plain", res.Diagnostic)
}

func TestExamples_ComponentExampleList(t *testing.T) {
	doc := testutil.LoadYAML(t, `openapi: 3.1.0
components:
  schemas:
    Count:
      type: integer
      examples: [1, 2]
    Empty:
      type: integer
      examples: []
      example: 0
`)

	res := Examples(doc, ExampleArgs{Type: ExampleComponent, ComponentType: "schemas", ComponentName: "Count"})
	require.False(t, res.IsDiagnostic(), res.Diagnostic)
	assert.Equal(t, []string{"example1", "example2"}, res.Value.Get("Count").Keys())
	assert.Equal(t, "1", res.Value.Path("Count", "example1", "value").Scalar())
	assert.Equal(t, "2", res.Value.Path("Count", "example2", "value").Scalar())

	// An empty list falls back to the single example.
	res = Examples(doc, ExampleArgs{Type: ExampleComponent, ComponentType: "schemas", ComponentName: "Empty"})
	require.False(t, res.IsDiagnostic(), res.Diagnostic)
	assert.Equal(t, "0", res.Value.Path("Empty", "default", "value").Scalar())
}
