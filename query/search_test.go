package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasquery/internal/testutil"
	"github.com/erraggy/oasquery/oaserrors"
	"github.com/erraggy/oasquery/value"
)

func strs(v value.Value) []string {
	var out []string
	for _, item := range v.Items() {
		out = append(out, item.StringOr(""))
	}
	return out
}

func TestSearch_Pet(t *testing.T) {
	doc := testutil.LoadPetStore(t)

	res, err := Search(doc, "pet")
	require.NoError(t, err)
	require.False(t, res.IsDiagnostic())

	assert.Equal(t, []string{CategoryPaths, CategoryOperations, CategoryParameters, CategoryComponents}, res.Value.Keys())
	assert.Equal(t, []string{"/pets", "/pets/{petId}"}, strs(res.Value.Get(CategoryPaths)))
	assert.Equal(t, []string{"GET /pets", "POST /pets", "GET /pets/{petId}"}, strs(res.Value.Get(CategoryOperations)))
	// Only operation-level parameters are scanned; petId is shared by the path item.
	assert.Equal(t, []string{"limit (GET /pets)"}, strs(res.Value.Get(CategoryParameters)))
	assert.Equal(t, []string{"schemas.Pet", "schemas.NewPet", "schemas.PetsResponse"}, strs(res.Value.Get(CategoryComponents)))
}

func TestSearch_CaseInsensitive(t *testing.T) {
	doc := testutil.LoadPetStore(t)

	res, err := Search(doc, "PETS$")
	require.NoError(t, err)
	assert.Equal(t, []string{"/pets"}, strs(res.Value.Get(CategoryPaths)))
}

func TestSearch_NoMatches(t *testing.T) {
	doc := testutil.LoadPetStore(t)

	res, err := Search(doc, "zebra")
	require.NoError(t, err)
	assert.Equal(t, "No matches found for pattern 'zebra'.", res.Diagnostic)

	out, err := res.Render()
	require.NoError(t, err)
	assert.Equal(t, "No matches found for pattern 'zebra'.", out)
}

func TestSearch_ComponentsOnly(t *testing.T) {
	doc := testutil.LoadPetStore(t)

	res, err := Search(doc, "^NewPet$")
	require.NoError(t, err)
	assert.Equal(t, []string{CategoryComponents}, res.Value.Keys())
	assert.Equal(t, []string{"schemas.NewPet"}, strs(res.Value.Get(CategoryComponents)))
}

func TestSearch_SecuritySchemes(t *testing.T) {
	doc := testutil.LoadPetStore(t)

	res, err := Search(doc, "partners")
	require.NoError(t, err)
	assert.Equal(t, []string{CategoryComponents, CategorySecuritySchemes}, res.Value.Keys())
	assert.Equal(t, []string{"securitySchemes.ApiKeyAuth"}, strs(res.Value.Get(CategoryComponents)))
	assert.Equal(t, []string{"ApiKeyAuth"}, strs(res.Value.Get(CategorySecuritySchemes)))
}

func TestSearch_TagsAndDescriptions(t *testing.T) {
	doc := testutil.LoadYAML(t, `paths:
  /reports:
    head:
      tags: [Billing]
    get:
      description: Download a billing report
      parameters:
        - name: format
          description: Billing export format
        - $ref: '#/components/parameters/Billing'
`)

	res, err := Search(doc, "billing")
	require.NoError(t, err)
	assert.Equal(t, []string{CategoryOperations, CategoryParameters}, res.Value.Keys())
	assert.Equal(t, []string{"GET /reports", "HEAD /reports"}, strs(res.Value.Get(CategoryOperations)))
	assert.Equal(t, []string{"format (GET /reports)"}, strs(res.Value.Get(CategoryParameters)))
}

func TestSearch_InvalidPattern(t *testing.T) {
	doc := testutil.LoadPetStore(t)

	_, err := Search(doc, "pet(")
	require.Error(t, err)
	assert.ErrorIs(t, err, oaserrors.ErrPattern)

	var patternErr *oaserrors.PatternError
	require.ErrorAs(t, err, &patternErr)
	assert.Equal(t, "pet(", patternErr.Pattern)
}

func TestSearch_EmptyDocument(t *testing.T) {
	res, err := Search(testutil.LoadYAML(t, "openapi: 3.0.0\n"), ".*")
	require.NoError(t, err)
	assert.Equal(t, "No matches found for pattern '.*'.", res.Diagnostic)
}

func TestSearch_ParameterWithoutName(t *testing.T) {
	doc := testutil.LoadYAML(t, `openapi: 3.1.0
paths:
  /x:
    get:
      parameters:
        - in: query
          description: Tracking token
        - $ref: '#/components/parameters/Token'
          description: Shared tracking token
`)

	res, err := Search(doc, "tracking")
	require.NoError(t, err)
	assert.Equal(t, []string{CategoryParameters}, res.Value.Keys())
	assert.Equal(t, []string{
		"<unnamed> (GET /x)",
		"#/components/parameters/Token (GET /x)",
	}, strs(res.Value.Get(CategoryParameters)))
}
