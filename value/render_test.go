package value

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v4"
)

func sampleTree() Value {
	shared := NewMap(2)
	shared.Set("$ref", String("#/components/schemas/Pet"))
	body := shared.Value()

	responses := NewMap(2)
	responses.Set("201", body).Set("400", body)

	root := NewMap(4)
	root.Set("summary", String("Create a pet"))
	root.Set("tags", Strings("pets"))
	root.Set("deprecated", Bool(false))
	root.Set("responses", responses.Value())
	return root.Value()
}

func TestRenderIsAliasFree(t *testing.T) {
	out, err := Render(sampleTree())
	require.NoError(t, err)

	assert.NotContains(t, out, "&", "no anchors")
	assert.NotContains(t, out, "*", "no aliases")
	assert.Equal(t, 2, strings.Count(out, "$ref: '#/components/schemas/Pet'"))
	assert.False(t, strings.HasSuffix(out, "\n"))
}

func TestRenderKeepsKeyOrder(t *testing.T) {
	out, err := Render(sampleTree())
	require.NoError(t, err)

	summary := strings.Index(out, "summary:")
	tags := strings.Index(out, "tags:")
	responses := strings.Index(out, "responses:")
	assert.True(t, summary < tags && tags < responses, "unexpected key order:\n%s", out)
	assert.Less(t, strings.Index(out, "'201':"), strings.Index(out, "'400':"))
}

func TestRenderQuotesAmbiguousStrings(t *testing.T) {
	m := NewMap(3)
	m.Set("code", String("200")).Set("flag", String("true")).Set("count", Int(200))

	out, err := Render(m.Value())
	require.NoError(t, err)

	var back map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &back))
	assert.Equal(t, "200", back["code"])
	assert.Equal(t, "true", back["flag"])
	assert.Equal(t, 200, back["count"])
}

func TestRenderIsDeterministic(t *testing.T) {
	first, err := Render(sampleTree())
	require.NoError(t, err)
	for range 5 {
		again, err := Render(sampleTree())
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRenderLineWidth(t *testing.T) {
	long := strings.Repeat("word ", 40)
	m := NewMap(1)
	m.Set("description", String(strings.TrimSpace(long)))

	narrow, err := Render(m.Value(), WithLineWidth(40))
	require.NoError(t, err)
	for _, line := range strings.Split(narrow, "\n") {
		assert.LessOrEqual(t, len(line), 50, "line too long: %q", line)
	}

	wide, err := Render(m.Value(), WithLineWidth(1000))
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(wide, "\n")+1)
}

func TestRenderScalarRoot(t *testing.T) {
	out, err := Render(String("hello"))
	require.NoError(t, err)
	assert.Equal(t, "hello", out)

	out, err = Render(Absent())
	require.NoError(t, err)
	assert.Equal(t, "null", out)
}

func TestRenderJSONOrdered(t *testing.T) {
	m := NewMap(4)
	m.Set("z", Number("0x10")).Set("a", Number("1.50")).Set("inf", Number(".inf")).Set("n", Null())

	out, err := RenderJSON(m.Value(), WithJSONIndent(""))
	require.NoError(t, err)
	assert.Equal(t, `{"z":16,"a":1.5,"inf":".inf","n":null}`, out)

	indented, err := RenderJSON(sampleTree())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(indented, "{\n  \"summary\""), indented)
}

func TestValueMarshalJSON_Nested(t *testing.T) {
	m := NewMap(2)
	m.Set("b", String("x")).Set("a", Seq(Bool(true), Null()))

	out, err := json.Marshal(struct {
		Doc Value `json:"doc"`
	}{Doc: m.Value()})
	require.NoError(t, err)
	assert.Equal(t, `{"doc":{"b":"x","a":[true,null]}}`, string(out))
}
