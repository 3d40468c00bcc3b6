package mcpserver

import (
	"context"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/oasquery/internal/testutil"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(
		&mcp.Implementation{Name: "oasquery-test", Version: "test"},
		nil,
	)
	registerAllTools(server)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	// Start server in background; it blocks until the connection closes.
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func callSessionTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
	}

	expectedTools := []string{
		"list_endpoints",
		"get_endpoint",
		"get_request_body",
		"get_response_schema",
		"get_path_parameters",
		"list_components",
		"get_component",
		"list_security_schemes",
		"get_examples",
		"search_schema",
	}
	assert.Len(t, result.Tools, len(expectedTools))
	for _, name := range expectedTools {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}

	for _, tool := range result.Tools {
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
		assert.NotNil(t, tool.InputSchema, "tool %q has no input schema", tool.Name)
	}
}

func TestIntegration_GetEndpoint(t *testing.T) {
	session := startTestSession(t)
	path := testutil.WritePetStore(t)

	result := callSessionTool(t, session, "get_endpoint", map[string]any{
		"file":   path,
		"path":   "/pets",
		"method": "POST",
	})
	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "path: /pets")
	assert.Contains(t, text, "summary: Create a pet")
}

func TestIntegration_GetExamples(t *testing.T) {
	session := startTestSession(t)

	result := callSessionTool(t, session, "get_examples", map[string]any{
		"content":     testutil.PetStoreYAML,
		"type":        "response",
		"path":        "/pets/{petId}",
		"method":      "get",
		"status_code": "200",
	})
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "name: Fluffy")
}

func TestIntegration_SearchSchema(t *testing.T) {
	session := startTestSession(t)

	result := callSessionTool(t, session, "search_schema", map[string]any{
		"content": testutil.PetStoreYAML,
		"pattern": "pet",
	})
	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "schemas.PetsResponse")
	assert.Contains(t, text, "/pets/{petId}")

	result = callSessionTool(t, session, "search_schema", map[string]any{
		"content": testutil.PetStoreYAML,
		"pattern": "[",
	})
	assert.True(t, result.IsError)
}

func TestIntegration_Diagnostic(t *testing.T) {
	session := startTestSession(t)

	result := callSessionTool(t, session, "get_path_parameters", map[string]any{
		"content": testutil.PetStoreYAML,
		"path":    "/pets",
	})
	assert.False(t, result.IsError)
	assert.Equal(t, "No parameters defined for /pets.", resultText(t, result))
}
