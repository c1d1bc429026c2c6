package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"no path", errors.New("invalid format"), "invalid format"},
		{"home path", errors.New("open /home/alice/specs/api.yaml: no such file"), "open <path>: no such file"},
		{"tmp path", errors.New("read /tmp/x/y.json failed"), "read <path> failed"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestErrResult(t *testing.T) {
	result := errResult(errors.New("boom at /var/lib/spec.yaml"))
	require.True(t, result.IsError)
	require.Len(t, result.Content, 1)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Equal(t, "boom at <path>", text.Text)
}

func TestMakeSlice(t *testing.T) {
	assert.Nil(t, makeSlice[string](0))
	s := makeSlice[string](3)
	assert.NotNil(t, s)
	assert.Empty(t, s)
	assert.Equal(t, 3, cap(s))
}

// startTestSession connects an in-process client to a fresh server.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := newServer(ctx)
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})
	return session
}

func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	var data []byte
	if result.StructuredContent != nil {
		var err error
		data, err = json.Marshal(result.StructuredContent)
		require.NoError(t, err)
	} else {
		require.NotEmpty(t, result.Content)
		text, ok := result.Content[0].(*mcp.TextContent)
		require.True(t, ok, "expected TextContent, got %T", result.Content[0])
		data = []byte(text.Text)
	}

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	return m
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.Len(t, result.Tools, 3)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
	}
	for _, name := range []string{"parse", "convert", "validate"} {
		assert.True(t, slices.Contains(names, name), "missing tool: %s", name)
	}
}

func TestIntegration_CallTool_Convert(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "convert",
		Arguments: map[string]any{
			"spec":     map[string]any{"content": minimalSwagger},
			"validate": true,
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "2.0", structured["source_version"])
	assert.Equal(t, "3.0.1", structured["target_version"])
	assert.Equal(t, true, structured["success"])
	validation, ok := structured["validation"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, true, validation["valid"])
}

func TestIntegration_CallTool_Parse(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "parse",
		Arguments: map[string]any{"spec": map[string]any{"content": minimalSwagger}},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "Minimal", structured["title"])
	assert.Equal(t, "api.example.com", structured["host"])
	assert.Equal(t, float64(1), structured["operation_count"])
}

func TestIntegration_CallTool_Error(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "convert",
		Arguments: map[string]any{"spec": map[string]any{}},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}
