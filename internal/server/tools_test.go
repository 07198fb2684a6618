package server

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolDefinitions(t *testing.T) {
	tools := ToolDefinitions()
	require.Len(t, tools, 4)

	byName := make(map[string]mcp.Tool, len(tools))
	for _, tool := range tools {
		byName[tool.Name] = tool
	}

	for _, name := range []string{toolConvert, toolGetThemes, toolValidate, toolPreview} {
		_, ok := byName[name]
		assert.True(t, ok, "expected tool %s in catalog", name)
	}
}

func TestToolDefinitions_Structure(t *testing.T) {
	for _, tool := range ToolDefinitions() {
		t.Run(tool.Name, func(t *testing.T) {
			assert.NotEmpty(t, tool.Name)
			assert.NotEmpty(t, tool.Description)

			schema, ok := tool.InputSchema.(map[string]any)
			require.True(t, ok, "InputSchema should be a JSON object")
			assert.Equal(t, "object", schema["type"])

			_, ok = schema["properties"].(map[string]any)
			assert.True(t, ok, "InputSchema should declare properties")
		})
	}
}

func TestToolDefinitions_ConvertSchema(t *testing.T) {
	var convert mcp.Tool
	for _, tool := range ToolDefinitions() {
		if tool.Name == toolConvert {
			convert = tool
		}
	}
	require.NotEmpty(t, convert.Name)

	schema := convert.InputSchema.(map[string]any)
	assert.Equal(t, []string{"markdown"}, schema["required"])

	props := schema["properties"].(map[string]any)
	format := props["output_format"].(map[string]any)
	assert.Equal(t, []string{"html", "pdf", "pptx", "png", "jpeg"}, format["enum"])
	assert.Equal(t, "html", format["default"])

	options := props["options"].(map[string]any)
	optionProps := options["properties"].(map[string]any)
	for _, name := range []string{"allow_local_files", "html", "pdf_notes", "pdf_outlines"} {
		_, ok := optionProps[name]
		assert.True(t, ok, "options should declare %s", name)
	}
}

func TestToolDefinitions_Deterministic(t *testing.T) {
	a, err := json.Marshal(ToolDefinitions())
	require.NoError(t, err)
	b, err := json.Marshal(ToolDefinitions())
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestToolDefinitions_DispatchCoverage checks the catalog and the
// dispatch switch agree on the tool name set: every declared tool must be
// routed somewhere other than the unknown-tool fallback.
func TestToolDefinitions_DispatchCoverage(t *testing.T) {
	s := newTestServer(t, &fakeRunner{available: false})

	for _, tool := range ToolDefinitions() {
		result := s.Dispatch(context.Background(), tool.Name, json.RawMessage(`{"markdown":"# Hi"}`))

		require.Len(t, result.Content, 1, "tool %s", tool.Name)
		text := textOf(t, result, 0)
		assert.False(t, strings.HasPrefix(text, "Unknown tool:"),
			"tool %s is declared but not dispatched", tool.Name)
	}
}
