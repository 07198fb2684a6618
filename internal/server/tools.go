package server

import "github.com/modelcontextprotocol/go-sdk/mcp"

// Tool names form a closed set. ToolDefinitions and Dispatch must agree
// on it; TestToolDefinitions_DispatchCoverage checks they do.
const (
	toolConvert   = "marp_convert"
	toolGetThemes = "marp_get_themes"
	toolValidate  = "marp_validate"
	toolPreview   = "marp_preview"
)

// ToolDefinitions returns all available tools. The catalog is static:
// pure, deterministic, and safe to call concurrently.
func ToolDefinitions() []mcp.Tool {
	return []mcp.Tool{
		{
			Name:        toolConvert,
			Description: "Convert Markdown to presentation slides using Marp",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"markdown": map[string]any{
						"type":        "string",
						"description": "Markdown content with Marp directives",
					},
					"output_format": map[string]any{
						"type":        "string",
						"enum":        []string{"html", "pdf", "pptx", "png", "jpeg"},
						"default":     "html",
						"description": "Output format for the presentation",
					},
					"theme": map[string]any{
						"type":        "string",
						"description": "Theme name (default, gaia, uncover) or path to custom CSS",
					},
					"options": map[string]any{
						"type":        "object",
						"description": "Additional Marp CLI options",
						"properties": map[string]any{
							"allow_local_files": map[string]any{"type": "boolean"},
							"html":              map[string]any{"type": "boolean"},
							"pdf_notes":         map[string]any{"type": "boolean"},
							"pdf_outlines":      map[string]any{"type": "boolean"},
						},
					},
				},
				"required": []string{"markdown"},
			},
		},
		{
			Name:        toolGetThemes,
			Description: "Get list of available Marp themes",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"include_builtin": map[string]any{
						"type":        "boolean",
						"default":     true,
						"description": "Include built-in themes in the list",
					},
				},
			},
		},
		{
			Name:        toolValidate,
			Description: "Validate Marp markdown syntax",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"markdown": map[string]any{
						"type":        "string",
						"description": "Markdown content to validate",
					},
				},
				"required": []string{"markdown"},
			},
		},
		{
			Name:        toolPreview,
			Description: "Generate a preview of the presentation",
			InputSchema: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"markdown": map[string]any{
						"type":        "string",
						"description": "Markdown content with Marp directives",
					},
					"theme": map[string]any{
						"type":        "string",
						"description": "Theme to use for preview",
					},
					"slide_number": map[string]any{
						"type":        "integer",
						"description": "Specific slide to preview (1-indexed)",
						"minimum":     1,
					},
				},
				"required": []string{"markdown"},
			},
		},
	}
}
