package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/ironsheep/marp-tools-mcp/internal/marp"
	"github.com/ironsheep/marp-tools-mcp/internal/scratch"
)

// sectionMarker opens each rendered slide in Marp's HTML output. Preview
// counts its occurrences to report a slide total.
const sectionMarker = "<section"

// Dispatch resolves one tool invocation to a result envelope. It is the
// single entry point behind every registered tool handler.
//
// Every call produces exactly one result. Failures of any kind — renderer
// unavailable, nonzero exit, missing output, I/O fault — come back as
// text content, never as an error, so the session stays open.
func (s *Server) Dispatch(ctx context.Context, name string, args json.RawMessage) *mcp.CallToolResult {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}

	logger := s.logger.With(
		zap.String("tool", name),
		zap.String("invocation", uuid.NewString()),
	)
	logger.Info("dispatching tool call")

	switch name {
	case toolConvert:
		return s.handleConvert(ctx, logger, args)
	case toolGetThemes:
		return s.handleGetThemes(logger, args)
	case toolValidate:
		return s.handleValidate(ctx, logger, args)
	case toolPreview:
		return s.handlePreview(ctx, logger, args)
	default:
		logger.Warn("unknown tool requested")
		return textResult(fmt.Sprintf("Unknown tool: %s", name))
	}
}

// runMarp applies the shared probe-then-invoke protocol: a version query
// first, then the real invocation. An unreachable binary short-circuits
// with the fixed install hint.
func (s *Server) runMarp(ctx context.Context, logger *zap.Logger, args []string) marp.Outcome {
	if !s.runner.Available(ctx) {
		logger.Warn("marp binary unavailable")
		return marp.Outcome{Err: marp.InstallHint}
	}
	outcome := s.runner.Run(ctx, args, "")
	if !outcome.Success {
		logger.Warn("marp invocation failed", zap.String("error", outcome.Err))
	}
	return outcome
}

// === marp_convert ===

type convertArgs struct {
	Markdown     string         `json:"markdown"`
	OutputFormat string         `json:"output_format"`
	Theme        string         `json:"theme"`
	Options      convertOptions `json:"options"`
}

type convertOptions struct {
	AllowLocalFiles bool `json:"allow_local_files"`
	HTML            bool `json:"html"`
	PDFNotes        bool `json:"pdf_notes"`
	PDFOutlines     bool `json:"pdf_outlines"`
}

// flags translates the option booleans into their Marp CLI flags.
func (o convertOptions) flags() []string {
	var flags []string
	if o.AllowLocalFiles {
		flags = append(flags, "--allow-local-files")
	}
	if o.HTML {
		flags = append(flags, "--html")
	}
	if o.PDFNotes {
		flags = append(flags, "--pdf-notes")
	}
	if o.PDFOutlines {
		flags = append(flags, "--pdf-outlines")
	}
	return flags
}

func (s *Server) handleConvert(ctx context.Context, logger *zap.Logger, raw json.RawMessage) *mcp.CallToolResult {
	var args convertArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return textResult(fmt.Sprintf("Invalid arguments: %v", err))
	}
	if args.OutputFormat == "" {
		args.OutputFormat = "html"
	}

	var result *mcp.CallToolResult
	err := scratch.WithDir(func(dir string) error {
		inputPath := filepath.Join(dir, "input.md")
		if err := os.WriteFile(inputPath, []byte(args.Markdown), 0o600); err != nil {
			return fmt.Errorf("failed to write input file: %w", err)
		}

		ext := marp.OutputExtension(args.OutputFormat)
		outputPath := filepath.Join(dir, "output"+ext)

		cmdArgs := []string{inputPath, "-o", outputPath}
		if args.Theme != "" {
			cmdArgs = append(cmdArgs, "--theme", args.Theme)
		}
		cmdArgs = append(cmdArgs, args.Options.flags()...)

		outcome := s.runMarp(ctx, logger, cmdArgs)
		if !outcome.Success || !fileExists(outputPath) {
			result = textResult(fmt.Sprintf("Error converting markdown: %s", outcome.ErrorText()))
			return nil
		}

		switch args.OutputFormat {
		case "png", "jpeg":
			data, err := os.ReadFile(outputPath)
			if err != nil {
				return fmt.Errorf("failed to read output file: %w", err)
			}
			result = &mcp.CallToolResult{
				Content: []mcp.Content{
					&mcp.TextContent{Text: rasterConfirmation(args.OutputFormat, data)},
					&mcp.ImageContent{Data: data, MIMEType: "image/" + args.OutputFormat},
				},
			}

		case "pdf", "pptx":
			home, err := s.homeDir()
			if err != nil {
				return fmt.Errorf("failed to resolve home directory: %w", err)
			}
			savePath := filepath.Join(home, "marp_output"+ext)
			if err := moveFile(outputPath, savePath); err != nil {
				return err
			}
			result = textResult(fmt.Sprintf("Successfully generated %s presentation. Saved to: %s",
				strings.ToUpper(args.OutputFormat), savePath))

		default:
			// "html" and anything the extension table fell back to .html for.
			data, err := os.ReadFile(outputPath)
			if err != nil {
				return fmt.Errorf("failed to read output file: %w", err)
			}
			result = textResult(fmt.Sprintf("Successfully generated HTML presentation:\n\n%s", data))
		}
		return nil
	})
	if err != nil {
		logger.Error("convert failed", zap.Error(err))
		return textResult(fmt.Sprintf("Error converting markdown: %v", err))
	}
	return result
}

// rasterConfirmation builds the text item that accompanies an inline
// image, including pixel dimensions when the output decodes cleanly.
func rasterConfirmation(format string, data []byte) string {
	msg := fmt.Sprintf("Successfully generated %s presentation", strings.ToUpper(format))
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return msg
	}
	b := img.Bounds()
	return fmt.Sprintf("%s (%dx%d)", msg, b.Dx(), b.Dy())
}

// === marp_get_themes ===

type getThemesArgs struct {
	// IncludeBuiltin is accepted for schema compatibility but reserved:
	// only builtin themes exist, so the listing never changes with it.
	IncludeBuiltin *bool `json:"include_builtin"`
}

func (s *Server) handleGetThemes(logger *zap.Logger, raw json.RawMessage) *mcp.CallToolResult {
	var args getThemesArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return textResult(fmt.Sprintf("Invalid arguments: %v", err))
	}
	if args.IncludeBuiltin != nil && !*args.IncludeBuiltin {
		logger.Debug("include_builtin=false requested; flag is reserved and ignored")
	}

	data, err := json.MarshalIndent(marp.BuiltinThemes(), "", "  ")
	if err != nil {
		return textResult(fmt.Sprintf("Error listing themes: %v", err))
	}
	return textResult(fmt.Sprintf("Available Marp themes:\n%s", data))
}

// === marp_validate ===

type validateArgs struct {
	Markdown string `json:"markdown"`
}

func (s *Server) handleValidate(ctx context.Context, logger *zap.Logger, raw json.RawMessage) *mcp.CallToolResult {
	var args validateArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return textResult(fmt.Sprintf("Invalid arguments: %v", err))
	}

	var result *mcp.CallToolResult
	err := scratch.WithDir(func(dir string) error {
		inputPath := filepath.Join(dir, "validate.md")
		if err := os.WriteFile(inputPath, []byte(args.Markdown), 0o600); err != nil {
			return fmt.Errorf("failed to write input file: %w", err)
		}
		outputPath := filepath.Join(dir, "validate.html")

		// An HTML conversion doubles as the syntax check.
		outcome := s.runMarp(ctx, logger, []string{inputPath, "-o", outputPath})
		if outcome.Success {
			result = textResult("✅ Markdown is valid Marp syntax")
		} else {
			result = textResult(fmt.Sprintf("❌ Validation failed:\n%s", outcome.ErrorText()))
		}
		return nil
	})
	if err != nil {
		logger.Error("validate failed", zap.Error(err))
		return textResult(fmt.Sprintf("❌ Validation failed:\n%v", err))
	}
	return result
}

// === marp_preview ===

type previewArgs struct {
	Markdown    string `json:"markdown"`
	Theme       string `json:"theme"`
	SlideNumber int    `json:"slide_number"`
}

func (s *Server) handlePreview(ctx context.Context, logger *zap.Logger, raw json.RawMessage) *mcp.CallToolResult {
	var args previewArgs
	if err := json.Unmarshal(raw, &args); err != nil {
		return textResult(fmt.Sprintf("Invalid arguments: %v", err))
	}
	if args.Theme == "" {
		args.Theme = "default"
	}
	if args.SlideNumber < 1 {
		args.SlideNumber = 1
	}

	var result *mcp.CallToolResult
	err := scratch.WithDir(func(dir string) error {
		inputPath := filepath.Join(dir, "preview.md")
		if err := os.WriteFile(inputPath, []byte(args.Markdown), 0o600); err != nil {
			return fmt.Errorf("failed to write input file: %w", err)
		}
		outputPath := filepath.Join(dir, "preview.html")

		outcome := s.runMarp(ctx, logger, []string{inputPath, "-o", outputPath, "--theme", args.Theme})
		if !outcome.Success || !fileExists(outputPath) {
			result = textResult(fmt.Sprintf("Error generating preview: %s", outcome.ErrorText()))
			return nil
		}

		html, err := os.ReadFile(outputPath)
		if err != nil {
			return fmt.Errorf("failed to read output file: %w", err)
		}
		slides := strings.Count(string(html), sectionMarker)
		result = textResult(previewSummary(slides, args.Theme, args.SlideNumber))
		return nil
	})
	if err != nil {
		logger.Error("preview failed", zap.Error(err))
		return textResult(fmt.Sprintf("Error generating preview: %v", err))
	}
	return result
}

func previewSummary(slides int, theme string, slideNumber int) string {
	return fmt.Sprintf(`📊 Presentation Preview:
- Total slides: %d
- Theme: %s
- Format: HTML

Preview generated successfully! The HTML contains all slides.
To view specific slide #%d, open the HTML in a browser.`, slides, theme, slideNumber)
}

// === shared helpers ===

// textResult wraps a message in a single-item result envelope.
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: text}},
	}
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// moveFile renames src to dst, copying when rename fails (e.g. the
// scratch dir and the home directory sit on different filesystems).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return fmt.Errorf("failed to read output file: %w", err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("failed to save output file: %w", err)
	}
	return os.Remove(src)
}
