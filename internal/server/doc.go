// Package server implements the MCP (Model Context Protocol) server that
// exposes Marp CLI presentation rendering as tools.
//
// The package has two halves:
//
//   - The catalog (tools.go): a static declaration of the four available
//     tools with their JSON schemas, served to clients via tools/list.
//   - The dispatcher (handlers.go): validates tool arguments, invokes the
//     renderer through the marp.Runner capability, and normalizes every
//     outcome into an ordered list of content items (text or inline image).
//
// # Protocol
//
// Transport and framing are handled by the official MCP Go SDK over
// stdio; this package only registers tools and handles their calls.
//
// # Available Tools
//
//   - marp_convert: Convert Markdown to html, pdf, pptx, png, or jpeg
//   - marp_get_themes: List the builtin Marp themes
//   - marp_validate: Check that Markdown is valid Marp syntax
//   - marp_preview: Summarize a rendered presentation (slide count, theme)
//
// # Error Handling
//
// Failures are content, not protocol errors. A missing renderer binary, a
// nonzero exit, or a missing output file all produce a single text item
// describing the problem, so the client session stays open for further
// calls. Even an unknown tool name yields an informational text item.
//
// # Concurrency
//
// The server holds no mutable state. Each call allocates its own scratch
// directory and argument list, so concurrent calls never interfere.
//
// # Usage
//
//	srv := server.New(server.WithRunner(marp.NewCLI("marp", logger)), server.WithLogger(logger))
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
