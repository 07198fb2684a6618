// Package scratch provides invocation-scoped temporary directories.
//
// Every tool call that touches the filesystem allocates its own directory
// through WithDir, which guarantees removal on every exit path, including
// panics. Nothing a call writes there survives the call.
package scratch

import (
	"fmt"
	"os"
)

// WithDir creates a fresh temporary directory, runs fn with its path, and
// removes the directory and everything inside it before returning.
func WithDir(fn func(dir string) error) error {
	dir, err := os.MkdirTemp("", "marp-mcp-*")
	if err != nil {
		return fmt.Errorf("failed to create scratch dir: %w", err)
	}
	defer os.RemoveAll(dir)
	return fn(dir)
}
