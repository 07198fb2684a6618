package marp

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"go.uber.org/zap"
)

// DefaultBinary is the executable name used when no override is given.
const DefaultBinary = "marp"

// InstallHint is the fixed message returned when the Marp CLI cannot be
// reached. Every tool call short-circuits with it before any file I/O.
const InstallHint = "Marp CLI not found. Please install it with: npm install -g @marp-team/marp-cli"

// Outcome captures the result of a single renderer invocation.
type Outcome struct {
	// Success is true when the process ran and exited zero.
	Success bool

	// Stdout and Stderr hold the captured output text.
	Stdout string
	Stderr string

	// Err describes the failure when Success is false: the process's
	// stderr for a nonzero exit, or the fault description when the
	// process could not be spawned at all.
	Err string
}

// ErrorText returns the failure reason, or "Unknown error" when the
// outcome carries none (e.g. the process succeeded but produced no
// output file).
func (o Outcome) ErrorText() string {
	if o.Err != "" {
		return o.Err
	}
	return "Unknown error"
}

// Runner abstracts the Marp CLI so the dispatcher never depends on a real
// subprocess. Tests substitute a fake implementation.
type Runner interface {
	// Available reports whether the renderer responds to a version probe.
	Available(ctx context.Context) bool

	// Run invokes the renderer with the given argument list, optionally
	// feeding input text on stdin. Faults never escape as errors; they
	// are folded into the returned Outcome.
	Run(ctx context.Context, args []string, input string) Outcome
}

// CLI is the production Runner, spawning the Marp binary via os/exec.
type CLI struct {
	binary string
	logger *zap.Logger
}

// NewCLI creates a Runner for the given binary. An empty binary selects
// DefaultBinary; a nil logger disables logging.
func NewCLI(binary string, logger *zap.Logger) *CLI {
	if binary == "" {
		binary = DefaultBinary
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CLI{
		binary: binary,
		logger: logger.Named("marp"),
	}
}

// Available probes the binary with a version query.
func (c *CLI) Available(ctx context.Context) bool {
	out, err := exec.CommandContext(ctx, c.binary, "--version").Output()
	if err != nil {
		c.logger.Debug("version probe failed", zap.String("binary", c.binary), zap.Error(err))
		return false
	}
	c.logger.Debug("version probe ok", zap.String("version", strings.TrimSpace(string(out))))
	return true
}

// Run spawns the binary and waits for it to finish. There is no timeout:
// the call blocks for as long as the renderer runs.
func (c *CLI) Run(ctx context.Context, args []string, input string) Outcome {
	cmd := exec.CommandContext(ctx, c.binary, args...)
	if input != "" {
		cmd.Stdin = strings.NewReader(input)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	c.logger.Debug("running marp", zap.Strings("args", args))

	if err := cmd.Run(); err != nil {
		out := Outcome{Stdout: stdout.String(), Stderr: stderr.String()}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			out.Err = strings.TrimSpace(stderr.String())
			if out.Err == "" {
				out.Err = "Command failed"
			}
			c.logger.Debug("marp exited nonzero", zap.Int("exit_code", exitErr.ExitCode()))
		} else {
			// Spawn or I/O fault; surface its description instead of crashing.
			out.Err = err.Error()
			c.logger.Debug("marp spawn failed", zap.Error(err))
		}
		return out
	}

	return Outcome{Success: true, Stdout: stdout.String(), Stderr: stderr.String()}
}
