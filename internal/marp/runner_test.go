package marp

import (
	"context"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// requirePOSIX skips tests that exercise the real CLI runner against
// standard shell utilities.
func requirePOSIX(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test relies on POSIX shell utilities")
	}
}

func TestNewCLI_Defaults(t *testing.T) {
	c := NewCLI("", nil)
	require.NotNil(t, c)
	assert.Equal(t, DefaultBinary, c.binary)
	assert.NotNil(t, c.logger)
}

func TestCLI_Available(t *testing.T) {
	requirePOSIX(t)

	tests := []struct {
		name   string
		binary string
		want   bool
	}{
		{"reachable binary", "true", true},
		{"missing binary", "definitely-not-a-real-binary-2f6a", false},
		{"binary that rejects the probe", "false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := NewCLI(tt.binary, nil)
			assert.Equal(t, tt.want, c.Available(context.Background()))
		})
	}
}

func TestCLI_Run_Success(t *testing.T) {
	requirePOSIX(t)

	c := NewCLI("echo", nil)
	outcome := c.Run(context.Background(), []string{"hello"}, "")

	assert.True(t, outcome.Success)
	assert.Contains(t, outcome.Stdout, "hello")
	assert.Empty(t, outcome.Err)
}

func TestCLI_Run_Input(t *testing.T) {
	requirePOSIX(t)

	c := NewCLI("cat", nil)
	outcome := c.Run(context.Background(), nil, "piped input")

	assert.True(t, outcome.Success)
	assert.Equal(t, "piped input", outcome.Stdout)
}

func TestCLI_Run_NonzeroExit(t *testing.T) {
	requirePOSIX(t)

	c := NewCLI("false", nil)
	outcome := c.Run(context.Background(), nil, "")

	assert.False(t, outcome.Success)
	// No stderr output, so the generic reason applies.
	assert.Equal(t, "Command failed", outcome.Err)
}

func TestCLI_Run_StderrBecomesError(t *testing.T) {
	requirePOSIX(t)

	c := NewCLI("sh", nil)
	outcome := c.Run(context.Background(), []string{"-c", "echo boom >&2; exit 1"}, "")

	assert.False(t, outcome.Success)
	assert.Equal(t, "boom", outcome.Err)
	assert.Contains(t, outcome.Stderr, "boom")
}

func TestCLI_Run_SpawnFault(t *testing.T) {
	c := NewCLI("definitely-not-a-real-binary-2f6a", nil)
	outcome := c.Run(context.Background(), []string{"input.md"}, "")

	assert.False(t, outcome.Success)
	assert.NotEmpty(t, outcome.Err)
}

func TestOutcome_ErrorText(t *testing.T) {
	tests := []struct {
		name    string
		outcome Outcome
		want    string
	}{
		{"explicit reason", Outcome{Err: "bad directive"}, "bad directive"},
		{"no reason recorded", Outcome{Success: true}, "Unknown error"},
		{"failed without reason", Outcome{}, "Unknown error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.outcome.ErrorText())
		})
	}
}
