package server

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ironsheep/marp-tools-mcp/internal/marp"
)

func TestNew_Defaults(t *testing.T) {
	s := New()
	require.NotNil(t, s)
	assert.NotNil(t, s.runner, "default runner should be the real CLI")
	assert.NotNil(t, s.logger)
	assert.NotNil(t, s.homeDir)

	_, ok := s.runner.(*marp.CLI)
	assert.True(t, ok, "default runner should wrap the Marp binary")
}

func TestNew_Options(t *testing.T) {
	runner := &fakeRunner{available: true}
	logger := zap.NewNop()
	home := func() (string, error) { return "/tmp/elsewhere", nil }

	s := New(WithRunner(runner), WithLogger(logger), WithHomeDir(home))

	assert.Same(t, runner, s.runner)
	dir, err := s.homeDir()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere", dir)
}

func TestNew_NilLoggerIgnored(t *testing.T) {
	s := New(WithLogger(nil))
	assert.NotNil(t, s.logger)
}
