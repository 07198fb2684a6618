package server

import (
	"context"
	"encoding/json"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/ironsheep/marp-tools-mcp/internal/marp"
)

// Version is the protocol-visible server version.
const Version = "0.1.0"

// Server holds everything a dispatch needs: the renderer capability, the
// logger, and the home-directory lookup used to place pdf/pptx results.
// All of it is fixed at construction; there are no ambient singletons and
// nothing mutates after startup.
type Server struct {
	runner  marp.Runner
	logger  *zap.Logger
	homeDir func() (string, error)
}

// Option configures a Server.
type Option func(*Server)

// WithRunner substitutes the renderer capability. Tests use this to avoid
// spawning real subprocesses.
func WithRunner(r marp.Runner) Option {
	return func(s *Server) { s.runner = r }
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithHomeDir overrides where pdf/pptx results are relocated. Tests point
// it at a temp directory.
func WithHomeDir(fn func() (string, error)) Option {
	return func(s *Server) { s.homeDir = fn }
}

// New creates a server with the given options. Without options it uses
// the real Marp CLI from PATH, a no-op logger, and the user's home
// directory.
func New(opts ...Option) *Server {
	s := &Server{
		runner:  marp.NewCLI(marp.DefaultBinary, nil),
		logger:  zap.NewNop(),
		homeDir: os.UserHomeDir,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.Named("server")
	return s
}

// Run registers the tool catalog and serves MCP over stdio until ctx is
// cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	srv := mcp.NewServer(&mcp.Implementation{
		Name:    "marp-mcp",
		Version: Version,
	}, &mcp.ServerOptions{
		HasTools: true,
	})

	for _, tool := range ToolDefinitions() {
		t := tool
		srv.AddTool(&t, s.toolHandler(t.Name))
	}

	s.logger.Info("server starting (stdio transport)", zap.String("version", Version))
	return srv.Run(ctx, &mcp.StdioTransport{})
}

// toolHandler funnels a registered tool's calls into Dispatch. Dispatch
// never fails at the protocol level; every outcome is content.
func (s *Server) toolHandler(name string) mcp.ToolHandler {
	return func(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return s.Dispatch(ctx, name, json.RawMessage(req.Params.Arguments)), nil
	}
}
