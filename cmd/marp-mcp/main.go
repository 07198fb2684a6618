package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ironsheep/marp-tools-mcp/internal/marp"
	"github.com/ironsheep/marp-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	var (
		marpBin  string
		logLevel string
		logger   = zap.NewNop()
	)

	root := &cobra.Command{
		Use:   "marp-mcp",
		Short: "MCP server wrapping the Marp presentation renderer",
		Long: "marp-mcp exposes Marp CLI conversions as MCP tools over stdin/stdout.\n" +
			"Configure it in your MCP client (e.g. Claude Desktop).",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := zapcore.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid log level %q: %w", logLevel, err)
			}
			cfg := zap.NewProductionConfig()
			cfg.Level = zap.NewAtomicLevelAt(level)
			// stdout carries the MCP protocol; logging must stay on stderr.
			cfg.OutputPaths = []string{"stderr"}
			cfg.ErrorOutputPaths = []string{"stderr"}
			logger, err = cfg.Build()
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signalAwareContext(cmd.Context())
			defer cancel()

			runner := marp.NewCLI(marpBin, logger)
			srv := server.New(
				server.WithRunner(runner),
				server.WithLogger(logger),
			)
			return srv.Run(ctx)
		},
	}

	root.Version = fmt.Sprintf("%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	root.PersistentFlags().StringVar(&marpBin, "marp-bin", marp.DefaultBinary, "path to the marp executable")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		logger.Fatal("command failed", zap.Error(err))
	}
}

func signalAwareContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		defer signal.Stop(signals)
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, cancel
}
