package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	// Import toolsets to register them
	_ "github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets/commands"
	_ "github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets/diagnostics"
	_ "github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets/files"
	_ "github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets/qkview"
	_ "github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets/system"
	_ "github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets/utility"

	"github.com/michelangelodorado/mcp-server-ihealth/pkg/ihealth"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/mcp"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/toolsets"
	"github.com/michelangelodorado/mcp-server-ihealth/pkg/version"
)

var (
	configPath  string
	showVersion bool
	httpMode    bool
	httpAddr    string
)

var rootCmd = &cobra.Command{
	Use:   "mcp-server-ihealth",
	Short: "MCP server for the F5 iHealth qkview-analyzer API",
	Long: `A Model Context Protocol (MCP) server that gives AI assistants access
to the F5 iHealth qkview-analyzer REST API: uploading and managing QKView
diagnostic snapshots, reading diagnostics, files, command output and
BIG-IP system information.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to optional YAML config file (endpoint overrides)")
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show version information")
	rootCmd.Flags().BoolVar(&httpMode, "http", false, "Run in HTTP/SSE mode instead of STDIO")
	rootCmd.Flags().StringVar(&httpAddr, "http-addr", "localhost:8080", "HTTP server address (only used with --http)")
}

func Execute() error {
	return rootCmd.Execute()
}

func run(cmd *cobra.Command, args []string) error {
	// Show version if requested
	if showVersion {
		fmt.Println(version.Info())
		return nil
	}

	// Logs go to stderr: in STDIO mode stdout carries the protocol stream.
	logger, err := newLogger()
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logger.Sync() //nolint:errcheck

	// Missing credentials are fatal here, before any network call.
	cfg, err := ihealth.LoadConfig(configPath)
	if err != nil {
		return err
	}

	// Create the iHealth API provider
	provider := ihealth.NewClient(cfg, logger)

	// Get all registered toolsets
	allToolsets := toolsets.All()
	if len(allToolsets) == 0 {
		return fmt.Errorf("no toolsets registered")
	}

	// Create MCP server
	server, err := mcp.NewServer(provider, allToolsets, logger)
	if err != nil {
		return fmt.Errorf("failed to create MCP server: %w", err)
	}

	// Start server with appropriate transport
	ctx := cmd.Context()

	if httpMode {
		logger.Info("starting iHealth MCP server in HTTP/SSE mode")
		if err := server.ServeHTTP(ctx, httpAddr); err != nil {
			return fmt.Errorf("failed to start MCP server: %w", err)
		}
	} else {
		logger.Info("starting iHealth MCP server in STDIO mode")
		if err := server.ServeStdio(ctx); err != nil {
			return fmt.Errorf("failed to start MCP server: %w", err)
		}
	}

	return nil
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	return cfg.Build()
}
