package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	mcpserver "github.com/ziadkadry99/xrforge/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing scene generation and topic detection tools.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return err
		}
		defer logger.Sync()

		provider, err := newProvider(cfg, 0, false)
		if err != nil {
			return err
		}

		store, closeHistory, err := openHistory(cfg)
		if err != nil {
			// History is optional for agents; keep serving without it.
			logger.Warn("history unavailable", zap.Error(err))
		}
		defer closeHistory()

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		fmt.Fprintf(os.Stderr, "xrforge MCP server started on stdio (engine=%s)\n", provider.Name())

		srv := mcpserver.NewServer(provider, store, logger)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
