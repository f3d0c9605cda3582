package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/ziadkadry99/xrforge/internal/engine"
	"github.com/ziadkadry99/xrforge/internal/history"
)

// Version is set via ldflags at build time.
var Version = "dev"

// Server wraps an MCP server that exposes scene generation tools.
type Server struct {
	provider engine.Provider
	history  *history.Store
	logger   *zap.Logger
	mcp      *server.MCPServer
}

// NewServer creates a new MCP server. store may be nil to disable history.
func NewServer(provider engine.Provider, store *history.Store, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		provider: provider,
		history:  store,
		logger:   logger,
	}

	s.mcp = server.NewMCPServer(
		"xrforge",
		Version,
		server.WithToolCapabilities(false),
	)

	s.registerTools()

	return s
}

// registerTools adds all tool definitions and their handlers to the MCP server.
func (s *Server) registerTools() {
	s.mcp.AddTool(generateSceneTool, s.handleGenerateScene)
	s.mcp.AddTool(detectTopicTool, s.handleDetectTopic)
	s.mcp.AddTool(listTopicsTool, s.handleListTopics)
}

// Serve starts the MCP server on stdio. Stdout is used for MCP protocol
// messages; all logging must go to stderr.
func (s *Server) Serve() error {
	return server.ServeStdio(s.mcp)
}
