package mcp

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"go.uber.org/zap"

	"github.com/ziadkadry99/xrforge/internal/engine"
	"github.com/ziadkadry99/xrforge/internal/history"
	"github.com/ziadkadry99/xrforge/internal/scene"
)

// handleGenerateScene returns the generated HTML document as text.
func (s *Server) handleGenerateScene(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := request.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: prompt"), nil
	}
	topic := scene.Topic(request.GetString("topic", ""))

	resp, err := s.provider.Generate(ctx, engine.Request{Prompt: prompt, Topic: topic})
	if err != nil {
		if errors.Is(err, engine.ErrEmptyPrompt) {
			return mcp.NewToolResultError("Please enter a prompt!"), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("generation failed: %v", err)), nil
	}

	if s.history != nil {
		if _, err := s.history.Record(ctx, history.Entry{Prompt: prompt, Topic: resp.Topic, Source: history.SourceMCP}); err != nil {
			s.logger.Warn("recording history failed", zap.Error(err))
		}
	}

	return mcp.NewToolResultText(resp.Document), nil
}

// handleDetectTopic returns the topic name for a prompt.
func (s *Server) handleDetectTopic(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	prompt, err := request.RequireString("prompt")
	if err != nil {
		return mcp.NewToolResultError("missing required parameter: prompt"), nil
	}
	return mcp.NewToolResultText(scene.DetectTopic(prompt).String()), nil
}

// handleListTopics returns one line per topic.
func (s *Server) handleListTopics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var b strings.Builder
	for _, t := range scene.Topics() {
		assets := scene.LookupAssets(t)
		fmt.Fprintf(&b, "%s: %s (keywords: %s)\n", t, assets.Title, strings.Join(scene.Keywords(t), ", "))
	}
	return mcp.NewToolResultText(b.String()), nil
}
