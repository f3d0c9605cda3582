package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/ziadkadry99/xrforge/internal/scene"
)

// generateSceneTool defines the generate_scene MCP tool.
var generateSceneTool = mcp.NewTool("generate_scene",
	mcp.WithDescription("Generate a self-contained WebXR HTML document for a scene described in natural language. The scene topic is detected from keywords in the prompt."),
	mcp.WithString("prompt",
		mcp.Required(),
		mcp.Description("Free-text description of the scene"),
	),
	mcp.WithString("topic",
		mcp.Description("Force a topic instead of detecting it from the prompt"),
		mcp.Enum(topicNames()...),
	),
)

// detectTopicTool defines the detect_topic MCP tool.
var detectTopicTool = mcp.NewTool("detect_topic",
	mcp.WithDescription("Report which scene topic a prompt maps to without generating a document."),
	mcp.WithString("prompt",
		mcp.Required(),
		mcp.Description("Free-text description of the scene"),
	),
)

// listTopicsTool defines the list_topics MCP tool.
var listTopicsTool = mcp.NewTool("list_topics",
	mcp.WithDescription("List the supported scene topics with their titles and trigger keywords, in detection priority order."),
)

func topicNames() []string {
	topics := scene.Topics()
	names := make([]string, len(topics))
	for i, t := range topics {
		names[i] = t.String()
	}
	return names
}
