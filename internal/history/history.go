package history

import (
	"errors"
	"time"

	"github.com/ziadkadry99/xrforge/internal/scene"
)

// Source identifies which surface issued a generation request.
type Source string

const (
	SourceCLI   Source = "cli"
	SourceHTTP  Source = "http"
	SourceMCP   Source = "mcp"
	SourceBatch Source = "batch"
)

// ErrNotFound is returned when no entry has the requested ID.
var ErrNotFound = errors.New("history entry not found")

// Entry records one generation request. The generated document itself is
// not kept.
type Entry struct {
	ID        string      `json:"id"`
	Prompt    string      `json:"prompt"`
	Topic     scene.Topic `json:"topic"`
	Source    Source      `json:"source"`
	CreatedAt time.Time   `json:"created_at"`
}
