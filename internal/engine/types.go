package engine

import (
	"errors"

	"github.com/ziadkadry99/xrforge/internal/scene"
)

// ErrEmptyPrompt is returned when a request carries no prompt text.
var ErrEmptyPrompt = errors.New("please enter a prompt")

// ErrUnknownTopic is returned when a topic override names no known topic.
var ErrUnknownTopic = errors.New("unknown topic")

// Request contains the parameters for a generation request.
type Request struct {
	Prompt string
	// Topic, when set, overrides keyword detection.
	Topic scene.Topic
}

// Response contains the generated document and the scene it was built from.
type Response struct {
	Topic         scene.Topic
	Title         string
	BackgroundURL string
	Document      string
}
