package engine

import (
	"context"
	"fmt"
	"strings"

	"github.com/ziadkadry99/xrforge/internal/scene"
)

// TemplateProvider implements Provider with the built-in keyword matcher and
// document template. It makes no network calls.
type TemplateProvider struct{}

// NewTemplateProvider creates a new template provider.
func NewTemplateProvider() *TemplateProvider {
	return &TemplateProvider{}
}

func (p *TemplateProvider) Name() string {
	return "template"
}

func (p *TemplateProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.Prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	var doc scene.Document
	if req.Topic != "" {
		topic, ok := scene.ParseTopic(string(req.Topic))
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownTopic, req.Topic)
		}
		doc = scene.GenerateForTopic(topic)
	} else {
		doc = scene.Generate(req.Prompt)
	}

	return &Response{
		Topic:         doc.Topic,
		Title:         doc.Assets.Title,
		BackgroundURL: doc.Assets.BackgroundURL,
		Document:      doc.HTML,
	}, nil
}
