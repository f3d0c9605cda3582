package engine

import "context"

// Provider turns a prompt into a WebXR scene document.
type Provider interface {
	// Generate produces the document for the request.
	Generate(ctx context.Context, req Request) (*Response, error)
	// Name returns the name of this provider.
	Name() string
}
