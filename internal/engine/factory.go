package engine

import "fmt"

// NewProvider creates a provider by engine name. Only "template" is
// supported; an empty name selects it.
func NewProvider(name string) (Provider, error) {
	switch name {
	case "", "template":
		return NewTemplateProvider(), nil
	default:
		return nil, fmt.Errorf("unsupported engine: %s", name)
	}
}
