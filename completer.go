package unsublink

import "context"

// Completer is a generative language model that completes a text prompt.
type Completer interface {
	// Complete returns the model's free-text continuation of prompt.
	Complete(ctx context.Context, prompt string) (string, error)
}

// ModelLoader loads a Completer. Loading may be expensive; callers are
// expected to load at most once and reuse the result.
type ModelLoader interface {
	// Load returns EUNAVAILABLE when the model cannot be found or started.
	Load(ctx context.Context) (Completer, error)
}

// ModelLoaderFunc adapts a function to the ModelLoader interface.
type ModelLoaderFunc func(ctx context.Context) (Completer, error)

// Load calls f(ctx).
func (f ModelLoaderFunc) Load(ctx context.Context) (Completer, error) {
	return f(ctx)
}
