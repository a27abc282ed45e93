package mock

import (
	"context"

	"github.com/danespinosa/unsublink"
)

var _ unsublink.Completer = (*Completer)(nil)

// Completer is a mock implementation of unsublink.Completer.
type Completer struct {
	CompleteFn func(ctx context.Context, prompt string) (string, error)
}

func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	return c.CompleteFn(ctx, prompt)
}

var _ unsublink.ModelLoader = (*ModelLoader)(nil)

// ModelLoader is a mock implementation of unsublink.ModelLoader.
type ModelLoader struct {
	LoadFn func(ctx context.Context) (unsublink.Completer, error)
}

func (l *ModelLoader) Load(ctx context.Context) (unsublink.Completer, error) {
	return l.LoadFn(ctx)
}
