package mock

import (
	"context"

	"github.com/danespinosa/unsublink"
)

var _ unsublink.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of unsublink.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, body string) *unsublink.ExtractionResult
}

func (e *Extractor) Extract(ctx context.Context, body string) *unsublink.ExtractionResult {
	return e.ExtractFn(ctx, body)
}
