package extract

import (
	"context"

	"github.com/danespinosa/unsublink"
	"golang.org/x/time/rate"
)

var _ unsublink.Completer = (*RateLimitedCompleter)(nil)

// RateLimitedCompleter throttles model calls with a token bucket.
type RateLimitedCompleter struct {
	next    unsublink.Completer
	limiter *rate.Limiter
}

// NewRateLimitedCompleter wraps next with a limit of rps calls per second
// and a burst of 1. A non-positive rps disables limiting.
func NewRateLimitedCompleter(next unsublink.Completer, rps float64) *RateLimitedCompleter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &RateLimitedCompleter{
		next:    next,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// Complete waits for the limiter and delegates to the wrapped Completer.
// Returns the context error if the context ends while waiting.
func (c *RateLimitedCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return c.next.Complete(ctx, prompt)
}
