package extract_test

import (
	"context"
	"testing"
	"time"

	"github.com/danespinosa/unsublink"
	"github.com/danespinosa/unsublink/extract"
	"github.com/danespinosa/unsublink/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitedCompleter(t *testing.T) {
	t.Parallel()

	t.Run("implements unsublink.Completer interface", func(t *testing.T) {
		t.Parallel()
		var _ unsublink.Completer = extract.NewRateLimitedCompleter(answer("x"), 1)
	})

	t.Run("delegates to wrapped completer", func(t *testing.T) {
		t.Parallel()

		c := extract.NewRateLimitedCompleter(answer("https://example.com/u"), 10)

		got, err := c.Complete(context.Background(), "prompt")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/u", got)
	})

	t.Run("spaces out consecutive calls", func(t *testing.T) {
		t.Parallel()

		c := extract.NewRateLimitedCompleter(answer("x"), 10) // 100ms between calls

		_, err := c.Complete(context.Background(), "a")
		require.NoError(t, err)

		start := time.Now()
		_, err = c.Complete(context.Background(), "b")
		elapsed := time.Since(start)

		require.NoError(t, err)
		assert.GreaterOrEqual(t, elapsed, 80*time.Millisecond, "second call should wait")
	})

	t.Run("zero rate disables limiting", func(t *testing.T) {
		t.Parallel()

		c := extract.NewRateLimitedCompleter(answer("x"), 0)

		start := time.Now()
		for i := 0; i < 5; i++ {
			_, err := c.Complete(context.Background(), "a")
			require.NoError(t, err)
		}

		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("returns context error while waiting", func(t *testing.T) {
		t.Parallel()

		calls := 0
		next := &mock.Completer{
			CompleteFn: func(context.Context, string) (string, error) {
				calls++
				return "x", nil
			},
		}
		c := extract.NewRateLimitedCompleter(next, 0.1) // 10s between calls

		_, err := c.Complete(context.Background(), "a")
		require.NoError(t, err)

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()
		_, err = c.Complete(ctx, "b")

		require.Error(t, err)
		assert.Equal(t, 1, calls)
	})
}
