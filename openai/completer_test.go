package openai_test

import (
	"context"
	"errors"
	"testing"

	"github.com/danespinosa/unsublink"
	"github.com/danespinosa/unsublink/openai"
	goopenai "github.com/sashabaranov/go-openai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chatClient is a stub openai.ChatClient.
type chatClient struct {
	fn func(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

func (c *chatClient) CreateChatCompletion(ctx context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error) {
	return c.fn(ctx, req)
}

func TestCompleter_Complete(t *testing.T) {
	t.Parallel()

	t.Run("implements unsublink.Completer interface", func(t *testing.T) {
		t.Parallel()
		var _ unsublink.Completer = openai.NewCompleter(nil, "m")
	})

	t.Run("returns trimmed content of first choice", func(t *testing.T) {
		t.Parallel()

		var got goopenai.ChatCompletionRequest
		client := &chatClient{fn: func(_ context.Context, req goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error) {
			got = req
			return goopenai.ChatCompletionResponse{
				Choices: []goopenai.ChatCompletionChoice{
					{Message: goopenai.ChatCompletionMessage{Content: "  https://example.com/u \n"}},
				},
			}, nil
		}}

		out, err := openai.NewCompleter(client, "tiny").Complete(context.Background(), "pick one")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/u", out)
		assert.Equal(t, "tiny", got.Model)
		require.Len(t, got.Messages, 2)
		assert.Equal(t, "pick one", got.Messages[1].Content)
	})

	t.Run("returns error when no choices", func(t *testing.T) {
		t.Parallel()

		client := &chatClient{fn: func(context.Context, goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error) {
			return goopenai.ChatCompletionResponse{}, nil
		}}

		_, err := openai.NewCompleter(client, "tiny").Complete(context.Background(), "pick one")

		require.Error(t, err)
		assert.Equal(t, unsublink.EINTERNAL, unsublink.ErrorCode(err))
	})

	t.Run("propagates client error", func(t *testing.T) {
		t.Parallel()

		want := errors.New("connection refused")
		client := &chatClient{fn: func(context.Context, goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error) {
			return goopenai.ChatCompletionResponse{}, want
		}}

		_, err := openai.NewCompleter(client, "tiny").Complete(context.Background(), "pick one")

		assert.ErrorIs(t, err, want)
	})

	t.Run("rejects empty prompt", func(t *testing.T) {
		t.Parallel()

		_, err := openai.NewCompleter(nil, "tiny").Complete(context.Background(), "")

		require.Error(t, err)
		assert.Equal(t, unsublink.EINVALID, unsublink.ErrorCode(err))
	})
}

func TestBuildRequest(t *testing.T) {
	t.Parallel()

	req := openai.BuildRequest("tiny", "prompt")

	assert.Equal(t, "tiny", req.Model)
	assert.Equal(t, openai.MaxTokens, req.MaxTokens)
	assert.Zero(t, req.Temperature)
	require.Len(t, req.Messages, 2)
	assert.Equal(t, goopenai.ChatMessageRoleSystem, req.Messages[0].Role)
	assert.Equal(t, goopenai.ChatMessageRoleUser, req.Messages[1].Role)
}
