// Package openai implements unsublink.Completer against an OpenAI-compatible
// chat completion API, typically a local runtime (llama.cpp server, Ollama,
// vLLM) serving a model file from disk.
package openai

import (
	"context"
	"strings"

	"github.com/danespinosa/unsublink"
	goopenai "github.com/sashabaranov/go-openai"
)

// MaxTokens bounds the length of a completion.
const MaxTokens = 256

// ChatClient is the subset of *goopenai.Client used by this package.
type ChatClient interface {
	CreateChatCompletion(ctx context.Context, request goopenai.ChatCompletionRequest) (goopenai.ChatCompletionResponse, error)
}

// Ensure Completer implements unsublink.Completer at compile time.
var _ unsublink.Completer = (*Completer)(nil)

// Completer implements unsublink.Completer with a chat completion call.
type Completer struct {
	client ChatClient
	model  string
}

// NewCompleter creates a new Completer for the named model.
func NewCompleter(client ChatClient, model string) *Completer {
	return &Completer{client: client, model: model}
}

// Complete sends prompt as a single user message and returns the content of
// the first choice.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", unsublink.Errorf(unsublink.EINVALID, "prompt required")
	}

	resp, err := c.client.CreateChatCompletion(ctx, BuildRequest(c.model, prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", unsublink.Errorf(unsublink.EINTERNAL, "model %q returned no choices", c.model)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

// BuildRequest returns the chat completion request for prompt.
func BuildRequest(model, prompt string) goopenai.ChatCompletionRequest {
	return goopenai.ChatCompletionRequest{
		Model: model,
		Messages: []goopenai.ChatCompletionMessage{
			{Role: goopenai.ChatMessageRoleSystem, Content: "You extract unsubscribe links from emails. Answer with a single URL copied exactly from the input, or NONE."},
			{Role: goopenai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0,
		MaxTokens:   MaxTokens,
		N:           1,
	}
}
