// Package gemini implements unsublink.Completer using Google Gemini.
package gemini

import (
	"context"

	"github.com/danespinosa/unsublink"
	"google.golang.org/genai"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Completer implements unsublink.Completer at compile time.
var _ unsublink.Completer = (*Completer)(nil)

// Completer implements unsublink.Completer using Google Gemini.
type Completer struct {
	client *genai.Client
	model  string
}

// NewCompleter creates a new Completer.
func NewCompleter(client *genai.Client, model string) *Completer {
	if model == "" {
		model = DefaultModel
	}
	return &Completer{client: client, model: model}
}

// Complete sends prompt to Gemini and returns the generated text.
func (c *Completer) Complete(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", unsublink.Errorf(unsublink.EINVALID, "prompt required")
	}
	if c.client == nil {
		return "", unsublink.Errorf(unsublink.EUNAVAILABLE, "gemini client not configured")
	}

	result, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return "", err
	}
	if result == nil {
		return "", unsublink.Errorf(unsublink.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You extract unsubscribe links from emails. Answer with a single URL copied exactly from the input, or NONE.",
			}},
		},
		Temperature:     &temp,
		MaxOutputTokens: 256,
	}
}
