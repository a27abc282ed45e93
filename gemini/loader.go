package gemini

import (
	"context"

	"github.com/danespinosa/unsublink"
	"google.golang.org/genai"
)

var _ unsublink.ModelLoader = (*Loader)(nil)

// Loader creates a Gemini-backed Completer from an API key.
type Loader struct {
	apiKey string
	model  string
}

// NewLoader creates a new Loader. An empty model selects DefaultModel.
func NewLoader(apiKey, model string) *Loader {
	return &Loader{apiKey: apiKey, model: model}
}

// Load connects to the Gemini API. Returns EUNAVAILABLE if no API key is set
// or the client cannot be created.
func (l *Loader) Load(ctx context.Context) (unsublink.Completer, error) {
	if l.apiKey == "" {
		return nil, unsublink.Errorf(unsublink.EUNAVAILABLE, "gemini API key not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  l.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, unsublink.Errorf(unsublink.EUNAVAILABLE, "connect to gemini: %v", err)
	}

	return NewCompleter(client, l.model), nil
}
