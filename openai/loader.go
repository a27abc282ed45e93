package openai

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/danespinosa/unsublink"
	goopenai "github.com/sashabaranov/go-openai"
)

// DefaultBaseURL is where llama.cpp's server exposes its OpenAI-compatible API.
const DefaultBaseURL = "http://127.0.0.1:8080/v1"

var _ unsublink.ModelLoader = (*Loader)(nil)

// Loader checks that a model file exists and that a runtime serving it is
// reachable, then returns a Completer for it.
type Loader struct {
	path    string
	baseURL string
	apiKey  string
	name    string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithBaseURL sets the runtime's API base URL. Defaults to DefaultBaseURL.
func WithBaseURL(u string) LoaderOption {
	return func(l *Loader) {
		if u != "" {
			l.baseURL = u
		}
	}
}

// WithAPIKey sets the bearer token sent to the runtime.
func WithAPIKey(key string) LoaderOption {
	return func(l *Loader) {
		l.apiKey = key
	}
}

// WithModelName overrides the model name sent in requests. Defaults to the
// model file name without its extension.
func WithModelName(name string) LoaderOption {
	return func(l *Loader) {
		l.name = name
	}
}

// NewLoader creates a Loader for the model file at path.
func NewLoader(path string, opts ...LoaderOption) *Loader {
	l := &Loader{path: path, baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(l)
	}
	if l.name == "" {
		l.name = ModelName(path)
	}
	return l
}

// Load returns EUNAVAILABLE if the path is empty, the model file is missing,
// or the runtime does not answer a model listing.
func (l *Loader) Load(ctx context.Context) (unsublink.Completer, error) {
	if l.path == "" {
		return nil, unsublink.Errorf(unsublink.EUNAVAILABLE, "model path not set")
	}
	info, err := os.Stat(l.path)
	if err != nil {
		return nil, unsublink.Errorf(unsublink.EUNAVAILABLE, "model not found at %q", l.path)
	}
	if info.IsDir() {
		return nil, unsublink.Errorf(unsublink.EUNAVAILABLE, "model path %q is a directory", l.path)
	}

	cfg := goopenai.DefaultConfig(l.apiKey)
	cfg.BaseURL = l.baseURL
	client := goopenai.NewClientWithConfig(cfg)

	if _, err := client.ListModels(ctx); err != nil {
		return nil, unsublink.Errorf(unsublink.EUNAVAILABLE, "model runtime at %s: %v", l.baseURL, err)
	}

	return NewCompleter(client, l.name), nil
}

// ModelName derives a model name from a model file path.
func ModelName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
