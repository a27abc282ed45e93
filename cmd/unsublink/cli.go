package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/danespinosa/unsublink"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdin     io.Reader
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Extractor unsublink.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Extract  ExtractCmd  `cmd:"" help:"Extract unsubscribe links from email bodies"`
	Validate ValidateCmd `cmd:"" help:"Check whether URLs are acceptable unsubscribe links"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Files            []string      `arg:"" optional:"" help:"HTML email body files (stdin when omitted)"`
	Concurrency      int           `short:"c" default:"4" help:"Concurrent extraction limit"`
	ModelPath        string        `name:"model-path" env:"UNSUBLINK_MODEL_PATH" help:"Local model file served by an OpenAI-compatible runtime"`
	ModelURL         string        `name:"model-url" env:"UNSUBLINK_MODEL_URL" default:"http://127.0.0.1:8080/v1" help:"Base URL of the local model runtime"`
	ModelAPIKey      string        `name:"model-api-key" env:"UNSUBLINK_MODEL_API_KEY" help:"Bearer token sent to the local model runtime"`
	ModelName        string        `name:"model-name" help:"Model name sent to the local runtime (default: model file name without extension)"`
	Gemini           bool          `help:"Use the Gemini API as the model backend"`
	GeminiAPIKey     string        `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key"`
	GeminiModel      string        `name:"gemini-model" help:"Gemini model name (default gemini-2.5-flash)"`
	ModelRPS         float64       `name:"model-rps" default:"0" help:"Maximum model calls per second (0 for unlimited)"`
	ModelTimeout     time.Duration `name:"model-timeout" default:"30s" help:"Time allowed for model calls per email"`
	ModelLoadTimeout time.Duration `name:"model-load-timeout" default:"1m" help:"Time allowed for the one-time model load"`
	SkipDuplicates   bool          `name:"skip-duplicates" help:"Skip bodies identical to one already processed. Uses a Bloom filter, so a distinct body is rarely (about 1 in 1000) reported as a duplicate and skipped"`
}

// ValidateCmd is the "validate" subcommand.
type ValidateCmd struct {
	URLs []string `arg:"" name:"url" help:"URLs to check"`
}
