package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/danespinosa/unsublink"
	"github.com/danespinosa/unsublink/extract"
	"github.com/danespinosa/unsublink/gemini"
	"github.com/danespinosa/unsublink/openai"
	unslog "github.com/danespinosa/unsublink/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Stdin is read by extract when no files are given.
	Stdin io.Reader

	// Extractor overrides the engine built from flags. Used by tests.
	Extractor unsublink.Extractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{Stdin: os.Stdin}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("unsublink"),
		kong.Description("Find the unsubscribe link in HTML email bodies."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'unsublink --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelInfo
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if strings.HasPrefix(kongCtx.Command(), "extract") {
		extractor := m.Extractor
		if extractor == nil {
			loader, err := newModelLoader(&cli.Extract, stderr)
			if err != nil {
				return err
			}
			var opts []extract.Option
			if loader != nil {
				opts = append(opts,
					extract.WithModelLoader(rateLimited(unslog.NewLoggingLoader(loader, deps.Logger), cli.Extract.ModelRPS)),
					extract.WithLoadTimeout(cli.Extract.ModelLoadTimeout),
				)
			}
			extractor = extract.NewEngine(opts...)
		}
		deps.Extractor = unslog.NewLoggingExtractor(extractor, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// newModelLoader picks the model backend from flags. It returns nil when no
// backend is configured, which disables the model stage.
func newModelLoader(c *ExtractCmd, stderr io.Writer) (unsublink.ModelLoader, error) {
	switch {
	case c.Gemini && c.ModelPath != "":
		return nil, fmt.Errorf("--gemini and --model-path cannot be combined")
	case c.Gemini:
		if c.GeminiAPIKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return nil, fmt.Errorf("GEMINI_API_KEY not set")
		}
		return gemini.NewLoader(c.GeminiAPIKey, c.GeminiModel), nil
	case c.ModelPath != "":
		return openai.NewLoader(c.ModelPath,
			openai.WithBaseURL(c.ModelURL),
			openai.WithAPIKey(c.ModelAPIKey),
			openai.WithModelName(c.ModelName),
		), nil
	}
	return nil, nil
}

// rateLimited wraps every completer produced by next in a rate limiter.
func rateLimited(next unsublink.ModelLoader, rps float64) unsublink.ModelLoader {
	return unsublink.ModelLoaderFunc(func(ctx context.Context) (unsublink.Completer, error) {
		c, err := next.Load(ctx)
		if err != nil {
			return nil, err
		}
		return extract.NewRateLimitedCompleter(c, rps), nil
	})
}
