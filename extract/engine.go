// Package extract orchestrates unsubscribe link extraction. It runs the
// heuristic, pattern and model stages in order and returns the first valid
// link, degrading to the best invalid candidate when nothing validates.
package extract

import (
	"context"
	"sync"
	"time"

	"github.com/danespinosa/unsublink"
	"github.com/danespinosa/unsublink/goquery"
	"github.com/danespinosa/unsublink/regexp"
)

// Ensure Engine implements unsublink.Extractor at compile time.
var _ unsublink.Extractor = (*Engine)(nil)

// Engine runs the extraction pipeline. It is safe for concurrent use; the
// model is loaded lazily on first need and the outcome of that single
// attempt is reused for the lifetime of the Engine.
type Engine struct {
	collector unsublink.AnchorCollector
	matcher   unsublink.PatternMatcher
	snippets  unsublink.SnippetExtractor
	loader    unsublink.ModelLoader

	loadTimeout time.Duration
	loadOnce    sync.Once
	loaded      chan struct{}
	model       unsublink.Completer
}

// DefaultLoadTimeout bounds the single model load attempt.
const DefaultLoadTimeout = time.Minute

// Option configures an Engine.
type Option func(*Engine)

// WithCollector replaces the default goquery.Collector.
func WithCollector(c unsublink.AnchorCollector) Option {
	return func(e *Engine) {
		e.collector = c
	}
}

// WithMatcher replaces the default regexp.Matcher.
func WithMatcher(m unsublink.PatternMatcher) Option {
	return func(e *Engine) {
		e.matcher = m
	}
}

// WithSnippetExtractor replaces the default regexp.SnippetExtractor.
func WithSnippetExtractor(s unsublink.SnippetExtractor) Option {
	return func(e *Engine) {
		e.snippets = s
	}
}

// WithModelLoader enables the model stage. Without a loader the engine runs
// the heuristic and pattern stages only.
func WithModelLoader(l unsublink.ModelLoader) Option {
	return func(e *Engine) {
		e.loader = l
	}
}

// WithLoadTimeout bounds the model load. A non-positive timeout lets the
// load run until the loader returns. Defaults to DefaultLoadTimeout.
func WithLoadTimeout(d time.Duration) Option {
	return func(e *Engine) {
		e.loadTimeout = d
	}
}

// NewEngine creates a new Engine.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		collector: goquery.NewCollector(),
		matcher:   regexp.NewMatcher(),
		snippets:  regexp.NewSnippetExtractor(),

		loadTimeout: DefaultLoadTimeout,
		loaded:      make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Extract returns the unsubscribe link for body. It never fails; the
// result's Link is empty when no stage produced a candidate.
func (e *Engine) Extract(ctx context.Context, body string) *unsublink.ExtractionResult {
	anchors := e.collector.CollectAnchors(body)
	result := &unsublink.ExtractionResult{Anchors: unsublink.Hrefs(anchors)}

	// Invalid candidates are kept from the earliest stage that produced one.
	var bestEffort string
	accept := func(link string, stage unsublink.Stage) bool {
		if unsublink.ValidURL(link) {
			result.Link, result.Stage, result.Valid = link, stage, true
			return true
		}
		if bestEffort == "" {
			bestEffort = link
		}
		return false
	}

	if c, ok := unsublink.SelectCandidate(anchors); ok && accept(c.Href, unsublink.StageHeuristic) {
		return result
	}

	if link, ok := e.matcher.Match(body); ok && accept(link, unsublink.StagePattern) {
		return result
	}

	if link, ok := e.modelStage(ctx, body, anchors); ok {
		result.Link, result.Stage, result.Valid = link, unsublink.StageModel, true
		return result
	}

	if bestEffort != "" {
		result.Link, result.Stage = bestEffort, unsublink.StageBestEffort
	}
	return result
}

// modelStage asks the model once over all anchors, or, when the body has
// no anchors, once per context snippet. Only valid links are returned.
func (e *Engine) modelStage(ctx context.Context, body string, anchors []unsublink.AnchorCandidate) (string, bool) {
	model := e.loadModel(ctx)
	if model == nil {
		return "", false
	}

	var prompts []string
	if len(anchors) > 0 {
		prompts = append(prompts, BuildAnchorPrompt(anchors))
	} else {
		for _, s := range e.snippets.ExtractSnippets(body) {
			prompts = append(prompts, BuildSnippetPrompt(s))
		}
	}

	for _, prompt := range prompts {
		if ctx.Err() != nil {
			return "", false
		}
		completion, err := model.Complete(ctx, prompt)
		if err != nil {
			continue
		}
		if link, ok := ParseResponse(prompt, completion); ok && unsublink.ValidURL(link) {
			return link, true
		}
	}
	return "", false
}

// loadModel returns the memoized model, starting the load on first call.
// The load runs detached from the caller's cancellation and is bounded by
// the load timeout instead; a failed load is never retried. Each caller
// waits for the load only as long as its own context allows.
func (e *Engine) loadModel(ctx context.Context) unsublink.Completer {
	if e.loader == nil {
		return nil
	}
	e.loadOnce.Do(func() {
		go e.load(context.WithoutCancel(ctx))
	})
	select {
	case <-e.loaded:
		return e.model
	case <-ctx.Done():
		return nil
	}
}

func (e *Engine) load(ctx context.Context) {
	defer close(e.loaded)
	if e.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.loadTimeout)
		defer cancel()
	}
	model, err := e.loader.Load(ctx)
	if err != nil {
		return
	}
	e.model = model
}
