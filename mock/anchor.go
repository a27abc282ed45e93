package mock

import "github.com/danespinosa/unsublink"

var _ unsublink.AnchorCollector = (*AnchorCollector)(nil)

// AnchorCollector is a mock implementation of unsublink.AnchorCollector.
type AnchorCollector struct {
	CollectAnchorsFn func(body string) []unsublink.AnchorCandidate
}

func (c *AnchorCollector) CollectAnchors(body string) []unsublink.AnchorCandidate {
	return c.CollectAnchorsFn(body)
}

var _ unsublink.PatternMatcher = (*PatternMatcher)(nil)

// PatternMatcher is a mock implementation of unsublink.PatternMatcher.
type PatternMatcher struct {
	MatchFn func(body string) (string, bool)
}

func (m *PatternMatcher) Match(body string) (string, bool) {
	return m.MatchFn(body)
}

var _ unsublink.SnippetExtractor = (*SnippetExtractor)(nil)

// SnippetExtractor is a mock implementation of unsublink.SnippetExtractor.
type SnippetExtractor struct {
	ExtractSnippetsFn func(body string) []unsublink.ContextSnippet
}

func (s *SnippetExtractor) ExtractSnippets(body string) []unsublink.ContextSnippet {
	return s.ExtractSnippetsFn(body)
}
