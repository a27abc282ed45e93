package regexp

import (
	"unicode/utf8"

	"github.com/danespinosa/unsublink"
)

// Ensure SnippetExtractor implements unsublink.SnippetExtractor at compile time.
var _ unsublink.SnippetExtractor = (*SnippetExtractor)(nil)

// Window sizes used by SnippetExtractor, in bytes.
const (
	// SearchRadius bounds the distance between a keyword and a nearby anchor.
	SearchRadius = 2000

	// TightMargin is kept on each side of a nearby anchor.
	TightMargin = 150

	// WideMargin is kept on each side of a keyword with no nearby anchor.
	WideMargin = 1000
)

// SnippetExtractor cuts the body into small windows around unsubscribe
// keywords so a model can judge them without reading the whole email.
type SnippetExtractor struct{}

// NewSnippetExtractor creates a new SnippetExtractor.
func NewSnippetExtractor() *SnippetExtractor {
	return &SnippetExtractor{}
}

// ExtractSnippets returns up to unsublink.MaxSnippets windows, one per
// keyword occurrence in document order. An occurrence that falls inside
// the previous window is skipped.
//
// A window is tight around an anchor near the keyword when one exists,
// looking forward first ("unsubscribe ... <a>click here</a>") and then
// backward ("<a>unsubscribe</a> ... preferences"). Otherwise it is wide
// around the keyword itself.
func (e *SnippetExtractor) ExtractSnippets(body string) []unsublink.ContextSnippet {
	var snippets []unsublink.ContextSnippet
	anchors := findAnchors(body)
	covered := -1
	for _, kw := range unsublink.KeywordIndices(body) {
		if len(snippets) == unsublink.MaxSnippets {
			break
		}
		if kw[0] < covered {
			continue
		}

		var start, end int
		if a, ok := nearbyAnchor(anchors, kw[0], kw[1]); ok {
			start, end = a.start-TightMargin, a.end+TightMargin
		} else {
			start, end = kw[0]-WideMargin, kw[1]+WideMargin
		}
		start, end = clip(body, start, end)

		snippets = append(snippets, unsublink.ContextSnippet{
			Text:     body[start:end],
			Position: kw[0],
		})
		covered = end
	}
	return snippets
}

// nearbyAnchor finds the first link-like anchor enclosing the keyword or
// starting within SearchRadius after it, or failing that the closest one
// ending within SearchRadius before it.
func nearbyAnchor(anchors []anchor, kwStart, kwEnd int) (anchor, bool) {
	for _, a := range anchors {
		if a.end <= kwStart {
			continue
		}
		if a.start-kwEnd > SearchRadius {
			break
		}
		if linkLike(a.text) {
			return a, true
		}
	}
	for i := len(anchors) - 1; i >= 0; i-- {
		a := anchors[i]
		if a.end > kwStart {
			continue
		}
		if kwStart-a.end > SearchRadius {
			break
		}
		if linkLike(a.text) {
			return a, true
		}
	}
	return anchor{}, false
}

func linkLike(text string) bool {
	return unsublink.IsActionPhrase(text) || unsublink.ContainsKeyword(text)
}

// clip bounds [start, end) to s and moves both ends onto rune boundaries.
func clip(s string, start, end int) (int, int) {
	start = max(start, 0)
	end = min(end, len(s))
	for start < end && !utf8.RuneStart(s[start]) {
		start++
	}
	for end < len(s) && end > start && !utf8.RuneStart(s[end]) {
		end--
	}
	return start, end
}
