// Package goquery provides the HTML-facing implementation of
// unsublink.AnchorCollector.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/danespinosa/unsublink"
	"golang.org/x/net/html"
)

// Ensure Collector implements unsublink.AnchorCollector at compile time.
var _ unsublink.AnchorCollector = (*Collector)(nil)

// Collector finds http(s) anchors in email bodies along with the literal
// text surrounding each anchor.
type Collector struct {
	window int
}

// Option configures a Collector.
type Option func(*Collector)

// WithContextWindow sets how many characters of surrounding text are kept
// on each side of an anchor. Defaults to unsublink.ContextWindow.
func WithContextWindow(n int) Option {
	return func(c *Collector) {
		c.window = n
	}
}

// NewCollector creates a new Collector.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{window: unsublink.ContextWindow}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// span is the [start, end) byte range of an anchor element in the body.
type span struct {
	start, end int
}

// CollectAnchors returns every anchor with an http(s) href in document order.
// Anchors with mailto:, javascript:, relative or missing hrefs are dropped.
func (c *Collector) CollectAnchors(body string) []unsublink.AnchorCandidate {
	var anchors []unsublink.AnchorCandidate
	for _, sp := range anchorSpans(body) {
		href, text, ok := parseAnchor(body[sp.start:sp.end])
		if !ok || !unsublink.HasHTTPScheme(href) {
			continue
		}
		anchors = append(anchors, unsublink.AnchorCandidate{
			Href:          href,
			Text:          text,
			ContextBefore: lastRunes(body[:sp.start], c.window),
			ContextAfter:  firstRunes(body[sp.end:], c.window),
			Position:      sp.start,
		})
	}
	return anchors
}

// anchorSpans tokenizes body and returns the source span of every <a>
// element. Tag names are matched case-insensitively and may span lines.
// An anchor without a closing tag ends where the next anchor starts, or at
// the end of the body.
func anchorSpans(body string) []span {
	var spans []span
	z := html.NewTokenizer(strings.NewReader(body))
	offset, open := 0, -1
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		start := offset
		offset += len(z.Raw())

		switch tt {
		case html.StartTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if string(name) != "a" {
				continue
			}
			if open >= 0 {
				spans = append(spans, span{open, start})
			}
			open = start
			if tt == html.SelfClosingTagToken {
				spans = append(spans, span{open, offset})
				open = -1
			}
		case html.EndTagToken:
			name, _ := z.TagName()
			if string(name) == "a" && open >= 0 {
				spans = append(spans, span{open, offset})
				open = -1
			}
		}
	}
	if open >= 0 {
		spans = append(spans, span{open, len(body)})
	}
	return spans
}

// parseAnchor returns the trimmed href and visible text of the first anchor
// in fragment. Entities are decoded and nested markup is flattened.
func parseAnchor(fragment string) (href, text string, ok bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", "", false
	}
	sel := doc.Find("a").First()
	href, exists := sel.Attr("href")
	if !exists {
		return "", "", false
	}
	href = strings.TrimSpace(href)
	if href == "" {
		return "", "", false
	}
	return href, strings.TrimSpace(sel.Text()), true
}

// lastRunes returns at most the final n runes of s.
func lastRunes(s string, n int) string {
	i := len(s)
	for count := 0; i > 0 && count < n; count++ {
		_, size := utf8.DecodeLastRuneInString(s[:i])
		i -= size
	}
	return s[i:]
}

// firstRunes returns at most the first n runes of s.
func firstRunes(s string, n int) string {
	i := 0
	for count := 0; i < len(s) && count < n; count++ {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return s[:i]
}
