// Package regexp implements the text-level stages of unsubscribe link
// extraction with regular expressions: the ordered pattern matcher and the
// context window extractor that feeds the model stage.
//
// Unlike goquery.Collector, nothing here parses markup. Anchors are found
// with a permissive pattern so that relative and non-http hrefs are still
// visible to the rules.
package regexp

import (
	"html"
	"regexp"
	"strings"
)

var (
	anchorPattern = regexp.MustCompile(`(?is)<a\b([^>]*)>(.*?)</a\s*>`)
	hrefPattern   = regexp.MustCompile(`(?is)\bhref\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"'>]+))`)
	tagPattern    = regexp.MustCompile(`(?s)<[^>]*>`)
)

// anchor is a raw anchor element located by pattern.
type anchor struct {
	start, end int
	href       string
	text       string
}

// findAnchors returns all anchors with an href attribute in document order.
// Hrefs and texts are entity-decoded and trimmed; any scheme is kept.
func findAnchors(body string) []anchor {
	var anchors []anchor
	for _, m := range anchorPattern.FindAllStringSubmatchIndex(body, -1) {
		attrs := body[m[2]:m[3]]
		hm := hrefPattern.FindStringSubmatch(attrs)
		if hm == nil {
			continue
		}
		href := hm[1] + hm[2] + hm[3]
		anchors = append(anchors, anchor{
			start: m[0],
			end:   m[1],
			href:  cleanHref(href),
			text:  visibleText(body[m[4]:m[5]]),
		})
	}
	return anchors
}

func cleanHref(href string) string {
	return strings.TrimSpace(html.UnescapeString(href))
}

func visibleText(inner string) string {
	text := tagPattern.ReplaceAllString(inner, "")
	return strings.TrimSpace(html.UnescapeString(text))
}
