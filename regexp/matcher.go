package regexp

import (
	"regexp"
	"strings"

	"github.com/danespinosa/unsublink"
)

// Ensure Matcher implements unsublink.PatternMatcher at compile time.
var _ unsublink.PatternMatcher = (*Matcher)(nil)

// ActionDistance is how far after a keyword occurrence an action-phrase
// anchor may start and still be attributed to that keyword.
const ActionDistance = 500

// strongKeywords are the terms the anchor rules look for.
var strongKeywords = []string{"unsubscribe", "opt-out", "optout", "preferences"}

// bareURLMarkers qualify a bare URL token as an unsubscribe link.
var bareURLMarkers = []string{"unsubscribe", "/preferences", "/opt-out", "/optout"}

var (
	bareURLPattern = regexp.MustCompile(`(?i)https?://[^\s<>"']+`)

	toUnsubscribePattern = regexp.MustCompile(
		`(?is)(?:to\s+)?unsubscribe.{0,150}?<a\b[^>]*?\bhref\s*=\s*["']([^"']+)["'][^>]*>\s*(?:click\s+here|here|unsubscribe)\s*</a\s*>`)

	unsubscribeFromPattern = regexp.MustCompile(
		`(?is)unsubscribe\s+from.{0,150}?please\s*<a\b[^>]*?\bhref\s*=\s*["']([^"']+)["'][^>]*>\s*(?:click[^<]{0,30}?here|here)\s*</a\s*>`)
)

// trailingPunctuation is trimmed from bare URL tokens.
const trailingPunctuation = `.,;:!?)]}>"'`

// document is the per-call view of a body shared by all rules.
type document struct {
	body    string
	anchors []anchor
}

// Rule is one step of the ordered pattern matcher.
type Rule struct {
	Name  string
	match func(doc *document) (string, bool)
}

// Rules are tried in order; the first match wins.
var Rules = []Rule{
	{Name: "anchor-text", match: matchAnchorText},
	{Name: "anchor-href", match: matchAnchorHref},
	{Name: "keyword-then-action", match: matchKeywordThenAction},
	{Name: "bare-url", match: matchBareURL},
	{Name: "to-unsubscribe-phrase", match: matchPhrase(toUnsubscribePattern)},
	{Name: "unsubscribe-from-please", match: matchPhrase(unsubscribeFromPattern)},
}

// Matcher finds unsubscribe links with ordered text rules, independently of
// the anchor collector.
type Matcher struct {
	rules []Rule
}

// NewMatcher creates a Matcher using Rules.
func NewMatcher() *Matcher {
	return &Matcher{rules: Rules}
}

// Match returns the result of the first matching rule.
func (m *Matcher) Match(body string) (string, bool) {
	_, link, ok := m.MatchRule(body)
	return link, ok
}

// MatchRule is like Match but also returns the name of the rule that matched.
func (m *Matcher) MatchRule(body string) (rule, link string, ok bool) {
	doc := &document{body: body, anchors: findAnchors(body)}
	for _, r := range m.rules {
		if link, ok := r.match(doc); ok {
			return r.Name, link, true
		}
	}
	return "", "", false
}

func matchAnchorText(doc *document) (string, bool) {
	for _, a := range doc.anchors {
		if unsublink.HasHTTPScheme(a.href) && containsAny(a.text, strongKeywords) {
			return a.href, true
		}
	}
	return "", false
}

func matchAnchorHref(doc *document) (string, bool) {
	for _, a := range doc.anchors {
		if unsublink.HasHTTPScheme(a.href) && containsAny(a.href, strongKeywords) {
			return a.href, true
		}
	}
	return "", false
}

// matchKeywordThenAction pairs each keyword occurrence, in document order,
// with the first action-phrase anchor starting within ActionDistance after it.
func matchKeywordThenAction(doc *document) (string, bool) {
	for _, kw := range unsublink.KeywordIndices(doc.body) {
		for _, a := range doc.anchors {
			if a.start < kw[1] {
				continue
			}
			if a.start-kw[1] > ActionDistance {
				break
			}
			if unsublink.IsActionPhrase(a.text) {
				return a.href, true
			}
		}
	}
	return "", false
}

// matchBareURL returns the first qualifying URL token. An https token is
// preferred over any http token; within a scheme, document order decides.
func matchBareURL(doc *document) (string, bool) {
	var firstHTTP string
	for _, tok := range bareURLPattern.FindAllString(doc.body, -1) {
		tok = strings.TrimRight(tok, trailingPunctuation)
		if !containsAny(tok, bareURLMarkers) {
			continue
		}
		if strings.HasPrefix(strings.ToLower(tok), "https://") {
			return tok, true
		}
		if firstHTTP == "" {
			firstHTTP = tok
		}
	}
	return firstHTTP, firstHTTP != ""
}

func matchPhrase(re *regexp.Regexp) func(doc *document) (string, bool) {
	return func(doc *document) (string, bool) {
		m := re.FindStringSubmatch(doc.body)
		if m == nil {
			return "", false
		}
		href := cleanHref(m[1])
		return href, href != ""
	}
}

// containsAny reports whether s contains any of substrs, ignoring case.
// The substrs must be lowercase.
func containsAny(s string, substrs []string) bool {
	s = strings.ToLower(s)
	for _, sub := range substrs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
