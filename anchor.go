package unsublink

// ContextWindow is the number of characters captured on each side of an
// anchor for AnchorCandidate.ContextBefore and ContextAfter.
const ContextWindow = 100

// AnchorCandidate is an http(s) hyperlink found in an email body together
// with the literal text surrounding it.
type AnchorCandidate struct {
	// Href always begins with http:// or https://.
	Href string

	// Text is the trimmed visible text of the anchor.
	Text string

	// ContextBefore and ContextAfter hold up to ContextWindow characters
	// immediately preceding and following the anchor's source span.
	ContextBefore string
	ContextAfter  string

	// Position is the byte offset of the anchor's start tag in the body.
	Position int
}

// Hrefs returns the hrefs of the given candidates in order.
func Hrefs(anchors []AnchorCandidate) []string {
	hrefs := make([]string, 0, len(anchors))
	for _, a := range anchors {
		hrefs = append(hrefs, a.Href)
	}
	return hrefs
}

// ContextSnippet is a window of body text around a keyword occurrence,
// built only to feed the model stage.
type ContextSnippet struct {
	Text string

	// Position is the byte offset of the keyword occurrence that seeded
	// the snippet.
	Position int
}

// AnchorCollector finds anchor candidates in a raw email body.
type AnchorCollector interface {
	// CollectAnchors returns every http(s) anchor in document order.
	// Malformed markup yields fewer anchors, never an error.
	CollectAnchors(body string) []AnchorCandidate
}

// PatternMatcher applies ordered text rules directly to a raw email body.
type PatternMatcher interface {
	// Match returns the first rule match and true, or "" and false when no
	// rule matches. The match is not validated.
	Match(body string) (string, bool)
}

// SnippetExtractor builds context windows around unsubscribe keywords.
type SnippetExtractor interface {
	// ExtractSnippets returns at most MaxSnippets snippets in document order.
	ExtractSnippets(body string) []ContextSnippet
}
