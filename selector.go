package unsublink

import "strings"

// Tier is one level of the candidate selection heuristic.
type Tier struct {
	// Name identifies the tier in logs and tests.
	Name string

	// Match reports whether a candidate satisfies the tier.
	Match func(c AnchorCandidate) bool
}

// First returns the first candidate in document order satisfying the tier.
func (t Tier) First(anchors []AnchorCandidate) (AnchorCandidate, bool) {
	for _, a := range anchors {
		if t.Match(a) {
			return a, true
		}
	}
	return AnchorCandidate{}, false
}

// SelectionTiers are evaluated from most to least confident: explicit
// unsubscribe text, keyword in the URL, keyword in the text, and finally a
// generic link text next to keyword-bearing context.
var SelectionTiers = []Tier{
	{
		Name: "unsubscribe-text",
		Match: func(c AnchorCandidate) bool {
			return strings.Contains(strings.ToLower(c.Text), "unsubscribe")
		},
	},
	{
		Name: "keyword-href",
		Match: func(c AnchorCandidate) bool {
			return ContainsKeyword(c.Href)
		},
	},
	{
		Name: "keyword-text",
		Match: func(c AnchorCandidate) bool {
			return ContainsKeyword(c.Text)
		},
	},
	{
		Name: "contextual",
		Match: func(c AnchorCandidate) bool {
			if !ContainsKeyword(c.ContextBefore) && !ContainsKeyword(c.ContextAfter) {
				return false
			}
			return IsBlank(c.Text) || IsActionPhrase(c.Text)
		},
	},
}

// SelectCandidate returns the first candidate of the highest tier in
// SelectionTiers that has any match.
func SelectCandidate(anchors []AnchorCandidate) (AnchorCandidate, bool) {
	return SelectCandidateWithTiers(anchors, SelectionTiers)
}

// SelectCandidateWithTiers is like SelectCandidate but evaluates the given
// tiers in order.
func SelectCandidateWithTiers(anchors []AnchorCandidate, tiers []Tier) (AnchorCandidate, bool) {
	for _, t := range tiers {
		if c, ok := t.First(anchors); ok {
			return c, true
		}
	}
	return AnchorCandidate{}, false
}
