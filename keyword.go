package unsublink

import (
	"regexp"
	"sort"
	"strings"
)

// Keywords signal an unsubscribe or preference-management link. Matching is
// case-insensitive and accepts hyphenated and unspaced forms of multi-word
// entries ("opt out", "opt-out", "optout").
var Keywords = []string{
	"unsubscribe",
	"opt-out",
	"optout",
	"opt out",
	"preferences",
	"manage preferences",
	"email preferences",
	"update preferences",
	"no longer wish to receive",
}

// ActionPhrases are generic link texts that only make sense next to a
// sentence explaining what the link does.
var ActionPhrases = []string{
	"click here",
	"here",
	"click",
	"tap here",
	"this link",
	"follow this link",
	"tap",
}

// MaxSnippets caps the number of context snippets handed to the model.
const MaxSnippets = 3

var keywordPattern = compileKeywordPattern(Keywords)

// compileKeywordPattern builds one case-insensitive alternation over the
// keywords. Longer keywords come first so a match starting at the same
// offset covers the whole phrase.
func compileKeywordPattern(keywords []string) *regexp.Regexp {
	alts := make([]string, 0, len(keywords))
	seen := make(map[string]bool)
	for _, k := range keywords {
		words := strings.FieldsFunc(strings.ToLower(k), func(r rune) bool {
			return r == ' ' || r == '-'
		})
		for i, w := range words {
			words[i] = regexp.QuoteMeta(w)
		}
		alt := strings.Join(words, `[\s-]?`)
		if seen[alt] {
			continue
		}
		seen[alt] = true
		alts = append(alts, alt)
	}
	sort.SliceStable(alts, func(i, j int) bool { return len(alts[i]) > len(alts[j]) })
	return regexp.MustCompile(`(?i)(?:` + strings.Join(alts, "|") + `)`)
}

// ContainsKeyword reports whether s contains any of Keywords.
func ContainsKeyword(s string) bool {
	return keywordPattern.MatchString(s)
}

// KeywordIndices returns the [start, end) byte spans of every
// non-overlapping keyword occurrence in s, in document order.
func KeywordIndices(s string) [][]int {
	return keywordPattern.FindAllStringIndex(s, -1)
}

var actionPhraseSet = func() map[string]bool {
	m := make(map[string]bool, len(ActionPhrases))
	for _, p := range ActionPhrases {
		m[p] = true
	}
	return m
}()

// IsActionPhrase reports whether text, once lowercased, whitespace-collapsed
// and stripped of trailing punctuation, equals one of ActionPhrases.
func IsActionPhrase(text string) bool {
	return actionPhraseSet[normalizeLinkText(text)]
}

// IsBlank reports whether text is empty or whitespace only.
func IsBlank(text string) bool {
	return strings.TrimSpace(text) == ""
}

func normalizeLinkText(text string) string {
	text = strings.ToLower(strings.Join(strings.Fields(text), " "))
	return strings.TrimSpace(strings.TrimRight(text, ".!:>» "))
}
