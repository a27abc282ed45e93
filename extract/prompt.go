package extract

import (
	"fmt"
	"strings"

	"github.com/danespinosa/unsublink"
)

// AnswerMarker ends every prompt; the model's answer follows it.
const AnswerMarker = "Answer:"

// NegativeToken is what the model is told to answer when no link qualifies.
const NegativeToken = "NONE"

const instruction = `You are helping a user stop receiving marketing email.
Select exactly one absolute URL (starting with http:// or https://) that the recipient should visit to unsubscribe.
Prefer, in order:
1. A link whose text says "unsubscribe".
2. A link whose URL contains unsubscribe, opt-out, optout, or preferences.
3. A link whose text mentions opting out or managing email preferences.
4. A generic link ("click here", "here") whose surrounding text is about unsubscribing.
Reply with the URL only. If no link qualifies, reply with ` + NegativeToken + `.`

// BuildAnchorPrompt builds a prompt listing every anchor candidate with its
// surrounding context.
func BuildAnchorPrompt(anchors []unsublink.AnchorCandidate) string {
	var sb strings.Builder
	sb.WriteString(instruction)
	sb.WriteString("\n\n<links>\n")
	for i, a := range anchors {
		sb.WriteString("<link>\n")
		fmt.Fprintf(&sb, "<index>%d</index>\n", i+1)
		fmt.Fprintf(&sb, "<text>%s</text>\n", a.Text)
		fmt.Fprintf(&sb, "<url>%s</url>\n", a.Href)
		fmt.Fprintf(&sb, "<context>%s[LINK]%s</context>\n", flatten(a.ContextBefore), flatten(a.ContextAfter))
		sb.WriteString("</link>\n")
	}
	sb.WriteString("</links>\n\n")
	sb.WriteString(AnswerMarker)
	return sb.String()
}

// BuildSnippetPrompt builds a prompt around a single excerpt of the email.
func BuildSnippetPrompt(snippet unsublink.ContextSnippet) string {
	var sb strings.Builder
	sb.WriteString(instruction)
	sb.WriteString("\n\n<excerpt>\n")
	sb.WriteString(snippet.Text)
	sb.WriteString("\n</excerpt>\n\n")
	sb.WriteString(AnswerMarker)
	return sb.String()
}

// flatten collapses whitespace so context windows stay on one line.
func flatten(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
