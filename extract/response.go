package extract

import (
	"regexp"
	"strings"
)

var (
	responseURLPattern = regexp.MustCompile(`(?i)https?://[^\s<>"'` + "`" + `]+`)
	negativePattern    = regexp.MustCompile(`(?i)^\W*(?:none|no link|not found)\W*$`)
)

// trailingPunctuation is trimmed from URLs found in model output.
const trailingPunctuation = `.,;:!?)]}>"'*`

// ParseResponse extracts the URL from a model completion. The prompt is
// stripped if the model echoed it, and only the text after the last
// AnswerMarker is considered. An answer that is only a negative token
// yields false; a URL anywhere in the answer is otherwise returned.
func ParseResponse(prompt, completion string) (string, bool) {
	text := strings.TrimPrefix(completion, prompt)
	if i := strings.LastIndex(text, AnswerMarker); i >= 0 {
		text = text[i+len(AnswerMarker):]
	}
	text = strings.TrimSpace(text)

	if negativePattern.MatchString(text) {
		return "", false
	}
	link := responseURLPattern.FindString(text)
	link = strings.TrimRight(link, trailingPunctuation)
	return link, link != ""
}
