package unsublink

import (
	"net/url"
	"strings"
)

// danglingSuffixes mark a URL whose query was cut off mid-parameter.
var danglingSuffixes = []string{"?=", "&=", "?", "&"}

// ValidURL reports whether s is an absolute http(s) URL that is safe to
// present as an unsubscribe link. It is deterministic and has no side effects.
func ValidURL(s string) bool {
	if s == "" || strings.Contains(s, " ") {
		return false
	}
	if !HasHTTPScheme(s) {
		return false
	}
	for _, suffix := range danglingSuffixes {
		if strings.HasSuffix(s, suffix) {
			return false
		}
	}

	u, err := url.Parse(s)
	if err != nil || !u.IsAbs() {
		return false
	}
	host := u.Hostname()
	return host != "" && strings.Contains(host, ".")
}

// HasHTTPScheme reports whether s starts with http:// or https://,
// ignoring case.
func HasHTTPScheme(s string) bool {
	lower := strings.ToLower(s)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
