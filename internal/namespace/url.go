package namespace

import (
	"net/url"
	"strings"
)

// IsURL reports whether s looks like a URL: an http(s) scheme, a www.
// prefix, or a dotted name without spaces whose last label is non-empty.
func IsURL(s string) bool {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") || strings.HasPrefix(s, "www.") {
		return true
	}
	if !strings.Contains(s, ".") || strings.Contains(s, " ") {
		return false
	}
	labels := strings.Split(s, ".")
	return len(labels) >= 2 && labels[len(labels)-1] != ""
}

// NormalizeURL prefixes https:// when s has no http(s) scheme.
func NormalizeURL(s string) string {
	if strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://") {
		return s
	}
	return "https://" + s
}

// encodeArgs percent-encodes everything except unreserved characters.
// Spaces become %20.
func encodeArgs(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
