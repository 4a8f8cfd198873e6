package handler

import "strings"

// sanitizeText trims surrounding whitespace and strips angle brackets so
// stored values can never carry HTML tags.
func sanitizeText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, "<", "")
	return strings.ReplaceAll(s, ">", "")
}

// sanitizeURL normalizes a URL: trim, lowercase, and prefix https:// when no
// explicit scheme is present. Idempotent — applying it twice yields the same
// result as applying it once.
func sanitizeURL(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	if !strings.HasPrefix(s, "http://") && !strings.HasPrefix(s, "https://") {
		return "https://" + s
	}
	return s
}
