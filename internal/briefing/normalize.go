package briefing

import (
	"html"
	"regexp"
	"strings"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

// NormalizeTitle produces the dedup key used across the selection pipeline:
// entities unescaped, markup stripped, lowercased, whitespace runs collapsed
// to single spaces, trimmed. Empty input yields the empty string. The
// function is idempotent, so keys can safely be re-normalized.
func NormalizeTitle(s string) string {
	if s == "" {
		return ""
	}
	s = html.UnescapeString(s)
	s = tagRe.ReplaceAllString(s, " ")
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}
