package scraper

import (
	"regexp"
	"strings"
)

var (
	tagPattern        = regexp.MustCompile(`<[^>]*>`)
	whitespacePattern = regexp.MustCompile(`\s+`)

	// The five standard HTML entities that survive feed extraction.
	// Replacer decodes in a single pass, so "&amp;lt;" stays "&lt;".
	entityReplacer = strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&#39;", "'",
		"&amp;", "&",
	)
)

// CleanText normalizes a text fragment extracted from a feed document:
// HTML tags are stripped, the five standard entities are decoded, runs of
// whitespace collapse to a single space, and the result is trimmed.
func CleanText(s string) string {
	if s == "" {
		return ""
	}
	s = tagPattern.ReplaceAllString(s, "")
	s = entityReplacer.Replace(s)
	s = whitespacePattern.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}
