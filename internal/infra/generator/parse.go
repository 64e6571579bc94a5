package generator

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"goldbrief/internal/domain/entity"
	"goldbrief/internal/utils/text"
)

// defaultReadMinutes is used when the response omits readTime or supplies a
// non-numeric value.
const defaultReadMinutes = 4

// previewLen bounds the raw-response preview included in parse failure logs.
const previewLen = 300

// ParseResponse parses a model response into an ArticleDraft.
//
// The expected shape is a ---fenced key:value frontmatter block (title,
// headline, excerpt, readTime) followed by the freeform body. Missing keys
// take defaults (title "Untitled", headline falls back to the title, excerpt
// empty, readTime 4). If the fence itself cannot be located, parsing fails;
// the caller treats this as a recoverable per-item failure.
func ParseResponse(raw string, item entity.ScoredItem, now time.Time) (*entity.ArticleDraft, error) {
	front, body, err := splitFrontmatter(raw)
	if err != nil {
		return nil, err
	}

	fields := parseKeyValues(front)

	title := fields["title"]
	if title == "" {
		title = "Untitled"
	}
	headline := fields["headline"]
	if headline == "" {
		headline = title
	}
	excerpt := fields["excerpt"]

	readMinutes := defaultReadMinutes
	if v, parseErr := strconv.Atoi(strings.TrimSpace(fields["readtime"])); parseErr == nil && v > 0 {
		readMinutes = v
	}

	g := guidanceFor(item.Category)

	return &entity.ArticleDraft{
		Title:           title,
		Headline:        headline,
		Excerpt:         excerpt,
		Body:            strings.TrimSpace(body),
		Category:        item.Category,
		PublishedAt:     now,
		Author:          Author,
		ReadMinutes:     readMinutes,
		FeaturedImage:   g.featuredImage,
		FeaturedImgAlt:  g.featuredImageAlt,
		MetaTitle:       title,
		MetaDescription: excerpt,
		RelatedGuides:   g.relatedGuides,
		RelatedNews:     nil,
		SourceURL:       item.Link,
		SourceName:      item.SourceName,
	}, nil
}

// splitFrontmatter locates the opening and closing --- fences and returns
// the frontmatter block and the remaining body. Models occasionally prefix
// the fence with filler prose, so the opening fence may appear anywhere.
func splitFrontmatter(raw string) (front, body string, err error) {
	trimmed := strings.TrimSpace(raw)

	start := strings.Index(trimmed, "---")
	if start < 0 {
		return "", "", fmt.Errorf("response frontmatter fence not found")
	}
	rest := trimmed[start+3:]

	end := strings.Index(rest, "---")
	if end < 0 {
		return "", "", fmt.Errorf("response frontmatter closing fence not found")
	}

	return rest[:end], rest[end+3:], nil
}

// parseKeyValues parses "key: value" lines into a map with lower-cased keys.
// Lines without a colon are ignored.
func parseKeyValues(block string) map[string]string {
	fields := make(map[string]string)
	for _, line := range strings.Split(block, "\n") {
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		fields[strings.ToLower(strings.TrimSpace(key))] = strings.TrimSpace(value)
	}
	return fields
}

// preview returns a truncated single-line excerpt of a raw response for
// diagnostic logging.
func preview(raw string) string {
	flat := strings.Join(strings.Fields(raw), " ")
	if text.CountRunes(flat) <= previewLen {
		return flat
	}
	return string([]rune(flat)[:previewLen]) + "..."
}
