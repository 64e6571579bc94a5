package store

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"goldbrief/internal/domain/entity"
)

// quoteSanitizer normalizes typographic quotes to their ASCII forms before
// the remaining double quotes are demoted to single quotes.
var quoteSanitizer = strings.NewReplacer(
	"\u201c", `"`,
	"\u201d", `"`,
	"\u2018", "'",
	"\u2019", "'",
)

// Sanitize prepares a value for inclusion in a double-quoted frontmatter
// scalar: typographic quotes become ASCII and every remaining double quote
// becomes a single quote. The conversion is lossy and not reversed on read.
func Sanitize(s string) string {
	return strings.ReplaceAll(quoteSanitizer.Replace(s), `"`, "'")
}

// Serialize renders a draft as a complete .mdx document: a ---fenced
// frontmatter block in fixed key order followed by the article body.
func Serialize(draft *entity.ArticleDraft, status entity.ArticleStatus) string {
	var b strings.Builder
	b.WriteString("---\n")
	writeScalar(&b, "title", draft.Title)
	writeScalar(&b, "headline", draft.Headline)
	writeScalar(&b, "excerpt", draft.Excerpt)
	writeScalar(&b, "category", string(draft.Category))
	writeScalar(&b, "publishedAt", draft.PublishedAt.UTC().Format(time.RFC3339))
	writeScalar(&b, "author", draft.Author)
	fmt.Fprintf(&b, "readTime: %d\n", draft.ReadMinutes)
	writeScalar(&b, "featuredImage", draft.FeaturedImage)
	writeScalar(&b, "featuredImageAlt", draft.FeaturedImgAlt)
	writeScalar(&b, "metaTitle", draft.MetaTitle)
	writeScalar(&b, "metaDescription", draft.MetaDescription)
	writeList(&b, "relatedGuides", draft.RelatedGuides)
	writeList(&b, "relatedNews", draft.RelatedNews)
	writeScalar(&b, "status", string(status))
	writeScalar(&b, "sourceUrl", draft.SourceURL)
	writeScalar(&b, "sourceName", draft.SourceName)
	b.WriteString("---\n\n")
	b.WriteString(strings.TrimSpace(draft.Body))
	b.WriteString("\n")
	return b.String()
}

func writeScalar(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "%s: %q\n", key, Sanitize(value))
}

func writeList(b *strings.Builder, key string, values []string) {
	if len(values) == 0 {
		fmt.Fprintf(b, "%s: []\n", key)
		return
	}
	fmt.Fprintf(b, "%s:\n", key)
	for _, v := range values {
		fmt.Fprintf(b, "  - %q\n", Sanitize(v))
	}
}

// Frontmatter is the parsed form of an article file's metadata block.
type Frontmatter struct {
	Scalars map[string]string
	Lists   map[string][]string
}

// Status returns the article's status field.
func (f Frontmatter) Status() entity.ArticleStatus {
	return entity.ArticleStatus(f.Scalars["status"])
}

// Parse splits a serialized article into its frontmatter and body. It only
// understands the subset of YAML this package writes: double-quoted scalars,
// bare values, and block lists of quoted strings.
func Parse(content string) (Frontmatter, string, error) {
	fm := Frontmatter{
		Scalars: make(map[string]string),
		Lists:   make(map[string][]string),
	}

	rest, found := strings.CutPrefix(content, "---\n")
	if !found {
		return Frontmatter{}, "", fmt.Errorf("frontmatter opening fence not found")
	}
	block, body, found := strings.Cut(rest, "\n---")
	if !found {
		return Frontmatter{}, "", fmt.Errorf("frontmatter closing fence not found")
	}

	var listKey string
	for _, line := range strings.Split(block, "\n") {
		if item, ok := strings.CutPrefix(line, "  - "); ok && listKey != "" {
			fm.Lists[listKey] = append(fm.Lists[listKey], unquote(item))
			continue
		}
		listKey = ""

		key, value, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch value {
		case "":
			listKey = key
			fm.Lists[key] = nil
		case "[]":
			fm.Lists[key] = nil
		default:
			fm.Scalars[key] = unquote(value)
		}
	}

	return fm, strings.TrimSpace(body), nil
}

func unquote(s string) string {
	if unquoted, err := strconv.Unquote(s); err == nil {
		return unquoted
	}
	return s
}
