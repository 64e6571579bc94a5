// Package store persists generated articles as frontmatter-delimited .mdx
// files and maintains the pending-review queue file. Both the content
// directory and the queue file are owned exclusively by this package.
//
// All queue operations are whole-file read-modify-write with no locking;
// concurrent writer processes are not supported.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"goldbrief/internal/domain/entity"
)

// slugTitleLen caps the kebab-cased title portion of a slug.
const slugTitleLen = 50

// ContentStore writes and manages article files under a single directory.
type ContentStore struct {
	dir string
}

// NewContentStore creates a ContentStore rooted at dir.
func NewContentStore(dir string) *ContentStore {
	return &ContentStore{dir: dir}
}

// Dir returns the content directory.
func (s *ContentStore) Dir() string {
	return s.dir
}

// Path returns the on-disk path for a slug.
func (s *ContentStore) Path(slug string) string {
	return filepath.Join(s.dir, slug+".mdx")
}

// Exists reports whether a content file exists for the slug.
func (s *ContentStore) Exists(slug string) bool {
	_, err := os.Stat(s.Path(slug))
	return err == nil
}

// Write persists a draft with the given status and returns the slug it was
// stored under. The content directory is created if absent. When the derived
// slug is already taken, a numeric suffix (-2, -3, ...) disambiguates rather
// than overwriting the earlier article.
func (s *ContentStore) Write(draft *entity.ArticleDraft, status entity.ArticleStatus) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create content directory: %w", err)
	}

	slug := Slug(draft.Title, draft.PublishedAt)
	for n := 2; s.Exists(slug); n++ {
		slug = fmt.Sprintf("%s-%d", Slug(draft.Title, draft.PublishedAt), n)
	}

	content := Serialize(draft, status)
	if err := os.WriteFile(s.Path(slug), []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write article %s: %w", slug, err)
	}

	return slug, nil
}

// Delete removes the content file for a slug. Deleting an absent file is an
// error the caller may choose to ignore.
func (s *ContentStore) Delete(slug string) error {
	return os.Remove(s.Path(slug))
}

// Publish rewrites the stored article's status line from review to
// published. The rewrite is a literal text substitution of the status line,
// not a structured re-parse. A missing content file yields
// entity.ErrNotFound with no side effects.
func (s *ContentStore) Publish(slug string) error {
	path := s.Path(slug)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("article %s: %w", slug, entity.ErrNotFound)
		}
		return fmt.Errorf("read article %s: %w", slug, err)
	}

	updated := strings.Replace(string(data),
		`status: "review"`,
		`status: "published"`,
		1)

	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("update article %s: %w", slug, err)
	}
	return nil
}

// Slug derives the deterministic identifier for an article: the ISO date of
// its publication timestamp followed by the kebab-cased title truncated to
// 50 characters.
func Slug(title string, publishedAt time.Time) string {
	return publishedAt.UTC().Format("2006-01-02") + "-" + kebab(title)
}

func kebab(s string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	out := b.String()
	if len(out) > slugTitleLen {
		out = out[:slugTitleLen]
	}
	return strings.Trim(out, "-")
}
