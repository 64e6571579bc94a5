package generator

import (
	"context"
	"time"

	"goldbrief/internal/domain/entity"
	"goldbrief/internal/utils/text"
)

// readingWordsPerMinute is the pace used to estimate read time for
// placeholder drafts.
const readingWordsPerMinute = 200

// Noop is a generator that produces a deterministic placeholder draft.
// It exists for local development and tests where no API key is available.
type Noop struct{}

// Generate returns a minimal draft derived from the item itself.
func (Noop) Generate(_ context.Context, item entity.ScoredItem) (*entity.ArticleDraft, error) {
	g := guidanceFor(item.Category)

	readMinutes := text.CountWords(item.Description)/readingWordsPerMinute + 1
	return &entity.ArticleDraft{
		Title:           item.Title,
		Headline:        item.Title,
		Excerpt:         item.Description,
		Body:            item.Description,
		Category:        item.Category,
		PublishedAt:     time.Now(),
		Author:          Author,
		ReadMinutes:     readMinutes,
		FeaturedImage:   g.featuredImage,
		FeaturedImgAlt:  g.featuredImageAlt,
		MetaTitle:       item.Title,
		MetaDescription: item.Description,
		RelatedGuides:   g.relatedGuides,
		SourceURL:       item.Link,
		SourceName:      item.SourceName,
	}, nil
}
