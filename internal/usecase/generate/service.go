// Package generate drives article generation for a batch of selected items.
// Items are processed sequentially; a rate limiter spaces model calls so a
// run never bursts against provider limits. A failed item is logged and
// dropped, never retried, and never aborts the batch.
package generate

import (
	"context"
	"log/slog"

	"golang.org/x/time/rate"

	"goldbrief/internal/domain/entity"
	"goldbrief/internal/utils/text"
)

// Generator produces an article draft from a scored feed item.
type Generator interface {
	Generate(ctx context.Context, item entity.ScoredItem) (*entity.ArticleDraft, error)
}

// ContentFetcher retrieves full article text from a source page.
type ContentFetcher interface {
	FetchContent(ctx context.Context, url string) (string, error)
	Threshold() int
}

// Service generates drafts for a batch of scored items.
type Service struct {
	generator Generator
	fetcher   ContentFetcher // nil disables content enhancement
	limiter   *rate.Limiter
}

// Option configures a Service.
type Option func(*Service)

// WithContentFetcher enables full-content fetching for items whose RSS
// description is shorter than the fetcher's threshold.
func WithContentFetcher(f ContentFetcher) Option {
	return func(s *Service) { s.fetcher = f }
}

// NewService creates a generation Service. Model calls are spaced by the
// limiter, at most one per its configured interval.
func NewService(generator Generator, limiter *rate.Limiter, opts ...Option) *Service {
	s := &Service{
		generator: generator,
		limiter:   limiter,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GenerateBatch produces drafts for the given items in order. Items whose
// generation fails are omitted from the result.
func (s *Service) GenerateBatch(ctx context.Context, items []entity.ScoredItem) ([]*entity.ArticleDraft, error) {
	logger := slog.Default()
	drafts := make([]*entity.ArticleDraft, 0, len(items))

	for _, item := range items {
		if err := s.limiter.Wait(ctx); err != nil {
			return drafts, err
		}

		enriched := s.enhance(ctx, item)

		draft, err := s.generator.Generate(ctx, enriched)
		if err != nil {
			logger.Error("article generation failed, dropping item",
				slog.String("title", item.Title),
				slog.String("link", item.Link),
				slog.Any("error", err))
			continue
		}

		logger.Info("article generated",
			slog.String("title", draft.Title),
			slog.String("category", string(draft.Category)))
		drafts = append(drafts, draft)
	}

	return drafts, nil
}

// enhance swaps in full page content when the RSS description is too thin to
// prompt from. Fetch failures leave the item unchanged.
func (s *Service) enhance(ctx context.Context, item entity.ScoredItem) entity.ScoredItem {
	if s.fetcher == nil || text.CountRunes(item.Description) >= s.fetcher.Threshold() {
		return item
	}

	content, err := s.fetcher.FetchContent(ctx, item.Link)
	if err != nil {
		slog.Warn("content fetch failed, using feed description",
			slog.String("link", item.Link),
			slog.Any("error", err))
		return item
	}

	item.Description = content
	return item
}
