// Package pipeline orchestrates one end-to-end run: crawl the configured
// feeds, dedupe and score the merged items, select a batch, generate drafts,
// and persist them for review. Each stage absorbs its own per-item failures;
// the run as a whole fails only on context cancellation.
package pipeline

import (
	"context"
	"log/slog"
	"time"

	"goldbrief/internal/domain/entity"
	"goldbrief/internal/infra/notifier"
	"goldbrief/internal/infra/store"
	"goldbrief/internal/observability/metrics"
	"goldbrief/internal/usecase/fetch"
	"goldbrief/internal/usecase/generate"
	"goldbrief/internal/usecase/score"
)

// Stats summarizes what one run did at each stage.
type Stats struct {
	Fetched   int
	Deduped   int
	Selected  int
	Generated int
	Written   int
	Titles    []string
	Duration  time.Duration
}

// Service wires the pipeline stages together.
type Service struct {
	fetcher   *fetch.Service
	generator *generate.Service
	content   *store.ContentStore
	queue     *store.Queue
	notifier  notifier.Notifier

	minScore float64
	maxBatch int

	// now is injected in tests; defaults to time.Now.
	now func() time.Time
}

// NewService creates a pipeline Service.
func NewService(
	fetcher *fetch.Service,
	generator *generate.Service,
	content *store.ContentStore,
	queue *store.Queue,
	n notifier.Notifier,
	minScore float64,
	maxBatch int,
) *Service {
	if n == nil {
		n = notifier.NewNoOpNotifier()
	}
	return &Service{
		fetcher:   fetcher,
		generator: generator,
		content:   content,
		queue:     queue,
		notifier:  n,
		minScore:  minScore,
		maxBatch:  maxBatch,
		now:       time.Now,
	}
}

// Run executes one full pipeline pass and returns its stats. An empty crawl
// or an empty selection is a successful run that writes nothing.
func (s *Service) Run(ctx context.Context) (Stats, error) {
	logger := slog.Default()
	start := s.now()

	items := s.fetcher.FetchAll(ctx)
	deduped := score.Dedupe(items)
	scored := score.ScoreAll(deduped)
	selected := score.SelectTop(scored, s.minScore, s.maxBatch)

	stats := Stats{
		Fetched:  len(items),
		Deduped:  len(deduped),
		Selected: len(selected),
	}

	drafts, err := s.generator.GenerateBatch(ctx, selected)
	stats.Generated = len(drafts)
	if err != nil {
		stats.Duration = s.now().Sub(start)
		return stats, err
	}

	for _, draft := range drafts {
		slug, writeErr := s.content.Write(draft, entity.StatusReview)
		if writeErr != nil {
			logger.Error("failed to write article, dropping",
				slog.String("title", draft.Title),
				slog.Any("error", writeErr))
			continue
		}
		if queueErr := s.queue.Append(slug, draft.Title, s.now()); queueErr != nil {
			logger.Error("article written but not queued",
				slog.String("slug", slug),
				slog.Any("error", queueErr))
		}

		metrics.RecordArticleWritten()
		stats.Written++
		stats.Titles = append(stats.Titles, draft.Title)

		logger.Info("article queued for review",
			slog.String("slug", slug),
			slog.String("category", string(draft.Category)))
	}

	stats.Duration = s.now().Sub(start)

	logger.Info("pipeline run complete",
		slog.Int("fetched", stats.Fetched),
		slog.Int("deduped", stats.Deduped),
		slog.Int("selected", stats.Selected),
		slog.Int("generated", stats.Generated),
		slog.Int("written", stats.Written),
		slog.Duration("duration", stats.Duration))

	if notifyErr := s.notifier.NotifyRun(ctx, notifier.RunReport{
		FetchedItems:    stats.Deduped,
		SelectedItems:   stats.Selected,
		WrittenArticles: stats.Written,
		Titles:          stats.Titles,
		Duration:        stats.Duration,
	}); notifyErr != nil {
		logger.Warn("run notification failed", slog.Any("error", notifyErr))
	}

	return stats, nil
}
