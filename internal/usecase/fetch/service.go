package fetch

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"goldbrief/internal/config"
	"goldbrief/internal/domain/entity"
	"goldbrief/internal/observability/metrics"
)

// FeedFetcher is an interface for fetching one RSS feed from a URL.
type FeedFetcher interface {
	Fetch(ctx context.Context, url string) ([]entity.FeedItem, error)
}

// Service crawls every configured feed and produces the merged item list.
type Service struct {
	Feeds   []config.Feed
	Fetcher FeedFetcher

	// Window is the trailing publication window; items older than
	// now-Window are discarded. Zero disables the filter.
	Window time.Duration

	// now is injected in tests; defaults to time.Now.
	now func() time.Time
}

// NewService creates a fetch Service over the given feed list.
func NewService(feeds []config.Feed, fetcher FeedFetcher, window time.Duration) (*Service, error) {
	if len(feeds) == 0 {
		return nil, ErrNoFeeds
	}
	return &Service{
		Feeds:   feeds,
		Fetcher: fetcher,
		Window:  window,
		now:     time.Now,
	}, nil
}

// FetchAll crawls every configured feed sequentially and returns the merged,
// date-sorted, window-filtered item list.
//
// Per-feed failures (network, HTTP status, parse) are logged and that feed's
// contribution is empty; an all-feeds-failed run returns an empty slice and a
// nil error. Each item carries the name of its originating feed.
func (s *Service) FetchAll(ctx context.Context) []entity.FeedItem {
	logger := slog.Default()
	var merged []entity.FeedItem

	for _, feed := range s.Feeds {
		items, err := s.Fetcher.Fetch(ctx, feed.URL)
		if err != nil {
			logger.Warn("failed to fetch feed, skipping",
				slog.String("feed", feed.Name),
				slog.String("url", feed.URL),
				slog.Any("error", err))
			metrics.RecordFeedFetch(feed.Name, false)
			continue
		}
		metrics.RecordFeedFetch(feed.Name, true)
		metrics.RecordFeedItems(feed.Name, len(items))

		for i := range items {
			items[i].SourceName = feed.Name
		}
		merged = append(merged, items...)

		logger.Info("feed fetched",
			slog.String("feed", feed.Name),
			slog.Int("items", len(items)))
	}

	// Newest first. Items whose dates could not be parsed were already
	// stamped with the fetch time by the scraper, so they sort to the top.
	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})

	if s.Window <= 0 {
		return merged
	}

	cutoff := s.now().Add(-s.Window)
	fresh := make([]entity.FeedItem, 0, len(merged))
	for _, item := range merged {
		if item.PublishedAt.After(cutoff) {
			fresh = append(fresh, item)
		}
	}

	logger.Info("feeds merged",
		slog.Int("total_items", len(merged)),
		slog.Int("fresh_items", len(fresh)),
		slog.Duration("window", s.Window))

	return fresh
}
