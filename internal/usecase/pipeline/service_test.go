package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"

	"goldbrief/internal/config"
	"goldbrief/internal/domain/entity"
	"goldbrief/internal/infra/notifier"
	"goldbrief/internal/infra/store"
	"goldbrief/internal/usecase/fetch"
	"goldbrief/internal/usecase/generate"
)

var runTime = time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

type stubFeedFetcher struct {
	items map[string][]entity.FeedItem
}

func (f *stubFeedFetcher) Fetch(_ context.Context, url string) ([]entity.FeedItem, error) {
	items, ok := f.items[url]
	if !ok {
		return nil, errors.New("feed unavailable")
	}
	return items, nil
}

type stubGenerator struct {
	failTitles map[string]bool
}

func (g *stubGenerator) Generate(_ context.Context, item entity.ScoredItem) (*entity.ArticleDraft, error) {
	if g.failTitles[item.Title] {
		return nil, errors.New("model unavailable")
	}
	return &entity.ArticleDraft{
		Title:       item.Title,
		Headline:    item.Title,
		Body:        "Generated body.",
		Category:    item.Category,
		PublishedAt: runTime,
		Author:      "GoldBrief Editorial Team",
		ReadMinutes: 4,
		SourceURL:   item.Link,
		SourceName:  item.SourceName,
	}, nil
}

type captureNotifier struct {
	report *notifier.RunReport
	err    error
}

func (n *captureNotifier) NotifyRun(_ context.Context, report notifier.RunReport) error {
	n.report = &report
	return n.err
}

func feedItem(title string) entity.FeedItem {
	return entity.FeedItem{
		Title:       title,
		Link:        "https://example.com/" + title,
		Description: "Analysts weigh the latest move.",
		PublishedAt: runTime.Add(-time.Hour),
	}
}

func newTestPipeline(t *testing.T, fetcher fetch.FeedFetcher, gen generate.Generator, n notifier.Notifier) (*Service, *store.ContentStore, *store.Queue) {
	t.Helper()

	feeds := []config.Feed{
		{Name: "wire-a", URL: "https://a.example.com/rss"},
		{Name: "wire-b", URL: "https://b.example.com/rss"},
	}
	fetchSvc, err := fetch.NewService(feeds, fetcher, 0)
	require.NoError(t, err)

	genSvc := generate.NewService(gen, rate.NewLimiter(rate.Inf, 1))

	dir := t.TempDir()
	content := store.NewContentStore(filepath.Join(dir, "news"))
	queue := store.NewQueue(filepath.Join(dir, "review-queue.json"))

	svc := NewService(fetchSvc, genSvc, content, queue, n, 5.0, 3)
	svc.now = func() time.Time { return runTime }
	return svc, content, queue
}

func TestRun_EndToEnd(t *testing.T) {
	fetcher := &stubFeedFetcher{items: map[string][]entity.FeedItem{
		"https://a.example.com/rss": {
			feedItem("Gold price climbs as inflation stays hot"),
			feedItem("Local sports roundup"),
		},
		"https://b.example.com/rss": {
			// Duplicate of the wire-a story, differing only in punctuation.
			feedItem("Gold price climbs as inflation stays hot!"),
			feedItem("Federal Reserve signals a rate cut this fall"),
		},
	}}
	n := &captureNotifier{}
	svc, content, queue := newTestPipeline(t, fetcher, &stubGenerator{}, n)

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 4, stats.Fetched)
	assert.Equal(t, 3, stats.Deduped)
	assert.Equal(t, 2, stats.Selected, "the sports story scores below threshold")
	assert.Equal(t, 2, stats.Written)

	entries, err := queue.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, entity.QueuePendingReview, e.Status)
		assert.True(t, content.Exists(e.Slug))
	}

	require.NotNil(t, n.report)
	assert.Equal(t, 3, n.report.FetchedItems)
	assert.Equal(t, 2, n.report.WrittenArticles)
}

func TestRun_GenerationFailureAbsorbed(t *testing.T) {
	fetcher := &stubFeedFetcher{items: map[string][]entity.FeedItem{
		"https://a.example.com/rss": {
			feedItem("Gold price climbs as inflation stays hot"),
			feedItem("Federal Reserve signals a rate cut this fall"),
		},
		"https://b.example.com/rss": {},
	}}
	gen := &stubGenerator{failTitles: map[string]bool{
		"Federal Reserve signals a rate cut this fall": true,
	}}
	svc, _, queue := newTestPipeline(t, fetcher, gen, &captureNotifier{})

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, stats.Selected)
	assert.Equal(t, 1, stats.Generated)
	assert.Equal(t, 1, stats.Written)

	entries, err := queue.List()
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestRun_AllFeedsFailedWritesNothing(t *testing.T) {
	svc, _, queue := newTestPipeline(t, &stubFeedFetcher{}, &stubGenerator{}, &captureNotifier{})

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, stats.Fetched)
	assert.Zero(t, stats.Written)

	entries, err := queue.List()
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRun_NotifierFailureDoesNotFailRun(t *testing.T) {
	fetcher := &stubFeedFetcher{items: map[string][]entity.FeedItem{
		"https://a.example.com/rss": {feedItem("Gold price climbs as inflation stays hot")},
		"https://b.example.com/rss": {},
	}}
	n := &captureNotifier{err: errors.New("webhook down")}
	svc, _, _ := newTestPipeline(t, fetcher, &stubGenerator{}, n)

	stats, err := svc.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Written)
}
