// Package scraper provides the RSS feed fetcher for the news pipeline.
// It uses the gofeed library to parse feed content and normalizes the
// extracted text before handing items to the scoring stage.
package scraper

import (
	"context"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"goldbrief/internal/domain/entity"
)

// userAgent identifies the bot to feed publishers on every request.
const userAgent = "GoldBriefBot/1.0 (+https://goldbrief.example/about-bot)"

// RSSFetcher implements feed fetching using the gofeed library.
type RSSFetcher struct {
	client *http.Client
}

// NewRSSFetcher creates a new RSSFetcher with the given HTTP client.
// The client controls all transport-level behavior; the fetcher itself
// performs no retries.
func NewRSSFetcher(client *http.Client) *RSSFetcher {
	return &RSSFetcher{client: client}
}

// Fetch retrieves and parses an RSS feed from the given URL.
// Titles and descriptions are HTML-stripped and whitespace-normalized;
// items missing a title or link after cleaning are dropped. A missing or
// unparsable publication date is replaced with the fetch time.
func (f *RSSFetcher) Fetch(ctx context.Context, feedURL string) ([]entity.FeedItem, error) {
	fp := gofeed.NewParser()
	fp.UserAgent = userAgent
	fp.Client = f.client

	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entity.FeedItem, 0, len(feed.Items))
	for _, it := range feed.Items {
		pubAt := time.Now()
		if it.PublishedParsed != nil {
			pubAt = *it.PublishedParsed
		}

		title := CleanText(it.Title)
		link := CleanText(it.Link)
		if title == "" || link == "" {
			continue
		}

		items = append(items, entity.FeedItem{
			Title:       title,
			Link:        link,
			Description: CleanText(it.Description),
			PublishedAt: pubAt,
		})
	}

	return items, nil
}
