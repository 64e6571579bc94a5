package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

// fetchUserAgent identifies the bot when fetching source pages.
const fetchUserAgent = "GoldBriefBot/1.0 (+https://goldbrief.example/about-bot)"

// ReadabilityFetcher extracts clean article text from a source page using
// the Mozilla Readability algorithm, falling back to plain paragraph
// extraction when readability yields nothing.
type ReadabilityFetcher struct {
	client *http.Client
	config Config
}

// NewReadabilityFetcher creates a ReadabilityFetcher with the given
// configuration.
func NewReadabilityFetcher(config Config) *ReadabilityFetcher {
	return &ReadabilityFetcher{
		client: &http.Client{Timeout: config.Timeout},
		config: config,
	}
}

// Threshold returns the minimum description length below which callers
// should attempt a full-content fetch.
func (f *ReadabilityFetcher) Threshold() int {
	return f.config.Threshold
}

// FetchContent fetches the page at rawURL and returns its readable text.
func (f *ReadabilityFetcher) FetchContent(ctx context.Context, rawURL string) (string, error) {
	pageURL, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse content url: %w", err)
	}
	if pageURL.Scheme != "http" && pageURL.Scheme != "https" {
		return "", fmt.Errorf("unsupported content url scheme %q", pageURL.Scheme)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build content request: %w", err)
	}
	req.Header.Set("User-Agent", fetchUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("fetch content: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read content body: %w", err)
	}

	article, err := readability.FromReader(bytes.NewReader(body), pageURL)
	if err == nil && strings.TrimSpace(article.TextContent) != "" {
		return strings.TrimSpace(article.TextContent), nil
	}

	// Readability found no main content; fall back to joining paragraphs.
	return extractParagraphs(body)
}

// extractParagraphs joins the text of all <p> elements in the document.
func extractParagraphs(body []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("parse content html: %w", err)
	}

	var parts []string
	doc.Find("p").Each(func(_ int, s *goquery.Selection) {
		if text := strings.TrimSpace(s.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	if len(parts) == 0 {
		return "", fmt.Errorf("no readable content found")
	}
	return strings.Join(parts, "\n\n"), nil
}
