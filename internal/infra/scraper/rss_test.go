package scraper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"goldbrief/internal/infra/scraper"
)

func TestRSSFetcher_Fetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <link>https://example.com</link>
    <description>Test Description</description>
    <item>
      <title>Gold Climbs Past Record High</title>
      <link>https://example.com/gold-record</link>
      <description>Spot gold set a fresh record on Tuesday.</description>
      <pubDate>Mon, 01 Jan 2024 00:00:00 +0000</pubDate>
    </item>
    <item>
      <title>Fed Signals Patience</title>
      <link>https://example.com/fed-patience</link>
      <description>Officials want more data before moving.</description>
      <pubDate>Tue, 02 Jan 2024 00:00:00 +0000</pubDate>
    </item>
  </channel>
</rss>`
		w.Header().Set("Content-Type", "application/rss+xml")
		if _, err := w.Write([]byte(rss)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := scraper.NewRSSFetcher(client)

	items, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("items length = %d, want 2", len(items))
	}

	if items[0].Title != "Gold Climbs Past Record High" {
		t.Errorf("items[0].Title = %q, want %q", items[0].Title, "Gold Climbs Past Record High")
	}
	if items[0].Link != "https://example.com/gold-record" {
		t.Errorf("items[0].Link = %q, want %q", items[0].Link, "https://example.com/gold-record")
	}
	if items[0].Description != "Spot gold set a fresh record on Tuesday." {
		t.Errorf("items[0].Description = %q", items[0].Description)
	}
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if !items[0].PublishedAt.Equal(want) {
		t.Errorf("items[0].PublishedAt = %v, want %v", items[0].PublishedAt, want)
	}
}

func TestRSSFetcher_Fetch_CDATAAndEntities(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title><![CDATA[Silver &amp; Solar: Demand Outlook]]></title>
      <link>https://example.com/silver-solar</link>
      <description><![CDATA[<p>Analysts   say <b>industrial</b> demand is &quot;strong&quot;.</p>]]></description>
      <pubDate>Mon, 01 Jan 2024 00:00:00 +0000</pubDate>
    </item>
  </channel>
</rss>`
		w.Header().Set("Content-Type", "application/rss+xml")
		if _, err := w.Write([]byte(rss)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := scraper.NewRSSFetcher(client)

	items, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("items length = %d, want 1", len(items))
	}

	if items[0].Title != "Silver & Solar: Demand Outlook" {
		t.Errorf("items[0].Title = %q", items[0].Title)
	}
	wantDesc := `Analysts say industrial demand is "strong".`
	if items[0].Description != wantDesc {
		t.Errorf("items[0].Description = %q, want %q", items[0].Description, wantDesc)
	}
}

func TestRSSFetcher_Fetch_MissingFields(t *testing.T) {
	// Items with no title or no link are dropped; a missing pubDate and
	// description are substituted, not fatal.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rss := `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>Kept Item</title>
      <link>https://example.com/kept</link>
    </item>
    <item>
      <title></title>
      <link>https://example.com/no-title</link>
    </item>
    <item>
      <title>No Link Item</title>
    </item>
  </channel>
</rss>`
		w.Header().Set("Content-Type", "application/rss+xml")
		if _, err := w.Write([]byte(rss)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := scraper.NewRSSFetcher(client)

	before := time.Now()
	items, err := fetcher.Fetch(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}

	if len(items) != 1 {
		t.Fatalf("items length = %d, want 1", len(items))
	}
	if items[0].Title != "Kept Item" {
		t.Errorf("items[0].Title = %q, want %q", items[0].Title, "Kept Item")
	}
	if items[0].Description != "" {
		t.Errorf("items[0].Description = %q, want empty", items[0].Description)
	}
	if items[0].PublishedAt.Before(before) {
		t.Errorf("items[0].PublishedAt = %v, want >= fetch start", items[0].PublishedAt)
	}
}

func TestRSSFetcher_Fetch_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := scraper.NewRSSFetcher(client)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Fetch() error = nil, want error on HTTP 500")
	}
}

func TestRSSFetcher_Fetch_InvalidXML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		if _, err := w.Write([]byte("Invalid XML <><><>")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := scraper.NewRSSFetcher(client)

	_, err := fetcher.Fetch(context.Background(), server.URL)
	if err == nil {
		t.Fatal("Fetch() error = nil, want error")
	}
}

func TestRSSFetcher_Fetch_SendsUserAgent(t *testing.T) {
	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		rss := `<?xml version="1.0"?><rss version="2.0"><channel><title>t</title></channel></rss>`
		if _, err := w.Write([]byte(rss)); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}))
	defer server.Close()

	client := &http.Client{Timeout: 10 * time.Second}
	fetcher := scraper.NewRSSFetcher(client)

	if _, err := fetcher.Fetch(context.Background(), server.URL); err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if gotUA == "" || gotUA == "Go-http-client/1.1" {
		t.Errorf("User-Agent = %q, want identifying bot user agent", gotUA)
	}
}
