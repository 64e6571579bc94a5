package generator

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"goldbrief/internal/domain/entity"
)

var testItem = entity.ScoredItem{
	FeedItem: entity.FeedItem{
		Title:       "Fed Holds Rates Steady",
		Link:        "https://example.com/fed-holds",
		Description: "The Fed left rates unchanged.",
		SourceName:  "Kitco",
	},
	RelevanceScore: 9.0,
	Category:       entity.CategoryFed,
}

var testNow = time.Date(2024, 6, 1, 9, 30, 0, 0, time.UTC)

func TestParseResponse_FullFrontmatter(t *testing.T) {
	raw := `---
title: The Fed Just Blinked and Savers Should Notice
headline: The Fed Blinked
excerpt: Why a rate pause matters more than Wall Street admits.
readTime: 5
---
## The opening hook

Body text here.`

	draft, err := ParseResponse(raw, testItem, testNow)
	require.NoError(t, err)

	assert.Equal(t, "The Fed Just Blinked and Savers Should Notice", draft.Title)
	assert.Equal(t, "The Fed Blinked", draft.Headline)
	assert.Equal(t, "Why a rate pause matters more than Wall Street admits.", draft.Excerpt)
	assert.Equal(t, 5, draft.ReadMinutes)
	assert.Equal(t, "## The opening hook\n\nBody text here.", draft.Body)

	// Item-derived and static fields.
	assert.Equal(t, entity.CategoryFed, draft.Category)
	assert.Equal(t, testNow, draft.PublishedAt)
	assert.Equal(t, Author, draft.Author)
	assert.Equal(t, "https://example.com/fed-holds", draft.SourceURL)
	assert.Equal(t, "Kitco", draft.SourceName)
	assert.NotEmpty(t, draft.RelatedGuides)
	assert.NotEmpty(t, draft.FeaturedImage)
}

func TestParseResponse_MissingKeysTakeDefaults(t *testing.T) {
	raw := "---\nexcerpt: Only an excerpt.\n---\nBody."

	draft, err := ParseResponse(raw, testItem, testNow)
	require.NoError(t, err)

	assert.Equal(t, "Untitled", draft.Title)
	assert.Equal(t, "Untitled", draft.Headline)
	assert.Equal(t, "Only an excerpt.", draft.Excerpt)
	assert.Equal(t, defaultReadMinutes, draft.ReadMinutes)
}

func TestParseResponse_HeadlineFallsBackToTitle(t *testing.T) {
	raw := "---\ntitle: A Title Without Headline\n---\nBody."

	draft, err := ParseResponse(raw, testItem, testNow)
	require.NoError(t, err)
	assert.Equal(t, "A Title Without Headline", draft.Headline)
}

func TestParseResponse_NonNumericReadTime(t *testing.T) {
	raw := "---\ntitle: T\nreadTime: about five\n---\nBody."

	draft, err := ParseResponse(raw, testItem, testNow)
	require.NoError(t, err)
	assert.Equal(t, defaultReadMinutes, draft.ReadMinutes)
}

func TestParseResponse_MissingFenceFails(t *testing.T) {
	_, err := ParseResponse("Just prose, no frontmatter at all.", testItem, testNow)
	assert.Error(t, err)
}

func TestParseResponse_UnclosedFenceFails(t *testing.T) {
	_, err := ParseResponse("---\ntitle: T\nno closing fence", testItem, testNow)
	assert.Error(t, err)
}

func TestParseResponse_LeadingWhitespaceTolerated(t *testing.T) {
	raw := "\n\n---\ntitle: Padded Response\n---\nBody."

	draft, err := ParseResponse(raw, testItem, testNow)
	require.NoError(t, err)
	assert.Equal(t, "Padded Response", draft.Title)
}

func TestPreview_Truncates(t *testing.T) {
	long := strings.Repeat("word ", 200)
	got := preview(long)
	assert.True(t, strings.HasSuffix(got, "..."))
	assert.LessOrEqual(t, len([]rune(got)), previewLen+3)
}
