// Package entity defines the core domain entities for the content pipeline.
// It contains the fundamental business objects such as FeedItem, ScoredItem,
// and ArticleDraft, along with their validation rules and domain errors.
package entity

import "time"

// Category is the fixed topical classification assigned to each news item.
type Category string

// Categories recognized by the scorer. Classification that produces a tie or
// no match at all falls back to CategoryEconomy.
const (
	CategoryFed        Category = "fed"
	CategoryGold       Category = "gold"
	CategorySilver     Category = "silver"
	CategoryEconomy    Category = "economy"
	CategoryRetirement Category = "retirement"
	CategoryCrypto     Category = "crypto"
	CategoryWeekly     Category = "weekly"
)

// Categories lists every valid category in a fixed evaluation order.
var Categories = []Category{
	CategoryFed,
	CategoryGold,
	CategorySilver,
	CategoryEconomy,
	CategoryRetirement,
	CategoryCrypto,
	CategoryWeekly,
}

// Valid reports whether c is one of the recognized categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// FeedItem represents a single entry parsed out of a source feed.
// Title and description are already HTML-stripped and whitespace-normalized.
// Items with an empty title or link never leave the fetcher.
type FeedItem struct {
	Title       string
	Link        string
	Description string
	SourceName  string
	PublishedAt time.Time
}

// ScoredItem is a FeedItem extended with the relevance score, the winning
// category, and the ordered list of keywords that contributed to the score.
// MatchedKeywords may contain duplicates when a keyword appears in more than
// one weight tier.
type ScoredItem struct {
	FeedItem
	RelevanceScore  float64
	Category        Category
	MatchedKeywords []string
}
