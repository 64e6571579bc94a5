// Package score assigns relevance scores and topical categories to feed
// items using weighted keyword matching, and applies the filtering,
// deduplication, and diversity-selection policy that decides which items
// reach the article generator.
package score

import "goldbrief/internal/domain/entity"

// Keyword tables are deliberately kept as in-code constant data rather than
// external configuration: they are coupled to the scoring algorithm and must
// be versioned together with it.
//
// Relevance tiers and the category tables are maintained as separate lists.
// Several terms appear in both ("federal reserve", "gold"); the relevance
// score and the category decision are independent computations.

// Relevance keyword tiers. Every substring hit adds the tier weight.
const (
	weightHigh   = 3.0
	weightMedium = 1.5
	weightLow    = 0.5
)

var highPriorityKeywords = []string{
	"gold price",
	"silver price",
	"federal reserve",
	"fed",
	"interest rate",
	"inflation",
	"precious metals",
	"gold ira",
	"rate cut",
	"rate hike",
}

var mediumPriorityKeywords = []string{
	"gold",
	"silver",
	"retirement",
	"401k",
	"ira",
	"recession",
	"treasury",
	"dollar",
	"tariff",
	"central bank",
	"bullion",
	"safe haven",
}

var lowPriorityKeywords = []string{
	"invest",
	"market",
	"economy",
	"stocks",
	"mining",
	"commodities",
	"portfolio",
	"savings",
}

// categoryKeywords drives classification. Each substring hit adds +2 to that
// category's score. The sets are disjoint across categories.
var categoryKeywords = map[entity.Category][]string{
	entity.CategoryFed: {
		"federal reserve",
		"fed",
		"fomc",
		"interest rate",
		"rate cut",
		"rate hike",
		"powell",
		"monetary policy",
	},
	entity.CategoryGold: {
		"gold",
		"bullion",
		"gold ira",
		"krugerrand",
	},
	entity.CategorySilver: {
		"silver",
		"silver ira",
		"silver eagle",
	},
	entity.CategoryEconomy: {
		"inflation",
		"recession",
		"gdp",
		"economy",
		"dollar",
		"tariff",
		"stock market",
		"treasury",
		"jobs report",
	},
	entity.CategoryRetirement: {
		"retirement",
		"401k",
		"pension",
		"social security",
		"nest egg",
	},
	entity.CategoryCrypto: {
		"bitcoin",
		"crypto",
		"ethereum",
		"stablecoin",
		"digital asset",
	},
	entity.CategoryWeekly: {
		"weekly",
		"week in review",
		"roundup",
		"recap",
		"this week",
	},
}

// industrialKeywords boost the silver category when they co-occur with the
// literal substring "silver". Industrial demand stories are the site's
// strongest silver angle, so each hit adds +3 on top of the base match.
var industrialKeywords = []string{
	"solar",
	"ev",
	"electric vehicle",
	"5g",
	"semiconductor",
	"electronics",
}
