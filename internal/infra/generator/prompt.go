package generator

import (
	"fmt"

	"goldbrief/internal/domain/entity"
)

// Author is the fixed editorial identity stamped on every generated article.
const Author = "GoldBrief Editorial Team"

// categoryGuidance carries the per-category prompt guidance and the static
// site assets attached to drafts in that category. The mapping is constant
// data; there is no dynamic lookup.
type categoryGuidance struct {
	// angle is appended to the prompt to steer the editorial focus.
	angle string

	// relatedGuides are site-relative evergreen guide paths.
	relatedGuides []string

	// featuredImage and featuredImageAlt are the stock header asset.
	featuredImage    string
	featuredImageAlt string
}

var guidanceByCategory = map[entity.Category]categoryGuidance{
	entity.CategoryFed: {
		angle: "Focus on what the Fed's move means for real interest rates and why retirees holding cash or bonds should care.",
		relatedGuides: []string{
			"/guides/gold-ira-rollover",
			"/guides/how-the-fed-affects-gold",
		},
		featuredImage:    "/images/news/federal-reserve.jpg",
		featuredImageAlt: "Federal Reserve building facade",
	},
	entity.CategoryGold: {
		angle: "Focus on gold's role as a long-horizon store of value rather than day-trading the price move.",
		relatedGuides: []string{
			"/guides/gold-ira-rollover",
			"/guides/best-gold-ira-companies",
		},
		featuredImage:    "/images/news/gold-bars.jpg",
		featuredImageAlt: "Stacked gold bullion bars",
	},
	entity.CategorySilver: {
		angle: "Focus on the industrial demand story (solar, EVs, electronics) and silver's dual monetary-industrial character.",
		relatedGuides: []string{
			"/guides/silver-ira-guide",
			"/guides/gold-vs-silver",
		},
		featuredImage:    "/images/news/silver-coins.jpg",
		featuredImageAlt: "American Silver Eagle coins",
	},
	entity.CategoryEconomy: {
		angle: "Focus on what the data point signals for inflation-adjusted savings and portfolio diversification.",
		relatedGuides: []string{
			"/guides/inflation-and-your-retirement",
			"/guides/gold-ira-rollover",
		},
		featuredImage:    "/images/news/economy-charts.jpg",
		featuredImageAlt: "Financial charts on a trading screen",
	},
	entity.CategoryRetirement: {
		angle: "Focus on concrete account-level implications: 401k allocation, rollover windows, required distributions.",
		relatedGuides: []string{
			"/guides/401k-to-gold-ira",
			"/guides/retirement-diversification",
		},
		featuredImage:    "/images/news/retirement-planning.jpg",
		featuredImageAlt: "Couple reviewing retirement paperwork",
	},
	entity.CategoryCrypto: {
		angle: "Focus on contrasting crypto volatility with physical metals for the risk-averse retirement saver.",
		relatedGuides: []string{
			"/guides/gold-vs-bitcoin",
			"/guides/gold-ira-rollover",
		},
		featuredImage:    "/images/news/crypto-gold.jpg",
		featuredImageAlt: "Physical bitcoin token beside gold coins",
	},
	entity.CategoryWeekly: {
		angle: "Focus on synthesizing the week's precious-metals developments into one narrative for long-term holders.",
		relatedGuides: []string{
			"/guides/gold-ira-rollover",
			"/guides/precious-metals-outlook",
		},
		featuredImage:    "/images/news/weekly-recap.jpg",
		featuredImageAlt: "Newspaper stack with market pages",
	},
}

// guidanceFor returns the guidance for a category, falling back to economy
// for anything unrecognized.
func guidanceFor(cat entity.Category) categoryGuidance {
	if g, ok := guidanceByCategory[cat]; ok {
		return g
	}
	return guidanceByCategory[entity.CategoryEconomy]
}

// BuildPrompt constructs the fixed-persona generation prompt for one scored
// item. The persona and structure are deliberately rigid so that the response
// parser can rely on the frontmatter contract.
func BuildPrompt(item entity.ScoredItem) string {
	g := guidanceFor(item.Category)

	return fmt.Sprintf(`You are a veteran precious-metals market analyst writing for GoldBrief, a site that helps Americans protect retirement savings with physical gold and silver. Your voice is direct, skeptical of mainstream financial media, and always grounded in what a story means for a retirement saver, never hype.

Write a news analysis article reacting to this story:

Headline: %s
Summary: %s
Category: %s

Editorial angle: %s

Structural requirements, in order:
1. An opening hook that makes the reader feel the stakes in two sentences.
2. A "What the mainstream coverage misses" section taking a contrarian but factual angle.
3. A "What this means for your retirement" section.
4. A short actionable-advice section with concrete next steps.

Respond in EXACTLY this format:
---
title: Article title (60-80 characters, no colon)
headline: Short punchy version (under 50 characters)
excerpt: One-sentence summary for listing pages (under 160 characters)
readTime: estimated minutes to read, integer
---
The article body in markdown. 600-900 words. No H1; start sections with H2.`,
		item.Title, item.Description, item.Category, g.angle)
}
