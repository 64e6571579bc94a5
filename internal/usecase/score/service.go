package score

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"goldbrief/internal/domain/entity"
	"goldbrief/internal/observability/metrics"
)

// maxScore caps the relevance score regardless of how many keywords match.
const maxScore = 10.0

// dedupeKeyLen is how many leading characters of the normalized title
// participate in duplicate detection.
const dedupeKeyLen = 50

// ScoreItem computes the relevance score and category for a single item.
// The score is a weighted sum of keyword-tier substring matches over the
// lower-cased title and description, clamped to [0, 10] and rounded to one
// decimal place. Every matching keyword is recorded, including a term that
// hits in more than one tier.
func ScoreItem(item entity.FeedItem) entity.ScoredItem {
	text := strings.ToLower(item.Title + " " + item.Description)

	var (
		total   float64
		matched []string
	)
	tiers := []struct {
		keywords []string
		weight   float64
	}{
		{highPriorityKeywords, weightHigh},
		{mediumPriorityKeywords, weightMedium},
		{lowPriorityKeywords, weightLow},
	}
	for _, tier := range tiers {
		for _, kw := range tier.keywords {
			if strings.Contains(text, kw) {
				total += tier.weight
				matched = append(matched, kw)
			}
		}
	}

	if total > maxScore {
		total = maxScore
	}
	total = math.Round(total*10) / 10

	return entity.ScoredItem{
		FeedItem:        item,
		RelevanceScore:  total,
		Category:        categorize(text),
		MatchedKeywords: matched,
	}
}

// ScoreAll scores every item and records per-category metrics.
func ScoreAll(items []entity.FeedItem) []entity.ScoredItem {
	scored := make([]entity.ScoredItem, 0, len(items))
	for _, item := range items {
		s := ScoreItem(item)
		metrics.RecordItemScored(string(s.Category))
		scored = append(scored, s)
	}
	return scored
}

// categorize picks the category with the strictly highest keyword score.
// Each category keyword hit adds +2. The silver category additionally gains
// +3 for each industrial keyword that co-occurs with the literal substring
// "silver". A tie or an all-zero result defaults to economy.
func categorize(text string) entity.Category {
	best := entity.CategoryEconomy
	bestScore := 0
	tied := false

	for _, cat := range entity.Categories {
		s := 0
		for _, kw := range categoryKeywords[cat] {
			if strings.Contains(text, kw) {
				s += 2
			}
		}
		if cat == entity.CategorySilver && strings.Contains(text, "silver") {
			for _, kw := range industrialKeywords {
				if strings.Contains(text, kw) {
					s += 3
				}
			}
		}

		if s > bestScore {
			best = cat
			bestScore = s
			tied = false
		} else if s == bestScore && s > 0 {
			tied = true
		}
	}

	if bestScore == 0 || tied {
		return entity.CategoryEconomy
	}
	return best
}

// Dedupe removes near-duplicate items, keeping the first occurrence and
// preserving order. Two items are duplicates when the first 50 characters of
// their lower-cased, non-alphanumeric-stripped titles match. Deduplicating
// an already-deduplicated list yields the same list.
func Dedupe(items []entity.FeedItem) []entity.FeedItem {
	seen := make(map[string]struct{}, len(items))
	out := make([]entity.FeedItem, 0, len(items))
	for _, item := range items {
		key := dedupeKey(item.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	return out
}

func dedupeKey(title string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	key := []rune(b.String())
	if len(key) > dedupeKeyLen {
		key = key[:dedupeKeyLen]
	}
	return string(key)
}

// SelectTop applies the threshold filter and the diversity-selection policy:
//
//  1. The single highest-scoring silver item is included first whenever any
//     silver item exists in the scored set, even when its score is below the
//     threshold. Silver coverage is guaranteed per batch; a plain
//     top-N-by-score cut would starve the category for days at a time.
//  2. Remaining slots fill with non-silver items at or above minScore, in
//     descending score order.
//  3. Slots still open take further silver items, descending from the
//     second-highest.
//  4. The selection is re-sorted descending by score and truncated to
//     maxBatch.
func SelectTop(items []entity.ScoredItem, minScore float64, maxBatch int) []entity.ScoredItem {
	if maxBatch <= 0 || len(items) == 0 {
		return nil
	}

	sorted := make([]entity.ScoredItem, len(items))
	copy(sorted, items)
	sortByScoreDesc(sorted)

	var silver []entity.ScoredItem
	for _, item := range sorted {
		if item.Category == entity.CategorySilver {
			silver = append(silver, item)
		}
	}

	selected := make([]entity.ScoredItem, 0, maxBatch)
	if len(silver) > 0 {
		selected = append(selected, silver[0])
	}

	for _, item := range sorted {
		if len(selected) >= maxBatch {
			break
		}
		if item.Category == entity.CategorySilver {
			continue
		}
		if item.RelevanceScore < minScore {
			continue
		}
		selected = append(selected, item)
	}

	for i := 1; i < len(silver) && len(selected) < maxBatch; i++ {
		selected = append(selected, silver[i])
	}

	sortByScoreDesc(selected)
	if len(selected) > maxBatch {
		selected = selected[:maxBatch]
	}

	metrics.RecordItemsSelected(len(selected))
	return selected
}

func sortByScoreDesc(items []entity.ScoredItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].RelevanceScore > items[j].RelevanceScore
	})
}
