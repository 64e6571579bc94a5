package metrics

import "time"

// RecordFeedFetch records the outcome of a single feed fetch attempt.
// Status should be either "success" or "failure".
func RecordFeedFetch(sourceName string, success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	FeedFetchesTotal.WithLabelValues(sourceName, status).Inc()
}

// RecordFeedItems records the number of items extracted from a source feed.
func RecordFeedItems(sourceName string, count int) {
	if count > 0 {
		FeedItemsTotal.WithLabelValues(sourceName).Add(float64(count))
	}
}

// RecordItemScored records one scored item under its assigned category.
func RecordItemScored(category string) {
	ItemsScoredTotal.WithLabelValues(category).Inc()
}

// RecordItemsSelected records how many items were selected for generation.
func RecordItemsSelected(count int) {
	ItemsSelectedTotal.Add(float64(count))
}

// RecordArticleGenerated records the result of an article generation attempt.
func RecordArticleGenerated(success bool) {
	status := "success"
	if !success {
		status = "failure"
	}
	ArticlesGeneratedTotal.WithLabelValues(status).Inc()
}

// RecordGenerationDuration records the time taken for one generation call.
func RecordGenerationDuration(duration time.Duration) {
	GenerationDuration.Observe(duration.Seconds())
}

// RecordArticleWritten records one article persisted to disk.
func RecordArticleWritten() {
	ArticlesWrittenTotal.Inc()
}

// UpdateReviewQueueDepth updates the review queue depth gauge.
// It should be called after every queue mutation.
func UpdateReviewQueueDepth(depth int) {
	ReviewQueueDepth.Set(float64(depth))
}
