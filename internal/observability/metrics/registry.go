// Package metrics provides centralized Prometheus metrics for the pipeline.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Feed metrics track crawling activity per source.
var (
	// FeedFetchesTotal counts feed fetch attempts by source and status
	FeedFetchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_fetches_total",
			Help: "Total number of feed fetch attempts",
		},
		[]string{"source", "status"},
	)

	// FeedItemsTotal counts items extracted from feeds by source
	FeedItemsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "feed_items_total",
			Help: "Total number of items extracted from feeds",
		},
		[]string{"source"},
	)
)

// Scoring metrics track the relevance scorer's output.
var (
	// ItemsScoredTotal counts scored items by assigned category
	ItemsScoredTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "items_scored_total",
			Help: "Total number of items scored, by category",
		},
		[]string{"category"},
	)

	// ItemsSelectedTotal counts items that survived filtering and selection
	ItemsSelectedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "items_selected_total",
			Help: "Total number of items selected for generation",
		},
	)
)

// Generation and writing metrics.
var (
	// ArticlesGeneratedTotal counts generation attempts by status
	ArticlesGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_generated_total",
			Help: "Total number of article generation attempts",
		},
		[]string{"status"},
	)

	// GenerationDuration measures the duration of a single generation call
	GenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "article_generation_duration_seconds",
			Help:    "Duration of a single article generation call",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	// ArticlesWrittenTotal counts articles persisted to the content directory
	ArticlesWrittenTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_written_total",
			Help: "Total number of articles written to the content directory",
		},
	)

	// ReviewQueueDepth tracks the current length of the review queue
	ReviewQueueDepth = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "review_queue_depth",
			Help: "Current number of entries in the review queue",
		},
	)
)
