// Package fetch provides the use case for crawling the configured news feeds.
// It merges all feeds' items into one time-filtered, date-sorted collection
// for the scoring stage. A single feed failure never aborts the batch.
package fetch

import "errors"

// Sentinel errors for fetch use case operations.
var (
	// ErrNoFeeds indicates that the service was constructed without any
	// feed descriptors.
	ErrNoFeeds = errors.New("no feeds configured")
)
