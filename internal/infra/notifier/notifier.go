// Package notifier reports pipeline run results to an external channel.
// The Notifier interface lets different channels (Slack, none) be swapped
// through dependency injection; notification failures are always best-effort
// and never affect the run outcome.
package notifier

import (
	"context"
	"time"
)

// RunReport summarizes one completed pipeline run.
type RunReport struct {
	// FetchedItems is the merged item count across all feeds after
	// dedupe and freshness filtering.
	FetchedItems int

	// SelectedItems is the number of items picked for generation.
	SelectedItems int

	// WrittenArticles is the number of articles persisted to the
	// content directory and queued for review.
	WrittenArticles int

	// Titles lists the written articles, in write order.
	Titles []string

	// Duration is the wall time of the whole run.
	Duration time.Duration
}

// Notifier delivers a run report to a notification channel.
type Notifier interface {
	// NotifyRun sends a summary of a completed run. Implementations log
	// failures themselves; callers treat a returned error as advisory.
	NotifyRun(ctx context.Context, report RunReport) error
}
