package generator

import (
	"time"

	"goldbrief/internal/observability/metrics"
)

// MetricsRecorder records generation outcomes. Providers accept the
// interface so tests can run without touching the process-wide registry.
type MetricsRecorder interface {
	// RecordOutcome records whether a generation attempt succeeded.
	RecordOutcome(success bool)

	// RecordDuration records how long a single generation call took.
	RecordDuration(d time.Duration)
}

// PrometheusRecorder forwards generation metrics to the central registry.
type PrometheusRecorder struct{}

func (PrometheusRecorder) RecordOutcome(success bool) {
	metrics.RecordArticleGenerated(success)
}

func (PrometheusRecorder) RecordDuration(d time.Duration) {
	metrics.RecordGenerationDuration(d)
}

// NoopRecorder discards all metrics.
type NoopRecorder struct{}

func (NoopRecorder) RecordOutcome(bool)           {}
func (NoopRecorder) RecordDuration(time.Duration) {}
