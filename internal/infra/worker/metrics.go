package worker

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks cron job execution for the worker process.
type Metrics struct {
	// JobRunsTotal counts pipeline runs by status (success/failure).
	JobRunsTotal *prometheus.CounterVec

	// JobDurationSeconds is a histogram of pipeline run durations.
	JobDurationSeconds prometheus.Histogram

	// JobArticlesWrittenTotal counts articles written across all runs.
	JobArticlesWrittenTotal prometheus.Counter

	// JobLastSuccessTimestamp is the Unix time of the last successful run.
	JobLastSuccessTimestamp prometheus.Gauge
}

// NewMetrics creates and registers the worker metrics.
func NewMetrics() *Metrics {
	return &Metrics{
		JobRunsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "worker_cron_job_runs_total",
			Help: "Total number of cron job runs by status (success/failure)",
		}, []string{"status"}),

		JobDurationSeconds: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "worker_cron_job_duration_seconds",
			Help:    "Duration of cron job execution in seconds",
			Buckets: []float64{1, 5, 30, 60, 300, 900, 1800},
		}),

		JobArticlesWrittenTotal: promauto.NewCounter(prometheus.CounterOpts{
			Name: "worker_cron_job_articles_written_total",
			Help: "Total number of articles written across all cron job runs",
		}),

		JobLastSuccessTimestamp: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "worker_cron_job_last_success_timestamp",
			Help: "Unix timestamp of the last successful cron job run",
		}),
	}
}

// RecordJobRun increments the run counter for the given status.
func (m *Metrics) RecordJobRun(status string) {
	m.JobRunsTotal.WithLabelValues(status).Inc()
}

// RecordJobDuration observes one run's duration in seconds.
func (m *Metrics) RecordJobDuration(seconds float64) {
	m.JobDurationSeconds.Observe(seconds)
}

// RecordArticlesWritten adds one run's written-article count to the total.
func (m *Metrics) RecordArticlesWritten(count int) {
	m.JobArticlesWrittenTotal.Add(float64(count))
}

// RecordLastSuccess stamps the last successful run at the current time.
func (m *Metrics) RecordLastSuccess() {
	m.JobLastSuccessTimestamp.SetToCurrentTime()
}
