package config

import (
	"fmt"
	"time"

	"goldbrief/pkg/config"
)

// PipelineConfig holds the tuning parameters for a pipeline run.
// All values are loaded from environment variables with defaults that match
// the production content site.
type PipelineConfig struct {
	// FeedsPath is the YAML file listing the feeds to crawl.
	FeedsPath string

	// ContentDir is the directory where article .mdx files are written.
	ContentDir string

	// QueuePath is the JSON file holding the pending-review queue.
	QueuePath string

	// FreshnessWindow is how far back from now a feed item may be published
	// and still enter the pipeline. Default: 24h.
	FreshnessWindow time.Duration

	// MinScore is the minimum relevance score an item needs to qualify for
	// generation. Range 0-10. Default: 5.0.
	MinScore float64

	// MaxBatch is the maximum number of articles generated per run.
	// Default: 3.
	MaxBatch int

	// GenerateDelay is the pause between consecutive generation calls,
	// a throttling policy for the upstream API. Default: 3s.
	GenerateDelay time.Duration
}

// LoadPipelineConfig loads the pipeline configuration from environment
// variables and validates it.
//
// Environment variables:
//   - FEEDS_FILE: feed list path (default: "config/feeds.yaml")
//   - CONTENT_DIR: article output directory (default: "content/news")
//   - REVIEW_QUEUE_FILE: queue file path (default: "content/review-queue.json")
//   - FRESHNESS_WINDOW: trailing publication window (default: "24h")
//   - MIN_RELEVANCE_SCORE: generation threshold (default: 5.0)
//   - MAX_ARTICLES_PER_RUN: batch cap (default: 3)
//   - GENERATE_DELAY: inter-item pacing (default: "3s")
func LoadPipelineConfig() (*PipelineConfig, error) {
	cfg := &PipelineConfig{
		FeedsPath:       config.GetEnvString("FEEDS_FILE", "config/feeds.yaml"),
		ContentDir:      config.GetEnvString("CONTENT_DIR", "content/news"),
		QueuePath:       config.GetEnvString("REVIEW_QUEUE_FILE", "content/review-queue.json"),
		FreshnessWindow: config.GetEnvDuration("FRESHNESS_WINDOW", 24*time.Hour),
		MinScore:        config.GetEnvFloat("MIN_RELEVANCE_SCORE", 5.0),
		MaxBatch:        config.GetEnvInt("MAX_ARTICLES_PER_RUN", 3),
		GenerateDelay:   config.GetEnvDuration("GENERATE_DELAY", 3*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid pipeline configuration: %w", err)
	}
	return cfg, nil
}

// Validate checks the configuration values and returns an error describing
// the first invalid field.
func (c *PipelineConfig) Validate() error {
	if c.FeedsPath == "" {
		return fmt.Errorf("feeds path cannot be empty")
	}
	if c.ContentDir == "" {
		return fmt.Errorf("content directory cannot be empty")
	}
	if c.QueuePath == "" {
		return fmt.Errorf("queue path cannot be empty")
	}
	if c.FreshnessWindow <= 0 {
		return fmt.Errorf("freshness window must be positive, got %v", c.FreshnessWindow)
	}
	if c.MinScore < 0 || c.MinScore > 10 {
		return fmt.Errorf("minimum score must be within [0, 10], got %g", c.MinScore)
	}
	if c.MaxBatch <= 0 {
		return fmt.Errorf("max articles per run must be positive, got %d", c.MaxBatch)
	}
	if c.GenerateDelay < 0 {
		return fmt.Errorf("generate delay cannot be negative, got %v", c.GenerateDelay)
	}
	return nil
}
