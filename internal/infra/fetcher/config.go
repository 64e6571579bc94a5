// Package fetcher provides optional full-article content fetching.
// When an RSS description is too short to prompt a useful article, the
// source page is fetched and the readable text extracted. The feature is
// disabled by default; with it off, generation prompts use the RSS
// description exactly as fetched.
package fetcher

import (
	"fmt"
	"time"

	"goldbrief/pkg/config"
)

// maxBodySize caps how much of a source page is read.
const maxBodySize = 5 * 1024 * 1024

// Config controls content fetching behavior.
type Config struct {
	// Enabled turns the feature on. Default: false.
	Enabled bool

	// Threshold is the minimum RSS description length (in bytes) below
	// which a full-content fetch is attempted. Default: 600.
	Threshold int

	// Timeout is the per-page fetch timeout. Default: 10s.
	Timeout time.Duration
}

// LoadConfigFromEnv loads content fetch configuration.
//
// Environment variables:
//   - CONTENT_FETCH_ENABLED (default: false)
//   - CONTENT_FETCH_THRESHOLD (default: 600)
//   - CONTENT_FETCH_TIMEOUT (default: "10s")
func LoadConfigFromEnv() (Config, error) {
	cfg := Config{
		Enabled:   config.GetEnvBool("CONTENT_FETCH_ENABLED", false),
		Threshold: config.GetEnvInt("CONTENT_FETCH_THRESHOLD", 600),
		Timeout:   config.GetEnvDuration("CONTENT_FETCH_TIMEOUT", 10*time.Second),
	}
	if cfg.Threshold < 0 {
		return Config{}, fmt.Errorf("content fetch threshold cannot be negative, got %d", cfg.Threshold)
	}
	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("content fetch timeout must be positive, got %v", cfg.Timeout)
	}
	return cfg, nil
}
