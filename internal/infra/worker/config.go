// Package worker runs the pipeline on a cron schedule and exposes health
// and metrics endpoints for the scheduler process.
package worker

import (
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"goldbrief/pkg/config"
)

// Config holds the scheduler configuration for the worker process.
type Config struct {
	// CronSchedule is the standard 5-field cron expression for pipeline
	// runs. Default: "0 6 * * *" (daily at 06:00).
	CronSchedule string

	// Timezone is the IANA timezone name the schedule is evaluated in.
	// Default: "America/New_York", matching US market hours.
	Timezone string

	// PipelineTimeout bounds a single pipeline run. Default: 30m.
	PipelineTimeout time.Duration

	// HealthPort serves /health, /health/ready and /metrics.
	// Default: 9091.
	HealthPort int
}

// DefaultConfig returns a Config with production defaults.
func DefaultConfig() Config {
	return Config{
		CronSchedule:    "0 6 * * *",
		Timezone:        "America/New_York",
		PipelineTimeout: 30 * time.Minute,
		HealthPort:      9091,
	}
}

// Validate checks every field and returns the first violation.
func (c *Config) Validate() error {
	if _, err := cron.ParseStandard(c.CronSchedule); err != nil {
		return fmt.Errorf("cron schedule %q: %w", c.CronSchedule, err)
	}
	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("timezone %q: %w", c.Timezone, err)
	}
	if c.PipelineTimeout <= 0 {
		return fmt.Errorf("pipeline timeout must be positive, got %v", c.PipelineTimeout)
	}
	if c.HealthPort < 1024 || c.HealthPort > 65535 {
		return fmt.Errorf("health port must be in [1024, 65535], got %d", c.HealthPort)
	}
	return nil
}

// LoadConfigFromEnv loads worker configuration from environment variables,
// falling back to defaults for unset values.
//
// Environment variables:
//   - CRON_SCHEDULE (default: "0 6 * * *")
//   - WORKER_TIMEZONE (default: "America/New_York")
//   - PIPELINE_TIMEOUT (default: "30m")
//   - WORKER_HEALTH_PORT (default: 9091)
func LoadConfigFromEnv() (Config, error) {
	defaults := DefaultConfig()
	cfg := Config{
		CronSchedule:    config.GetEnvString("CRON_SCHEDULE", defaults.CronSchedule),
		Timezone:        config.GetEnvString("WORKER_TIMEZONE", defaults.Timezone),
		PipelineTimeout: config.GetEnvDuration("PIPELINE_TIMEOUT", defaults.PipelineTimeout),
		HealthPort:      config.GetEnvInt("WORKER_HEALTH_PORT", defaults.HealthPort),
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("worker config: %w", err)
	}
	return cfg, nil
}
