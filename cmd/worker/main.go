// Command worker runs the pipeline on a cron schedule. It exposes liveness,
// readiness and Prometheus metrics endpoints and shuts down cleanly on
// SIGINT/SIGTERM.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
	"golang.org/x/time/rate"

	"goldbrief/internal/config"
	"goldbrief/internal/infra/fetcher"
	"goldbrief/internal/infra/generator"
	"goldbrief/internal/infra/notifier"
	"goldbrief/internal/infra/scraper"
	"goldbrief/internal/infra/store"
	workerPkg "goldbrief/internal/infra/worker"
	"goldbrief/internal/observability/logging"
	fetchUC "goldbrief/internal/usecase/fetch"
	generateUC "goldbrief/internal/usecase/generate"
	pipelineUC "goldbrief/internal/usecase/pipeline"
)

func main() {
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	workerConfig, err := workerPkg.LoadConfigFromEnv()
	if err != nil {
		logger.Error("failed to load worker configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("worker configuration loaded",
		slog.String("cron_schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone),
		slog.Duration("pipeline_timeout", workerConfig.PipelineTimeout),
		slog.Int("health_port", workerConfig.HealthPort))

	svc, _, err := buildPipeline(logger)
	if err != nil {
		logger.Error("pipeline initialization failed", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	workerMetrics := workerPkg.NewMetrics()

	healthAddr := fmt.Sprintf(":%d", workerConfig.HealthPort)
	healthServer := workerPkg.NewHealthServer(healthAddr, logger)
	go func() {
		if err := healthServer.Start(ctx); err != nil && err != http.ErrServerClosed {
			logger.Error("health server failed", slog.Any("error", err))
		}
	}()

	loc, err := time.LoadLocation(workerConfig.Timezone)
	if err != nil {
		logger.Error("invalid timezone, using UTC",
			slog.String("timezone", workerConfig.Timezone),
			slog.Any("error", err))
		loc = time.UTC
	}

	c := cron.New(cron.WithLocation(loc))
	_, err = c.AddFunc(workerConfig.CronSchedule, func() {
		runPipelineJob(logger, svc, workerConfig, workerMetrics)
	})
	if err != nil {
		logger.Error("failed to add cron job", slog.Any("error", err))
		os.Exit(1)
	}
	c.Start()

	healthServer.SetReady(true)
	logger.Info("worker started",
		slog.String("schedule", workerConfig.CronSchedule),
		slog.String("timezone", workerConfig.Timezone))

	<-ctx.Done()
	logger.Info("shutdown signal received")
	healthServer.SetReady(false)

	stopCtx := c.Stop()
	select {
	case <-stopCtx.Done():
		logger.Info("running jobs finished")
	case <-time.After(workerConfig.PipelineTimeout):
		logger.Warn("timed out waiting for running jobs")
	}
}

// runPipelineJob executes one scheduled run with a timeout and records its
// outcome.
func runPipelineJob(logger *slog.Logger, svc *pipelineUC.Service, cfg workerPkg.Config, m *workerPkg.Metrics) {
	start := time.Now()
	logger.Info("scheduled pipeline run started")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.PipelineTimeout)
	defer cancel()

	stats, err := svc.Run(ctx)
	m.RecordJobDuration(time.Since(start).Seconds())
	if err != nil {
		m.RecordJobRun("failure")
		logger.Error("scheduled pipeline run failed", slog.Any("error", err))
		return
	}

	m.RecordJobRun("success")
	m.RecordArticlesWritten(stats.Written)
	m.RecordLastSuccess()

	logger.Info("scheduled pipeline run completed",
		slog.Int("fetched", stats.Deduped),
		slog.Int("selected", stats.Selected),
		slog.Int("written", stats.Written),
		slog.Duration("duration", stats.Duration))
}

// buildPipeline wires every stage from environment configuration.
func buildPipeline(logger *slog.Logger) (*pipelineUC.Service, *config.PipelineConfig, error) {
	cfg, err := config.LoadPipelineConfig()
	if err != nil {
		return nil, nil, err
	}

	feeds, err := config.LoadFeeds(cfg.FeedsPath)
	if err != nil {
		return nil, nil, err
	}

	fetchSvc, err := fetchUC.NewService(feeds, scraper.NewRSSFetcher(&http.Client{Timeout: 30 * time.Second}), cfg.FreshnessWindow)
	if err != nil {
		return nil, nil, err
	}

	gen, err := newGenerator()
	if err != nil {
		return nil, nil, err
	}

	var genOpts []generateUC.Option
	fetchCfg, err := fetcher.LoadConfigFromEnv()
	if err != nil {
		return nil, nil, err
	}
	if fetchCfg.Enabled {
		genOpts = append(genOpts, generateUC.WithContentFetcher(fetcher.NewReadabilityFetcher(fetchCfg)))
		logger.Info("content fetching enabled", slog.Int("threshold", fetchCfg.Threshold))
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.GenerateDelay > 0 {
		limiter = rate.NewLimiter(rate.Every(cfg.GenerateDelay), 1)
	}
	genSvc := generateUC.NewService(gen, limiter, genOpts...)

	var n notifier.Notifier = notifier.NewNoOpNotifier()
	if slackCfg := notifier.LoadSlackConfig(logger); slackCfg.Enabled {
		n = notifier.NewSlackNotifier(slackCfg)
		logger.Info("Slack notifications enabled")
	}

	svc := pipelineUC.NewService(
		fetchSvc,
		genSvc,
		store.NewContentStore(cfg.ContentDir),
		store.NewQueue(cfg.QueuePath),
		n,
		cfg.MinScore,
		cfg.MaxBatch,
	)
	return svc, cfg, nil
}

// newGenerator selects the article generator from GENERATOR_TYPE: "claude"
// (default), "openai", or "noop" for local runs without an API key.
func newGenerator() (generateUC.Generator, error) {
	switch generatorType := os.Getenv("GENERATOR_TYPE"); generatorType {
	case "", "claude":
		apiKey := os.Getenv("ANTHROPIC_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY is required for the claude generator")
		}
		return generator.NewClaude(apiKey)
	case "openai":
		apiKey := os.Getenv("OPENAI_API_KEY")
		if apiKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY is required for the openai generator")
		}
		return generator.NewOpenAI(apiKey)
	case "noop":
		return generator.Noop{}, nil
	default:
		return nil, fmt.Errorf("unknown GENERATOR_TYPE %q", generatorType)
	}
}
