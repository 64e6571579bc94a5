// Command pipeline executes one end-to-end run: crawl the configured feeds,
// score and select items, generate articles, and queue them for review.
// It is intended to be invoked from cron, CI, or by hand; the worker command
// wraps the same run in a long-lived scheduler.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/time/rate"

	"goldbrief/internal/config"
	"goldbrief/internal/infra/fetcher"
	"goldbrief/internal/infra/generator"
	"goldbrief/internal/infra/notifier"
	"goldbrief/internal/infra/scraper"
	"goldbrief/internal/infra/store"
	"goldbrief/internal/observability/logging"
	fetchUC "goldbrief/internal/usecase/fetch"
	generateUC "goldbrief/internal/usecase/generate"
	pipelineUC "goldbrief/internal/usecase/pipeline"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	logger := logging.NewLogger()
	slog.SetDefault(logger)

	svc, cfg, err := buildPipeline(logger)
	if err != nil {
		logger.Error("pipeline initialization failed", slog.Any("error", err))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
	defer cancel()

	stats, err := svc.Run(ctx)
	if err != nil {
		logger.Error("pipeline run failed", slog.Any("error", err))
		os.Exit(1)
	}

	fmt.Printf("Run complete: %d fetched, %d selected, %d written (queue: %s)\n",
		stats.Deduped, stats.Selected, stats.Written, cfg.QueuePath)
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
