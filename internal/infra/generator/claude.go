package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/google/uuid"

	"goldbrief/internal/domain/entity"
)

// Claude generates articles using Anthropic's Claude API.
type Claude struct {
	client  anthropic.Client
	config  Config
	metrics MetricsRecorder
	now     func() time.Time
}

// NewClaude creates a new Claude generator with the given API key.
func NewClaude(apiKey string) (*Claude, error) {
	cfg, err := LoadClaudeConfig()
	if err != nil {
		return nil, err
	}

	slog.Info("initialized claude generator",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens),
		slog.Duration("timeout", cfg.Timeout))

	return &Claude{
		client:  anthropic.NewClient(option.WithAPIKey(apiKey)),
		config:  *cfg,
		metrics: PrometheusRecorder{},
		now:     time.Now,
	}, nil
}

// Generate produces one ArticleDraft for the given scored item.
// Any failure (API error, empty response, unparsable frontmatter) is logged
// with diagnostic context and returned as an error; the batch driver absorbs
// per-item failures.
func (c *Claude) Generate(ctx context.Context, item entity.ScoredItem) (*entity.ArticleDraft, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	requestID := uuid.New().String()
	prompt := BuildPrompt(item)

	slog.InfoContext(ctx, "starting article generation",
		slog.String("request_id", requestID),
		slog.String("title", item.Title),
		slog.String("category", string(item.Category)),
		slog.Float64("score", item.RelevanceScore))

	start := time.Now()
	message, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(c.config.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(
				anthropic.NewTextBlock(prompt),
			),
		},
	})
	duration := time.Since(start)
	c.metrics.RecordDuration(duration)

	if err != nil {
		c.metrics.RecordOutcome(false)
		slog.ErrorContext(ctx, "article generation failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("claude api error: %w", err)
	}

	if len(message.Content) == 0 {
		c.metrics.RecordOutcome(false)
		slog.ErrorContext(ctx, "claude api returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return nil, fmt.Errorf("claude api returned empty response")
	}

	textBlock, ok := message.Content[0].AsAny().(anthropic.TextBlock)
	if !ok {
		c.metrics.RecordOutcome(false)
		slog.ErrorContext(ctx, "claude api returned non-text content block",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return nil, fmt.Errorf("claude api returned unexpected response type")
	}

	draft, err := ParseResponse(textBlock.Text, item, c.now())
	if err != nil {
		c.metrics.RecordOutcome(false)
		slog.ErrorContext(ctx, "failed to parse generation response",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
			slog.String("response_preview", preview(textBlock.Text)))
		return nil, fmt.Errorf("parse generation response: %w", err)
	}

	c.metrics.RecordOutcome(true)
	slog.InfoContext(ctx, "article generation completed",
		slog.String("request_id", requestID),
		slog.String("article_title", draft.Title),
		slog.Int("body_length", len(draft.Body)),
		slog.Duration("duration", duration))

	return draft, nil
}
