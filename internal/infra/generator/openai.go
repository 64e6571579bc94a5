package generator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	openai "github.com/sashabaranov/go-openai"

	"goldbrief/internal/domain/entity"
)

// OpenAI generates articles using the OpenAI chat completion API.
// It is the alternate provider, selected with GENERATOR_TYPE=openai.
type OpenAI struct {
	client  *openai.Client
	config  Config
	metrics MetricsRecorder
	now     func() time.Time
}

// NewOpenAI creates a new OpenAI generator with the given API key.
func NewOpenAI(apiKey string) (*OpenAI, error) {
	cfg, err := LoadOpenAIConfig()
	if err != nil {
		return nil, err
	}

	slog.Info("initialized openai generator",
		slog.String("model", cfg.Model),
		slog.Int("max_tokens", cfg.MaxTokens),
		slog.Duration("timeout", cfg.Timeout))

	return &OpenAI{
		client:  openai.NewClient(apiKey),
		config:  *cfg,
		metrics: PrometheusRecorder{},
		now:     time.Now,
	}, nil
}

// Generate produces one ArticleDraft for the given scored item.
// Failure semantics match the Claude provider: log, record metrics, return
// the error for the batch driver to absorb.
func (o *OpenAI) Generate(ctx context.Context, item entity.ScoredItem) (*entity.ArticleDraft, error) {
	ctx, cancel := context.WithTimeout(ctx, o.config.Timeout)
	defer cancel()

	requestID := uuid.New().String()

	start := time.Now()
	resp, err := o.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     o.config.Model,
		MaxTokens: o.config.MaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: BuildPrompt(item),
			},
		},
	})
	duration := time.Since(start)
	o.metrics.RecordDuration(duration)

	if err != nil {
		o.metrics.RecordOutcome(false)
		slog.ErrorContext(ctx, "article generation failed",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("openai api error: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		o.metrics.RecordOutcome(false)
		slog.ErrorContext(ctx, "openai api returned empty response",
			slog.String("request_id", requestID),
			slog.Duration("duration", duration))
		return nil, fmt.Errorf("openai api returned empty response")
	}

	raw := resp.Choices[0].Message.Content
	draft, err := ParseResponse(raw, item, o.now())
	if err != nil {
		o.metrics.RecordOutcome(false)
		slog.ErrorContext(ctx, "failed to parse generation response",
			slog.String("request_id", requestID),
			slog.String("error", err.Error()),
			slog.String("response_preview", preview(raw)))
		return nil, fmt.Errorf("parse generation response: %w", err)
	}

	o.metrics.RecordOutcome(true)
	return draft, nil
}
