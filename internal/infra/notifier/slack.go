package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

// Slack Block Kit limits.
const (
	maxSectionTextLength = 3000
	maxFallbackLength    = 150

	truncationSuffix = "..."
)

// SlackConfig contains configuration for Slack webhook notifications.
type SlackConfig struct {
	// Enabled indicates whether Slack notifications are enabled.
	Enabled bool

	// WebhookURL is the Slack Incoming Webhook URL.
	WebhookURL string

	// Timeout is the HTTP request timeout for webhook calls.
	Timeout time.Duration
}

// LoadSlackConfig loads Slack configuration from environment variables.
// A malformed webhook URL disables notifications with a warning rather than
// failing startup.
//
// Environment variables:
//   - SLACK_ENABLED: enables Slack notifications (default: false)
//   - SLACK_WEBHOOK_URL: Slack webhook URL (required if enabled)
func LoadSlackConfig(logger *slog.Logger) SlackConfig {
	enabled := os.Getenv("SLACK_ENABLED") == "true"
	webhookURL := os.Getenv("SLACK_WEBHOOK_URL")

	if !enabled {
		return SlackConfig{Enabled: false}
	}

	if webhookURL == "" {
		logger.Warn("Slack webhook URL is empty, disabling notifications")
		return SlackConfig{Enabled: false}
	}

	u, err := url.Parse(webhookURL)
	if err != nil {
		logger.Warn("invalid Slack webhook URL format, disabling notifications", slog.Any("error", err))
		return SlackConfig{Enabled: false}
	}
	if u.Scheme != "https" {
		logger.Warn("Slack webhook URL must use HTTPS, disabling notifications")
		return SlackConfig{Enabled: false}
	}
	if u.Host != "hooks.slack.com" {
		logger.Warn("invalid Slack webhook host, disabling notifications", slog.String("host", u.Host))
		return SlackConfig{Enabled: false}
	}
	if !strings.HasPrefix(u.Path, "/services/") {
		logger.Warn("invalid Slack webhook path, disabling notifications", slog.String("path", u.Path))
		return SlackConfig{Enabled: false}
	}

	return SlackConfig{
		Enabled:    true,
		WebhookURL: webhookURL,
		Timeout:    30 * time.Second,
	}
}

// SlackNotifier sends run reports to Slack via Incoming Webhook.
// Each report is sent exactly once; delivery failures are logged and
// returned, never retried.
type SlackNotifier struct {
	config     SlackConfig
	httpClient *http.Client
}

// NewSlackNotifier creates a SlackNotifier with the specified configuration.
func NewSlackNotifier(config SlackConfig) *SlackNotifier {
	return &SlackNotifier{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// slackWebhookPayload is the JSON payload sent to the Slack webhook.
type slackWebhookPayload struct {
	Text   string       `json:"text"`
	Blocks []slackBlock `json:"blocks"`
}

type slackBlock struct {
	Type     string            `json:"type"`
	Text     *slackTextObject  `json:"text,omitempty"`
	Elements []slackTextObject `json:"elements,omitempty"`
}

type slackTextObject struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

// buildPayload creates a Block Kit payload from a run report: a section
// block with the run counts and article titles, and a context block with the
// run duration.
func (s *SlackNotifier) buildPayload(report RunReport) slackWebhookPayload {
	fallback := fmt.Sprintf("GoldBrief run: %d articles pending review", report.WrittenArticles)
	if len(fallback) > maxFallbackLength {
		fallback = fallback[:maxFallbackLength-len(truncationSuffix)] + truncationSuffix
	}

	var b strings.Builder
	fmt.Fprintf(&b, "*GoldBrief pipeline run complete*\n\n")
	fmt.Fprintf(&b, "Fetched %d items, selected %d, wrote %d articles for review.",
		report.FetchedItems, report.SelectedItems, report.WrittenArticles)
	for _, title := range report.Titles {
		fmt.Fprintf(&b, "\n• %s", title)
	}

	sectionText := b.String()
	if len(sectionText) > maxSectionTextLength {
		sectionText = sectionText[:maxSectionTextLength-len(truncationSuffix)] + truncationSuffix
	}

	return slackWebhookPayload{
		Text: fallback,
		Blocks: []slackBlock{
			{
				Type: "section",
				Text: &slackTextObject{Type: "mrkdwn", Text: sectionText},
			},
			{
				Type: "context",
				Elements: []slackTextObject{
					{Type: "mrkdwn", Text: fmt.Sprintf("completed in %s", report.Duration.Round(time.Second))},
				},
			},
		},
	}
}

// NotifyRun sends a run report to the configured webhook.
func (s *SlackNotifier) NotifyRun(ctx context.Context, report RunReport) error {
	payload, err := json.Marshal(s.buildPayload(report))
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.WebhookURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("create http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		slog.Error("Slack notification failed", slog.Any("error", err))
		return fmt.Errorf("execute http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Error("Slack notification rejected",
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(body)))
		return fmt.Errorf("slack webhook returned status %d: %s", resp.StatusCode, string(body))
	}

	slog.Info("Slack notification sent",
		slog.Int("articles", report.WrittenArticles))
	return nil
}
