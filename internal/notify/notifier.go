package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gagni555/course-content-to-study-material-generator/constants"
)

// Alert is the out-of-band operator notification for critical failures.
type Alert struct {
	JobID     uuid.UUID       `json:"job_id"`
	Stage     constants.Stage `json:"stage"`
	Error     string          `json:"error"`
	Timestamp time.Time       `json:"timestamp"`
}

// Notifier delivers critical-severity alerts to operators.
type Notifier interface {
	Alert(ctx context.Context, a Alert) error
}

// NopNotifier drops alerts after logging them. Used when no webhook is
// configured.
type NopNotifier struct {
	logger *slog.Logger
}

func NewNopNotifier(logger *slog.Logger) *NopNotifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &NopNotifier{logger: logger}
}

func (n *NopNotifier) Alert(_ context.Context, a Alert) error {
	n.logger.Error("alert.dropped_no_webhook", "job_id", a.JobID, "stage", a.Stage, "error", a.Error)
	return nil
}

// WebhookNotifier POSTs alerts as JSON to a configured endpoint.
type WebhookNotifier struct {
	url    string
	http   *http.Client
	logger *slog.Logger
}

func NewWebhookNotifier(url string, timeout time.Duration, logger *slog.Logger) *WebhookNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &WebhookNotifier{
		url:    url,
		http:   &http.Client{Timeout: timeout},
		logger: logger,
	}
}

func (n *WebhookNotifier) Alert(ctx context.Context, a Alert) error {
	b, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("marshal alert: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.http.Do(req)
	if err != nil {
		n.logger.Error("alert.post_failed", "job_id", a.JobID, "error", err)
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		n.logger.Error("alert.post_rejected", "job_id", a.JobID, "status", resp.StatusCode)
		return fmt.Errorf("alert webhook returned %d", resp.StatusCode)
	}
	n.logger.Info("alert.sent", "job_id", a.JobID, "stage", a.Stage)
	return nil
}
