package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Lexv0lk/transfer-engine/internal/pkg/logging"
	"github.com/Lexv0lk/transfer-engine/internal/transfer/domain"
	"github.com/sony/gobreaker"
)

const (
	userAgent = "transfer-engine-notifier/1.0"

	breakerName            = "transfer-webhook"
	breakerFailureLimit    = 3
	breakerOpenTimeout     = 30 * time.Second
	breakerHalfOpenRequest = 1
)

type webhookPayload struct {
	AccountID string `json:"accountId"`
	Balance   string `json:"balance"`
	Message   string `json:"message"`
}

type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("webhook responded with status %d", e.StatusCode)
}

// WebhookNotifier posts transfer notifications as JSON to a fixed URL. After
// three consecutive failures the breaker opens and calls fail immediately with
// gobreaker.ErrOpenState until the open timeout passes.
type WebhookNotifier struct {
	url     string
	client  *http.Client
	breaker *gobreaker.CircuitBreaker
	logger  logging.Logger
}

func NewWebhookNotifier(url string, client *http.Client, logger logging.Logger) *WebhookNotifier {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Second}
	}

	settings := gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: breakerHalfOpenRequest,
		Timeout:     breakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerFailureLimit
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn("notifier circuit breaker state changed",
				"breaker", name,
				"from", from.String(),
				"to", to.String(),
			)
		},
	}

	return &WebhookNotifier{
		url:     url,
		client:  client,
		breaker: gobreaker.NewCircuitBreaker(settings),
		logger:  logger,
	}
}

func (n *WebhookNotifier) NotifyAboutTransfer(ctx context.Context, account domain.AccountSnapshot, message string) error {
	_, err := n.breaker.Execute(func() (interface{}, error) {
		return nil, n.post(ctx, webhookPayload{
			AccountID: account.AccountID,
			Balance:   account.Balance.String(),
			Message:   message,
		})
	})

	return err
}

func (n *WebhookNotifier) post(ctx context.Context, payload webhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode notification: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build notification request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}
	defer resp.Body.Close()

	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{StatusCode: resp.StatusCode}
	}

	return nil
}
