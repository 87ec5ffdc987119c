package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"marnthara/order"
)

// Submission errors. They are returned before any request is made.
var (
	ErrWebhookNotConfigured = errors.New("webhook url is not configured")
	ErrMissingCustomer      = errors.New("customer name is required")
	ErrNoItems              = errors.New("order has no items")
)

// placeholderWebhookHost marks the sample URL shipped in example configs.
const placeholderWebhookHost = "your-make-webhook-url.com"

// WebhookPayload is the body posted to the automation webhook: the full
// order plus its text summary.
type WebhookPayload struct {
	*order.Order
	TextSummary string `json:"text_summary"`
}

// WebhookClient posts finished orders to an automation webhook.
type WebhookClient struct {
	URL  string
	HTTP *http.Client
}

// NewWebhookClient returns a client with an instrumented transport and the
// given request timeout.
func NewWebhookClient(url string, timeout time.Duration) *WebhookClient {
	return &WebhookClient{
		URL: url,
		HTTP: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// Configured reports whether the URL is set and is not the sample placeholder.
func (c *WebhookClient) Configured() bool {
	return c != nil && c.URL != "" && !strings.Contains(c.URL, placeholderWebhookHost)
}

// ValidateSubmission checks that an order is ready to be sent.
func ValidateSubmission(o *order.Order) error {
	if o == nil || strings.TrimSpace(o.CustomerName) == "" {
		return ErrMissingCustomer
	}
	if o.ItemCount() == 0 {
		return ErrNoItems
	}
	return nil
}

// Submit validates o and posts it with its text summary. Each call carries a
// fresh Idempotency-Key header.
func (c *WebhookClient) Submit(ctx context.Context, o *order.Order) error {
	if err := ValidateSubmission(o); err != nil {
		return err
	}
	if !c.Configured() {
		return ErrWebhookNotConfigured
	}

	body, err := json.Marshal(WebhookPayload{Order: o, TextSummary: GenerateTextSummary(o)})
	if err != nil {
		return fmt.Errorf("encode webhook payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Idempotency-Key", uuid.NewString())

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook responded with status %d", resp.StatusCode)
	}
	return nil
}
