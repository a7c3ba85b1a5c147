// Package webhook delivers deferred-mode search results to caller-supplied
// callback URLs.
package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
)

//go:generate mockgen -source=deliverer.go -destination=mock_deliverer.go -package=webhook

// DefaultTimeout bounds a single delivery call.
const DefaultTimeout = 10 * time.Second

// ErrorPayload is the JSON body posted when the pipeline failed or when the
// result itself could not be delivered.
type ErrorPayload struct {
	Error string `json:"error"`
}

// Deliverer posts a JSON payload to a webhook URL.
//
// Semantics are at-most-one delivery attempt plus one best-effort retry: if
// the primary POST fails, a single follow-up POST carrying an ErrorPayload is
// made to the same address. Failure of that retry is logged and dropped; the
// original HTTP request completed long ago and there is nobody left to tell.
type Deliverer interface {
	Deliver(ctx context.Context, url string, payload any) error
}

// HTTPDeliverer implements Deliverer over plain HTTP POST.
type HTTPDeliverer struct {
	client  *http.Client
	timeout time.Duration
	log     zerolog.Logger
}

// NewHTTPDeliverer creates a deliverer with the given per-call timeout.
// A non-positive timeout falls back to DefaultTimeout.
func NewHTTPDeliverer(timeout time.Duration, log zerolog.Logger) *HTTPDeliverer {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPDeliverer{
		client:  &http.Client{Timeout: timeout},
		timeout: timeout,
		log:     log,
	}
}

// Deliver posts the payload. On failure it posts an ErrorPayload once and
// returns the primary error so callers can log the outcome.
func (d *HTTPDeliverer) Deliver(ctx context.Context, url string, payload any) error {
	err := d.post(ctx, url, payload)
	if err == nil {
		d.log.Info().Str("webhook_url", url).Msg("Webhook delivered")
		return nil
	}

	d.log.Warn().Err(err).Str("webhook_url", url).Msg("Webhook delivery failed, retrying with error payload")

	retryErr := d.post(ctx, url, ErrorPayload{
		Error: fmt.Sprintf("failed to deliver flight search result: %v", err),
	})
	if retryErr != nil {
		d.log.Error().Err(retryErr).Str("webhook_url", url).Msg("Webhook error-payload retry failed, dropping result")
	}

	return err
}

// post performs one bounded JSON POST.
func (d *HTTPDeliverer) post(ctx context.Context, url string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal webhook payload: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build webhook request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("post webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return nil
}

// Ensure HTTPDeliverer implements Deliverer at compile time.
var _ Deliverer = (*HTTPDeliverer)(nil)
