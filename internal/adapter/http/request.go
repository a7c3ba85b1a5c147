// Package http provides the HTTP handler layer for the flight search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"net/url"
	"strings"
)

// SearchFlightsRequest represents the request body for a flight search.
type SearchFlightsRequest struct {
	// Prompt is the natural-language flight search query
	Prompt string `json:"prompt"`

	// WebhookURL, when set, switches the request to deferred mode: the
	// result is POSTed to this absolute URL instead of being returned
	// in the response.
	WebhookURL string `json:"webhook_url,omitempty"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API responses.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

// IsDeferred reports whether the request asked for webhook delivery.
func (r *SearchFlightsRequest) IsDeferred() bool {
	return r.WebhookURL != ""
}

// Validate validates the search request and returns any validation errors.
func (r *SearchFlightsRequest) Validate() error {
	errs := &ValidationErrors{}

	r.validatePrompt(errs)
	r.validateWebhookURL(errs)

	if errs.HasErrors() {
		return errs
	}
	return nil
}

func (r *SearchFlightsRequest) validatePrompt(errs *ValidationErrors) {
	if strings.TrimSpace(r.Prompt) == "" {
		errs.Add("prompt", "prompt is required")
	}
}

func (r *SearchFlightsRequest) validateWebhookURL(errs *ValidationErrors) {
	if r.WebhookURL == "" {
		return
	}

	parsed, err := url.Parse(r.WebhookURL)
	if err != nil {
		errs.Add("webhook_url", "webhook_url must be a valid URL")
		return
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		errs.Add("webhook_url", "webhook_url must use http or https")
		return
	}
	if parsed.Host == "" {
		errs.Add("webhook_url", "webhook_url must be an absolute URL")
	}
}
