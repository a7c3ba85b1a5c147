// Package response provides standardized HTTP response builders for the
// flight search API. It centralizes response formatting so every endpoint
// reports errors the same way.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorDetail contains structured error information.
type ErrorDetail struct {
	// Code is a machine-readable error code
	Code string `json:"code"`

	// Message is a human-readable error message
	Message string `json:"message"`

	// Details contains field-specific error details (for validation errors)
	Details map[string]string `json:"details,omitempty"`
}

// AcceptedResponse is the immediate acknowledgement for deferred-mode
// requests.
type AcceptedResponse struct {
	Message string `json:"message"`
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
}

// Error codes used in API responses.
const (
	CodeInvalidRequest    = "invalid_request"
	CodeValidationError   = "validation_error"
	CodeUnparseablePrompt = "unparseable_prompt"
	CodeNotFound          = "not_found"
	CodeTimeout           = "timeout"
	CodeInternalError     = "internal_error"
)

// Error messages used in API responses.
const (
	MsgInvalidRequestBody = "Failed to parse request body"
	MsgValidationFailed   = "Request validation failed"
	MsgUnparseablePrompt  = "Could not parse flight details from prompt"
	MsgNoFlightsFound     = "No flights found"
	MsgNoValidPrices      = "No flights with valid prices found"
	MsgAssemblyFailure    = "Could not parse cheapest flight details"
	MsgSearchAccepted     = "Flight search started. Results will be sent to the webhook when ready."
	MsgTimeout            = "Request timed out"
	MsgRequestCancelled   = "Request was cancelled"
	MsgInternalError      = "An unexpected error occurred"
)

// OK writes a 200 OK response with the given data.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

// SearchAccepted writes the 202 Accepted acknowledgement for a deferred
// search.
func SearchAccepted(c echo.Context) error {
	return c.JSON(http.StatusAccepted, &AcceptedResponse{
		Message: MsgSearchAccepted,
	})
}

// Health writes a health check response.
func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: "ok",
	})
}
