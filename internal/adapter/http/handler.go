package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/promptflight/prompt-flight-search/internal/adapter/http/response"
	"github.com/promptflight/prompt-flight-search/internal/domain"
	"github.com/promptflight/prompt-flight-search/internal/usecase"
)

// FlightHandler handles HTTP requests for flight search endpoints.
type FlightHandler struct {
	useCase usecase.FlightSearchUseCase
}

// NewFlightHandler creates a new FlightHandler with the given use case.
func NewFlightHandler(uc usecase.FlightSearchUseCase) *FlightHandler {
	return &FlightHandler{
		useCase: uc,
	}
}

// SearchFlights handles POST /flights
//
// @Summary Search for the cheapest flight from a natural-language prompt
// @Description Extracts trip parameters from the prompt, scrapes live flight results through a browser-automation agent, and returns the cheapest valid itinerary. When webhook_url is set the search runs in the background and the result is POSTed to that URL.
// @Tags flights
// @Accept json
// @Produce json
// @Param request body SearchFlightsRequest true "Search prompt and optional webhook URL"
// @Success 200 {object} FlightResultDTO
// @Success 202 {object} response.AcceptedResponse "Deferred-mode acknowledgement"
// @Failure 400 {object} response.ErrorDetail "Validation error or unparseable prompt"
// @Failure 404 {object} response.ErrorDetail "No flights or no valid prices"
// @Failure 500 {object} response.ErrorDetail "Result assembly failure"
// @Router /flights [post]
func (h *FlightHandler) SearchFlights(c echo.Context) error {
	var req SearchFlightsRequest

	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}

	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx := c.Request().Context()

	// Intent extraction runs within the request lifetime in both modes so
	// an unparseable prompt fails fast and no webhook call ever happens.
	trip, err := h.useCase.ExtractTrip(ctx, req.Prompt)
	if err != nil {
		return h.handleError(c, err)
	}

	if req.IsDeferred() {
		h.useCase.SearchAndDeliver(*trip, req.WebhookURL)
		return response.SearchAccepted(c)
	}

	result, err := h.useCase.Search(ctx, *trip)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToFlightResultDTO(result))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *FlightHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	// Fallback for non-structured validation errors
	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps pipeline errors to HTTP responses.
func (h *FlightHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnparseablePrompt):
		return response.UnparseablePrompt(c)

	case errors.Is(err, domain.ErrNoFlightsFound):
		return response.NoFlightsFound(c)

	case errors.Is(err, domain.ErrNoValidPrices), errors.Is(err, domain.ErrNoParseablePrices):
		return response.NoValidPrices(c)

	case errors.Is(err, domain.ErrResultAssembly):
		return response.AssemblyFailure(c)

	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)

	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)

	default:
		return response.InternalServerError(c)
	}
}

// Health handles GET /health
// Simple health check endpoint.
func (h *FlightHandler) Health(c echo.Context) error {
	return response.Health(c)
}
