// Package usecase contains the business logic for the prompt-driven flight
// search pipeline: intent extraction, browser-agent search, cheapest-offer
// selection, and deferred webhook delivery.
package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/promptflight/prompt-flight-search/internal/browser"
	"github.com/promptflight/prompt-flight-search/internal/domain"
	"github.com/promptflight/prompt-flight-search/internal/webhook"
)

//go:generate mockgen -source=flight_search.go -destination=mock_flight_search.go -package=usecase

// IntentExtractor converts a free-text prompt into a structured trip request.
type IntentExtractor interface {
	Extract(ctx context.Context, prompt string) (*domain.TripRequest, error)
}

// FlightSearchUseCase defines the operations exposed to the HTTP boundary.
type FlightSearchUseCase interface {
	// ExtractTrip parses the prompt into trip parameters. Runs within the
	// request lifetime in both modes so unparseable prompts fail fast.
	ExtractTrip(ctx context.Context, prompt string) (*domain.TripRequest, error)

	// Search scrapes offers for the trip and returns the cheapest valid one.
	Search(ctx context.Context, trip domain.TripRequest) (*domain.FlightResult, error)

	// SearchAndDeliver runs Search on a background task and posts the result
	// (or an error payload) to the webhook URL. It returns immediately.
	SearchAndDeliver(trip domain.TripRequest, webhookURL string)
}

// flightSearchUseCase wires the pipeline stages together. Each request's
// stages run strictly sequentially; there is no shared mutable state.
type flightSearchUseCase struct {
	extractor  IntentExtractor
	agent      browser.Agent
	deliverer  webhook.Deliverer
	dispatcher *Dispatcher
	log        zerolog.Logger
}

// NewFlightSearchUseCase creates the use case with its collaborators.
func NewFlightSearchUseCase(
	extractor IntentExtractor,
	agent browser.Agent,
	deliverer webhook.Deliverer,
	dispatcher *Dispatcher,
	log zerolog.Logger,
) FlightSearchUseCase {
	return &flightSearchUseCase{
		extractor:  extractor,
		agent:      agent,
		deliverer:  deliverer,
		dispatcher: dispatcher,
		log:        log,
	}
}

// offersEnvelope is the structured result enforced on the browser agent.
type offersEnvelope struct {
	Flights []domain.FlightOffer `json:"flights"`
}

// ExtractTrip implements FlightSearchUseCase.
func (uc *flightSearchUseCase) ExtractTrip(ctx context.Context, prompt string) (*domain.TripRequest, error) {
	return uc.extractor.Extract(ctx, prompt)
}

// Search implements FlightSearchUseCase: search → select → assemble.
func (uc *flightSearchUseCase) Search(ctx context.Context, trip domain.TripRequest) (*domain.FlightResult, error) {
	offers, err := uc.searchOffers(ctx, trip)
	if err != nil {
		return nil, err
	}

	cheapest, err := domain.CheapestOffer(offers)
	if err != nil {
		return nil, err
	}

	result, err := uc.assembleResult(cheapest)
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("airline", result.Airline).
		Str("price", result.Price).
		Int("stops", result.NumberOfStops).
		Msg("Selected cheapest flight")

	return result, nil
}

// SearchAndDeliver implements FlightSearchUseCase. The dispatched task uses a
// fresh background context: the originating HTTP request completes
// immediately and must not cancel the search. No caller-visible cancellation
// exists once the task starts.
func (uc *flightSearchUseCase) SearchAndDeliver(trip domain.TripRequest, webhookURL string) {
	uc.dispatcher.Dispatch("flight-search", func() {
		ctx := context.Background()

		result, err := uc.Search(ctx, trip)

		var payload any
		if err != nil {
			uc.log.Warn().Err(err).Str("webhook_url", webhookURL).Msg("Deferred search failed")
			payload = webhook.ErrorPayload{Error: deliveryErrorMessage(err)}
		} else {
			payload = result
		}

		if err := uc.deliverer.Deliver(ctx, webhookURL, payload); err != nil {
			uc.log.Error().Err(err).Str("webhook_url", webhookURL).Msg("Deferred result delivery failed")
		}
	})
}

// searchOffers runs the browser agent and decodes its structured output.
// Scraping failures and malformed output both surface as ErrNoFlightsFound;
// the boundary converts that into a not-found response.
func (uc *flightSearchUseCase) searchOffers(ctx context.Context, trip domain.TripRequest) ([]domain.FlightOffer, error) {
	task := browser.BuildTask(trip)

	raw, err := uc.agent.Run(ctx, task, browser.OffersSchema)
	if err != nil {
		uc.log.Warn().Err(err).Msg("Browser agent run failed")
		return nil, fmt.Errorf("%w: %v", domain.ErrNoFlightsFound, err)
	}

	offers, err := decodeOffers(raw)
	if err != nil {
		uc.log.Warn().Err(err).Msg("Browser agent output unparseable")
		return nil, fmt.Errorf("%w: %v", domain.ErrNoFlightsFound, err)
	}
	if len(offers) == 0 {
		return nil, domain.ErrNoFlightsFound
	}

	uc.log.Info().Int("offers", len(offers)).Msg("Scraped flight offers")
	return offers, nil
}

// decodeOffers parses the agent's final result. The enforced schema wraps
// offers in a "flights" object, but a bare array is accepted too since agent
// output is not fully trustworthy.
func decodeOffers(raw json.RawMessage) ([]domain.FlightOffer, error) {
	var envelope offersEnvelope
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Flights != nil {
		return envelope.Flights, nil
	}

	var offers []domain.FlightOffer
	if err := json.Unmarshal(raw, &offers); err != nil {
		return nil, fmt.Errorf("decode offers: %w", err)
	}
	return offers, nil
}

// assembleResult derives the response payload, converting any panic during
// derivation into ErrResultAssembly so it reaches the caller as a server
// error instead of crashing the task.
func (uc *flightSearchUseCase) assembleResult(offer domain.FlightOffer) (result *domain.FlightResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			uc.log.Error().Interface("panic", r).Msg("Panic during result assembly")
			result = nil
			err = fmt.Errorf("%w: %v", domain.ErrResultAssembly, r)
		}
	}()

	assembled := offer.ToResult()
	return &assembled, nil
}

// deliveryErrorMessage maps pipeline failures to the stable messages webhook
// consumers see.
func deliveryErrorMessage(err error) string {
	switch {
	case errors.Is(err, domain.ErrNoFlightsFound):
		return "No flights found"
	case errors.Is(err, domain.ErrNoValidPrices), errors.Is(err, domain.ErrNoParseablePrices):
		return "No flights with valid prices found"
	default:
		return "Could not parse cheapest flight details"
	}
}

// Ensure flightSearchUseCase implements FlightSearchUseCase at compile time.
var _ FlightSearchUseCase = (*flightSearchUseCase)(nil)
