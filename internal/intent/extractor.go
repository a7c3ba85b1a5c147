// Package intent turns free-text flight search prompts into structured trip
// requests using a tool-augmented language-model agent.
package intent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/promptflight/prompt-flight-search/internal/agent"
	"github.com/promptflight/prompt-flight-search/internal/domain"
	"github.com/promptflight/prompt-flight-search/internal/infrastructure/timeutil"
)

// systemInstruction directs the agent to emit a bare JSON object. Relative
// dates are resolved through the current_date tool rather than whatever date
// the model believes it is.
const systemInstruction = `Parse the following flight search query and return a JSON object with the keys ` +
	`"origin" (3-letter IATA airport code), "destination" (3-letter IATA airport code), ` +
	`"departureDate" and "returnDate" (both YYYY-MM-DD). ` +
	`Call the current_date tool to get the current date and use it as the base when resolving relative dates. ` +
	`Omit the returnDate key for one-way trips. Respond with the JSON object only.`

// Extractor converts prompts into trip requests.
type Extractor struct {
	provider agent.CompletionProvider
	clock    timeutil.Clock
	log      zerolog.Logger
}

// NewExtractor creates an Extractor backed by the given completion provider.
// The clock feeds the current_date tool; tests inject a MockClock to pin
// relative-date resolution.
func NewExtractor(provider agent.CompletionProvider, clock timeutil.Clock, log zerolog.Logger) *Extractor {
	return &Extractor{
		provider: provider,
		clock:    clock,
		log:      log,
	}
}

// Extract runs the agent and parses its answer into a TripRequest.
//
// Any failure along the way (the agent errors out, produces no JSON,
// produces malformed JSON, or the parsed trip does not validate) is reported
// as domain.ErrUnparseablePrompt. Callers treat that as "could not determine
// trip parameters", not as a fault.
func (e *Extractor) Extract(ctx context.Context, prompt string) (*domain.TripRequest, error) {
	text, err := e.provider.Complete(ctx, agent.Request{
		System: systemInstruction,
		User:   prompt,
		Tools:  []agent.Tool{currentDateTool(e.clock)},
	})
	if err != nil {
		e.log.Warn().Err(err).Msg("Intent agent failed")
		return nil, fmt.Errorf("%w: agent error: %v", domain.ErrUnparseablePrompt, err)
	}

	raw, ok := extractJSONObject(text)
	if !ok {
		e.log.Warn().Str("response", text).Msg("Intent agent produced no JSON object")
		return nil, fmt.Errorf("%w: no JSON object in agent response", domain.ErrUnparseablePrompt)
	}

	var trip domain.TripRequest
	if err := json.Unmarshal([]byte(raw), &trip); err != nil {
		e.log.Warn().Err(err).Str("json", raw).Msg("Intent agent produced malformed JSON")
		return nil, fmt.Errorf("%w: %v", domain.ErrUnparseablePrompt, err)
	}

	if err := trip.Validate(); err != nil {
		e.log.Warn().Err(err).Msg("Extracted trip failed validation")
		return nil, fmt.Errorf("%w: %v", domain.ErrUnparseablePrompt, err)
	}

	e.log.Info().
		Str("origin", trip.Origin).
		Str("destination", trip.Destination).
		Str("departure_date", trip.DepartureDate).
		Str("return_date", trip.ReturnDate).
		Msg("Extracted trip request")

	return &trip, nil
}
