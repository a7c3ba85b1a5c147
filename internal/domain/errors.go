package domain

import "errors"

// Sentinel errors for the flight search pipeline.
// Handlers map these to HTTP responses with errors.Is; nothing below the
// HTTP boundary knows about status codes.
var (
	// ErrInvalidRequest indicates the request failed validation.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnparseablePrompt indicates the prompt could not be converted into
	// structured trip parameters. This is a signal, not a fault: the agent
	// either produced no JSON or produced JSON we could not use.
	ErrUnparseablePrompt = errors.New("could not parse flight details from prompt")

	// ErrNoFlightsFound indicates the browser agent produced no usable offers.
	ErrNoFlightsFound = errors.New("no flights found")

	// ErrNoValidPrices indicates every scraped offer was missing a price or
	// carried the literal "null" placeholder.
	ErrNoValidPrices = errors.New("no flights with valid prices found")

	// ErrNoParseablePrices indicates offers passed the null filter but none
	// contained an extractable numeric amount. Kept distinct from
	// ErrNoValidPrices so selection never returns an arbitrary offer.
	ErrNoParseablePrices = errors.New("no flights with parseable prices found")

	// ErrResultAssembly indicates an unexpected failure while deriving the
	// response from the selected offer.
	ErrResultAssembly = errors.New("could not assemble cheapest flight result")
)
