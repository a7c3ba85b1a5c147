// Package mock provides test doubles for the flight search pipeline.
// These mocks are designed for integration testing where we need
// configurable behavior (delays, errors, specific responses).
package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/promptflight/prompt-flight-search/internal/domain"
)

// Agent is a configurable mock implementation of browser.Agent.
// It supports configurable delays, errors, and offer sets for testing
// various scenarios including empty results and slow searches.
type Agent struct {
	output json.RawMessage
	err    error
	delay  time.Duration

	mu        sync.Mutex
	callCount int
	lastTask  string
}

// NewAgent creates a new mock browser agent.
// The agent is configured using the builder pattern methods.
func NewAgent() *Agent {
	return &Agent{}
}

// WithOffers configures the agent to return the given offers wrapped in the
// structured output envelope.
func (a *Agent) WithOffers(offers []domain.FlightOffer) *Agent {
	raw, err := json.Marshal(map[string][]domain.FlightOffer{"flights": offers})
	if err != nil {
		panic("marshal offers: " + err.Error())
	}
	a.output = raw
	return a
}

// WithRawOutput configures the agent to return arbitrary raw output.
// Useful for testing malformed agent responses.
func (a *Agent) WithRawOutput(raw json.RawMessage) *Agent {
	a.output = raw
	return a
}

// WithError configures the agent to return the given error.
func (a *Agent) WithError(err error) *Agent {
	a.err = err
	return a
}

// WithDelay configures the agent to wait the given duration before responding.
// This is useful for testing concurrent searches and timeouts.
func (a *Agent) WithDelay(d time.Duration) *Agent {
	a.delay = d
	return a
}

// Run implements browser.Agent.
func (a *Agent) Run(ctx context.Context, task string, schema json.RawMessage) (json.RawMessage, error) {
	a.mu.Lock()
	a.callCount++
	a.lastTask = task
	a.mu.Unlock()

	if a.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(a.delay):
		}
	}

	if a.err != nil {
		return nil, a.err
	}
	return a.output, nil
}

// CallCount returns how many times Run was invoked.
func (a *Agent) CallCount() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.callCount
}

// LastTask returns the task description from the most recent Run call.
func (a *Agent) LastTask() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastTask
}

// SampleOffers generates n offers with ascending prices starting at the
// given base amount. The first offer is always the cheapest.
func SampleOffers(n int, base int) []domain.FlightOffer {
	offers := make([]domain.FlightOffer, 0, n)
	for i := 0; i < n; i++ {
		offers = append(offers, domain.FlightOffer{
			Price:          fmt.Sprintf("SGD %d", base+i*50),
			FlightDuration: "7h 10m",
			Stops:          "Nonstop",
			Airlines:       fmt.Sprintf("Airline %d", i+1),
			DepartureTime:  "08:30",
			ArrivalTime:    "15:40",
			FlightNumber:   fmt.Sprintf("XX %d", 100+i),
			LayoverDetails: "",
		})
	}
	return offers
}
