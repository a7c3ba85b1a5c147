package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/promptflight/prompt-flight-search/internal/agent"
)

// Completion is a scripted mock implementation of agent.CompletionProvider.
// It can return fixed text, fail with an error, or build a trip JSON reply
// using the current date tool the way a real model would.
type Completion struct {
	text     string
	err      error
	tripMode *tripScript

	mu        sync.Mutex
	callCount int
	lastUser  string
}

type tripScript struct {
	origin      string
	destination string
	returnDate  string
	dateToolID  string
}

// NewCompletion creates a new scripted completion provider.
func NewCompletion() *Completion {
	return &Completion{}
}

// WithText configures the provider to return the given text verbatim.
func (c *Completion) WithText(text string) *Completion {
	c.text = text
	return c
}

// WithError configures the provider to fail with the given error.
func (c *Completion) WithError(err error) *Completion {
	c.err = err
	return c
}

// WithTrip configures the provider to answer with a trip JSON whose
// departure date comes from invoking the current date tool, mimicking a
// model that resolves relative dates. An empty returnDate produces a
// one-way trip.
func (c *Completion) WithTrip(origin, destination, returnDate string) *Completion {
	c.tripMode = &tripScript{
		origin:      origin,
		destination: destination,
		returnDate:  returnDate,
		dateToolID:  "current_date",
	}
	return c
}

// Complete implements agent.CompletionProvider.
func (c *Completion) Complete(ctx context.Context, req agent.Request) (string, error) {
	c.mu.Lock()
	c.callCount++
	c.lastUser = req.User
	c.mu.Unlock()

	if c.err != nil {
		return "", c.err
	}
	if c.tripMode == nil {
		return c.text, nil
	}

	date, err := c.invokeDateTool(ctx, req.Tools)
	if err != nil {
		return "", err
	}

	trip := map[string]string{
		"origin":        c.tripMode.origin,
		"destination":   c.tripMode.destination,
		"departureDate": date,
	}
	if c.tripMode.returnDate != "" {
		trip["returnDate"] = c.tripMode.returnDate
	}
	raw, err := json.Marshal(trip)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// invokeDateTool runs the handler of the current date tool exposed to the model.
func (c *Completion) invokeDateTool(ctx context.Context, tools []agent.Tool) (string, error) {
	for _, tool := range tools {
		if tool.Name == c.tripMode.dateToolID {
			return tool.Handler(ctx, json.RawMessage(`{}`))
		}
	}
	return "", fmt.Errorf("tool %q not offered to the model", c.tripMode.dateToolID)
}

// CallCount returns how many times Complete was invoked.
func (c *Completion) CallCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.callCount
}

// LastUserMessage returns the user message from the most recent call.
func (c *Completion) LastUserMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastUser
}
