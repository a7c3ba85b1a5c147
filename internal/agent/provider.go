// Package agent provides the language-model completion abstraction used by
// the intent extraction layer. A CompletionProvider turns a prompt plus a set
// of callable tools into final text, resolving any tool invocations
// internally so callers never see the agent loop.
package agent

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=provider.go -destination=mock_provider.go -package=agent

// ToolHandler executes a tool call with the raw JSON arguments produced by
// the model and returns the tool output as text.
type ToolHandler func(ctx context.Context, args json.RawMessage) (string, error)

// Tool describes a function the model may call during a completion.
type Tool struct {
	// Name is the function name exposed to the model
	Name string

	// Description tells the model when to call the tool
	Description string

	// Parameters is the JSON schema of the tool arguments
	Parameters json.RawMessage

	// Handler executes the call
	Handler ToolHandler
}

// Request carries the inputs for one completion.
type Request struct {
	// System is the system instruction
	System string

	// User is the user message
	User string

	// Tools are the callable tools available to the model; may be empty
	Tools []Tool
}

// CompletionProvider is implemented by language-model clients.
// Complete runs the model (including any tool-call rounds) and returns the
// final text response.
type CompletionProvider interface {
	Complete(ctx context.Context, req Request) (string, error)
}
