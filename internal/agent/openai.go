package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"
	openai "github.com/sashabaranov/go-openai"
)

// DefaultMaxToolRounds bounds the number of tool-call rounds in a single
// completion so a misbehaving model cannot loop forever.
const DefaultMaxToolRounds = 5

// chatCompleter is the subset of the OpenAI client used by the provider.
// It exists so the tool loop can be tested without network access.
type chatCompleter interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

// OpenAIProvider implements CompletionProvider on top of the OpenAI chat
// completions API with function tools.
type OpenAIProvider struct {
	client        chatCompleter
	model         string
	maxToolRounds int
	log           zerolog.Logger
}

// NewOpenAIProvider creates a provider for the given API key and model.
func NewOpenAIProvider(apiKey, model string, maxToolRounds int, log zerolog.Logger) *OpenAIProvider {
	if maxToolRounds <= 0 {
		maxToolRounds = DefaultMaxToolRounds
	}
	return &OpenAIProvider{
		client:        openai.NewClient(apiKey),
		model:         model,
		maxToolRounds: maxToolRounds,
		log:           log,
	}
}

// newOpenAIProviderWithClient is the test seam for injecting a fake client.
func newOpenAIProviderWithClient(client chatCompleter, model string, maxToolRounds int, log zerolog.Logger) *OpenAIProvider {
	if maxToolRounds <= 0 {
		maxToolRounds = DefaultMaxToolRounds
	}
	return &OpenAIProvider{
		client:        client,
		model:         model,
		maxToolRounds: maxToolRounds,
		log:           log,
	}
}

// Complete runs the chat completion loop. When the model requests tool calls,
// each call is resolved through its Tool handler and the results are fed back
// until the model produces a final text answer or the round limit is reached.
func (p *OpenAIProvider) Complete(ctx context.Context, req Request) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: req.System},
		{Role: openai.ChatMessageRoleUser, Content: req.User},
	}

	tools := buildTools(req.Tools)
	handlers := make(map[string]ToolHandler, len(req.Tools))
	for _, t := range req.Tools {
		handlers[t.Name] = t.Handler
	}

	for round := 0; round < p.maxToolRounds; round++ {
		resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model:    p.model,
			Messages: messages,
			Tools:    tools,
		})
		if err != nil {
			return "", fmt.Errorf("chat completion: %w", err)
		}
		if len(resp.Choices) == 0 {
			return "", fmt.Errorf("chat completion returned no choices")
		}

		msg := resp.Choices[0].Message
		if len(msg.ToolCalls) == 0 {
			return msg.Content, nil
		}

		messages = append(messages, msg)
		for _, call := range msg.ToolCalls {
			output, err := p.runTool(ctx, handlers, call)
			if err != nil {
				// Feed the failure back to the model instead of aborting;
				// it may recover or answer without the tool.
				output = fmt.Sprintf("tool error: %v", err)
			}
			messages = append(messages, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    output,
				ToolCallID: call.ID,
			})
		}
	}

	return "", fmt.Errorf("tool-call rounds exceeded limit of %d", p.maxToolRounds)
}

// runTool resolves a single tool call through its registered handler.
func (p *OpenAIProvider) runTool(ctx context.Context, handlers map[string]ToolHandler, call openai.ToolCall) (string, error) {
	handler, ok := handlers[call.Function.Name]
	if !ok {
		return "", fmt.Errorf("unknown tool %q", call.Function.Name)
	}

	p.log.Debug().
		Str("tool", call.Function.Name).
		Str("arguments", call.Function.Arguments).
		Msg("Resolving tool call")

	return handler(ctx, json.RawMessage(call.Function.Arguments))
}

// buildTools converts Tool definitions into the OpenAI function-tool format.
func buildTools(tools []Tool) []openai.Tool {
	if len(tools) == 0 {
		return nil
	}
	result := make([]openai.Tool, 0, len(tools))
	for _, t := range tools {
		result = append(result, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        t.Name,
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}
	return result
}

// Ensure OpenAIProvider implements CompletionProvider at compile time.
var _ CompletionProvider = (*OpenAIProvider)(nil)
