package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchFlightsRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   SearchFlightsRequest
		wantError bool
		wantField string
	}{
		{
			name: "valid sync request",
			request: SearchFlightsRequest{
				Prompt: "Cheapest flight from Singapore to Tokyo this Friday",
			},
			wantError: false,
		},
		{
			name: "valid deferred request",
			request: SearchFlightsRequest{
				Prompt:     "Cheapest flight from Singapore to Tokyo this Friday",
				WebhookURL: "https://example.com/hooks/flights",
			},
			wantError: false,
		},
		{
			name: "http webhook is allowed",
			request: SearchFlightsRequest{
				Prompt:     "SIN to NRT",
				WebhookURL: "http://internal.example.com/hook",
			},
			wantError: false,
		},
		{
			name:      "missing prompt",
			request:   SearchFlightsRequest{},
			wantError: true,
			wantField: "prompt",
		},
		{
			name: "whitespace-only prompt",
			request: SearchFlightsRequest{
				Prompt: "  \t ",
			},
			wantError: true,
			wantField: "prompt",
		},
		{
			name: "webhook with unsupported scheme",
			request: SearchFlightsRequest{
				Prompt:     "SIN to NRT",
				WebhookURL: "ftp://example.com/hook",
			},
			wantError: true,
			wantField: "webhook_url",
		},
		{
			name: "relative webhook URL",
			request: SearchFlightsRequest{
				Prompt:     "SIN to NRT",
				WebhookURL: "example.com/hook",
			},
			wantError: true,
			wantField: "webhook_url",
		},
		{
			name: "unparseable webhook URL",
			request: SearchFlightsRequest{
				Prompt:     "SIN to NRT",
				WebhookURL: "://missing-scheme",
			},
			wantError: true,
			wantField: "webhook_url",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()

			if !tt.wantError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var verrs *ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs.ToMap(), tt.wantField)
		})
	}
}

func TestSearchFlightsRequest_IsDeferred(t *testing.T) {
	sync := SearchFlightsRequest{Prompt: "SIN to NRT"}
	assert.False(t, sync.IsDeferred())

	deferred := SearchFlightsRequest{Prompt: "SIN to NRT", WebhookURL: "https://example.com/hook"}
	assert.True(t, deferred.IsDeferred())
}

func TestValidationErrors_Accumulation(t *testing.T) {
	req := SearchFlightsRequest{WebhookURL: "ftp://example.com"}

	err := req.Validate()
	require.Error(t, err)

	var verrs *ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs.Errors, 2)
	assert.Equal(t, "prompt is required", verrs.Error())
}
