package intent

import (
	"context"
	"encoding/json"

	"github.com/promptflight/prompt-flight-search/internal/agent"
	"github.com/promptflight/prompt-flight-search/internal/infrastructure/timeutil"
)

// CurrentDateToolName is the tool the agent calls to anchor relative dates
// ("next Friday", "in two weeks") to the calendar.
const CurrentDateToolName = "current_date"

// DateFormat is the calendar format used throughout the service.
const DateFormat = "2006-01-02"

// currentDateTool exposes the clock as an agent tool returning YYYY-MM-DD.
func currentDateTool(clock timeutil.Clock) agent.Tool {
	return agent.Tool{
		Name:        CurrentDateToolName,
		Description: "Returns the current date in YYYY-MM-DD format. Use it as the base when resolving relative dates.",
		Parameters:  json.RawMessage(`{"type":"object","properties":{},"required":[]}`),
		Handler: func(_ context.Context, _ json.RawMessage) (string, error) {
			return clock.Now().Format(DateFormat), nil
		},
	}
}
