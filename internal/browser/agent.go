// Package browser integrates with a browser-automation agent service. The
// service receives a natural-language task plus a JSON output schema, drives
// a headless browser session through its own observe/act loop, and reports a
// structured result. Step limits and page-interaction heuristics are the
// service's concern, not ours.
package browser

import (
	"context"
	"encoding/json"
)

//go:generate mockgen -source=agent.go -destination=mock_agent.go -package=browser

// Agent runs one automation task to completion and returns its final
// structured output. Each Run owns a fresh browser session; sessions are
// never pooled or reused across requests.
type Agent interface {
	Run(ctx context.Context, task string, schema json.RawMessage) (json.RawMessage, error)
}
