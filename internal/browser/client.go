package browser

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/promptflight/prompt-flight-search/internal/infrastructure/retry"
)

// Task lifecycle statuses reported by the automation service.
const (
	statusFinished = "finished"
	statusFailed   = "failed"
	statusStopped  = "stopped"
)

// DefaultPollInterval is how often task status is polled.
const DefaultPollInterval = 3 * time.Second

// Client drives the browser-automation agent service over HTTP: it creates a
// task (task text + output schema) and polls until the agent's loop finishes.
type Client struct {
	baseURL      string
	apiKey       string
	httpClient   *http.Client
	pollInterval time.Duration
	taskTimeout  time.Duration
	log          zerolog.Logger
}

// Config holds the client settings.
type Config struct {
	// BaseURL is the automation service endpoint
	BaseURL string

	// APIKey authenticates requests to the service
	APIKey string

	// PollInterval is how often task status is polled (default 3s)
	PollInterval time.Duration

	// TaskTimeout bounds a single Run from task creation to terminal
	// status; zero means no bound beyond the caller's context
	TaskTimeout time.Duration

	// HTTPClient overrides the default client, mainly for tests
	HTTPClient *http.Client
}

// NewClient creates a Client for the automation service.
func NewClient(cfg Config, log zerolog.Logger) *Client {
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	pollInterval := cfg.PollInterval
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &Client{
		baseURL:      cfg.BaseURL,
		apiKey:       cfg.APIKey,
		httpClient:   httpClient,
		pollInterval: pollInterval,
		taskTimeout:  cfg.TaskTimeout,
		log:          log,
	}
}

// createTaskRequest is the task submission payload. The session is headless
// and non-sandboxed, and is isolated to this task.
type createTaskRequest struct {
	Task                 string `json:"task"`
	StructuredOutputJSON string `json:"structured_output_json,omitempty"`
	Headless             bool   `json:"headless"`
	Sandbox              bool   `json:"sandbox"`
}

// createTaskResponse carries the ID of the scheduled task.
type createTaskResponse struct {
	ID string `json:"id"`
}

// taskStatusResponse is the polled task state. Output is only populated once
// the task reaches a terminal status.
type taskStatusResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
	Output string `json:"output"`
}

// Run submits the task and polls until the agent loop reaches a terminal
// status, returning the agent's structured output. The whole run is bounded
// by the configured task timeout and the caller's context, whichever ends
// first; the service's own step and timeout limits apply underneath.
func (c *Client) Run(ctx context.Context, task string, schema json.RawMessage) (json.RawMessage, error) {
	if c.taskTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.taskTimeout)
		defer cancel()
	}

	taskID, err := c.createTask(ctx, task, schema)
	if err != nil {
		return nil, fmt.Errorf("create browser task: %w", err)
	}

	c.log.Info().Str("task_id", taskID).Msg("Browser task created")

	return c.waitForResult(ctx, taskID)
}

// createTask submits the task, retrying transient failures.
func (c *Client) createTask(ctx context.Context, task string, schema json.RawMessage) (string, error) {
	body, err := json.Marshal(createTaskRequest{
		Task:                 task,
		StructuredOutputJSON: string(schema),
		Headless:             true,
		Sandbox:              false,
	})
	if err != nil {
		return "", err
	}

	return retry.DoWithResult(ctx, func() (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/run-task", bytes.NewReader(body))
		if err != nil {
			return "", retry.NewPermanent(err)
		}
		c.setHeaders(req)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
			return "", c.statusError(resp)
		}

		var created createTaskResponse
		if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
			return "", retry.NewPermanent(fmt.Errorf("decode create response: %w", err))
		}
		if created.ID == "" {
			return "", retry.NewPermanent(fmt.Errorf("create response missing task id"))
		}
		return created.ID, nil
	}, retry.UpstreamConfig.WithRetryIf(retry.SkipPermanent))
}

// waitForResult polls the task until it reaches a terminal status.
func (c *Client) waitForResult(ctx context.Context, taskID string) (json.RawMessage, error) {
	ticker := time.NewTicker(c.pollInterval)
	defer ticker.Stop()

	for {
		status, err := c.fetchStatus(ctx, taskID)
		if err != nil {
			return nil, fmt.Errorf("poll browser task %s: %w", taskID, err)
		}

		switch status.Status {
		case statusFinished:
			c.log.Info().Str("task_id", taskID).Msg("Browser task finished")
			return json.RawMessage(status.Output), nil
		case statusFailed, statusStopped:
			return nil, fmt.Errorf("browser task %s ended with status %q", taskID, status.Status)
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// fetchStatus retrieves the current task state.
func (c *Client) fetchStatus(ctx context.Context, taskID string) (*taskStatusResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/task/"+taskID, nil)
	if err != nil {
		return nil, err
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, c.statusError(resp)
	}

	var status taskStatusResponse
	if err := json.NewDecoder(resp.Body).Decode(&status); err != nil {
		return nil, fmt.Errorf("decode status response: %w", err)
	}
	return &status, nil
}

// setHeaders applies content type and authentication headers.
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
}

// statusError builds an error from a non-success HTTP response, keeping a
// short excerpt of the body for diagnostics.
func (c *Client) statusError(resp *http.Response) error {
	excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("browser agent service returned %d: %s", resp.StatusCode, string(excerpt))
}

// Ensure Client implements Agent at compile time.
var _ Agent = (*Client)(nil)
