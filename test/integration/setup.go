// Package integration provides helpers and integration tests for the flight
// search service. Integration tests verify that the HTTP layer, use case,
// intent extraction, and webhook delivery work together correctly.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	httpAdapter "github.com/promptflight/prompt-flight-search/internal/adapter/http"
	"github.com/promptflight/prompt-flight-search/internal/browser"
	"github.com/promptflight/prompt-flight-search/internal/infrastructure/timeutil"
	"github.com/promptflight/prompt-flight-search/internal/intent"
	"github.com/promptflight/prompt-flight-search/internal/usecase"
	"github.com/promptflight/prompt-flight-search/internal/webhook"
	"github.com/promptflight/prompt-flight-search/test/mock"
)

// FixedNow is the reference time used by test clocks. It is a Tuesday so
// relative-date prompts have an unambiguous "this Friday".
var FixedNow = time.Date(2026, 9, 1, 9, 0, 0, 0, time.UTC)

// TestServer wraps an Echo instance wired to a real search pipeline with
// scripted model and browser doubles.
type TestServer struct {
	Echo       *echo.Echo
	Dispatcher *usecase.Dispatcher
}

// NewTestServer builds the full pipeline around the given doubles.
func NewTestServer(completion *mock.Completion, agent browser.Agent) *TestServer {
	log := zerolog.Nop()
	clock := timeutil.NewMockClock(FixedNow)

	extractor := intent.NewExtractor(completion, clock, log)
	deliverer := webhook.NewHTTPDeliverer(2*time.Second, log)
	dispatcher := usecase.NewDispatcher(log)

	uc := usecase.NewFlightSearchUseCase(extractor, agent, deliverer, dispatcher, log)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	handler := httpAdapter.NewFlightHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:       e,
		Dispatcher: dispatcher,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method string
	Path   string
	Body   interface{}
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)
	if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SearchRequest posts a flight search with the given body.
func (ts *TestServer) SearchRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/flights",
		Body:   body,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// WaitForTasks blocks until background searches finish or the timeout expires.
func (ts *TestServer) WaitForTasks(timeout time.Duration) bool {
	return ts.Dispatcher.Wait(timeout)
}

// ParseResult parses the response body as a flight result.
func (r *Response) ParseResult() (*httpAdapter.FlightResultDTO, error) {
	var result httpAdapter.FlightResultDTO
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// SearchRequestBody builds a flight search request body.
type SearchRequestBody struct {
	Prompt     string `json:"prompt"`
	WebhookURL string `json:"webhook_url,omitempty"`
}

// WebhookCapture is an HTTP server that records webhook deliveries.
type WebhookCapture struct {
	Server *httptest.Server

	mu     sync.Mutex
	bodies [][]byte
	ch     chan []byte
}

// NewWebhookCapture starts a capture server. Close it when done.
func NewWebhookCapture() *WebhookCapture {
	wc := &WebhookCapture{
		ch: make(chan []byte, 16),
	}
	wc.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var buf bytes.Buffer
		buf.ReadFrom(r.Body)
		body := buf.Bytes()

		wc.mu.Lock()
		wc.bodies = append(wc.bodies, body)
		wc.mu.Unlock()
		wc.ch <- body

		w.WriteHeader(http.StatusOK)
	}))
	return wc
}

// URL returns the capture server's endpoint.
func (wc *WebhookCapture) URL() string {
	return wc.Server.URL
}

// Close shuts down the capture server.
func (wc *WebhookCapture) Close() {
	wc.Server.Close()
}

// AwaitDelivery blocks until a webhook POST arrives or the timeout expires.
func (wc *WebhookCapture) AwaitDelivery(timeout time.Duration) ([]byte, bool) {
	select {
	case body := <-wc.ch:
		return body, true
	case <-time.After(timeout):
		return nil, false
	}
}

// Deliveries returns all captured webhook bodies.
func (wc *WebhookCapture) Deliveries() [][]byte {
	wc.mu.Lock()
	defer wc.mu.Unlock()
	return append([][]byte(nil), wc.bodies...)
}
