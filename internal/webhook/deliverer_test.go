package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/promptflight/prompt-flight-search/internal/domain"
	"github.com/promptflight/prompt-flight-search/internal/infrastructure/logger"
)

// captureServer records every POST body it receives.
type captureServer struct {
	mu     sync.Mutex
	bodies [][]byte
	status int
}

func newCaptureServer(status int) (*captureServer, *httptest.Server) {
	cs := &captureServer{status: status}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		cs.mu.Lock()
		cs.bodies = append(cs.bodies, body)
		cs.mu.Unlock()
		w.WriteHeader(cs.status)
	}))
	return cs, server
}

func (cs *captureServer) count() int {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return len(cs.bodies)
}

func (cs *captureServer) body(i int) []byte {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.bodies[i]
}

func TestHTTPDeliverer_Deliver_Success(t *testing.T) {
	cs, server := newCaptureServer(http.StatusOK)
	defer server.Close()

	deliverer := NewHTTPDeliverer(time.Second, logger.Nop().Logger)
	result := domain.FlightResult{Airline: "Singapore Airlines", Price: "SGD 300", NumberOfStops: 1}

	err := deliverer.Deliver(context.Background(), server.URL, result)

	require.NoError(t, err)
	require.Equal(t, 1, cs.count(), "success must produce exactly one POST")

	var got domain.FlightResult
	require.NoError(t, json.Unmarshal(cs.body(0), &got))
	assert.Equal(t, "SGD 300", got.Price)
}

func TestHTTPDeliverer_Deliver_FailureRetriesWithErrorPayload(t *testing.T) {
	cs, server := newCaptureServer(http.StatusInternalServerError)
	defer server.Close()

	deliverer := NewHTTPDeliverer(time.Second, logger.Nop().Logger)

	err := deliverer.Deliver(context.Background(), server.URL, domain.FlightResult{Price: "SGD 300"})

	require.Error(t, err)
	require.Equal(t, 2, cs.count(), "failed delivery gets exactly one retry")

	var payload ErrorPayload
	require.NoError(t, json.Unmarshal(cs.body(1), &payload))
	assert.Contains(t, payload.Error, "failed to deliver")
}

func TestHTTPDeliverer_Deliver_UnreachableHost(t *testing.T) {
	deliverer := NewHTTPDeliverer(100*time.Millisecond, logger.Nop().Logger)

	// Closed port; both the primary POST and the retry fail. The error is
	// surfaced for logging but never panics or blocks.
	err := deliverer.Deliver(context.Background(), "http://127.0.0.1:1/hook", domain.FlightResult{})

	require.Error(t, err)
}

func TestHTTPDeliverer_Deliver_ErrorPayloadPassthrough(t *testing.T) {
	cs, server := newCaptureServer(http.StatusOK)
	defer server.Close()

	deliverer := NewHTTPDeliverer(time.Second, logger.Nop().Logger)

	err := deliverer.Deliver(context.Background(), server.URL, ErrorPayload{Error: "No flights found"})

	require.NoError(t, err)
	require.Equal(t, 1, cs.count())
	assert.JSONEq(t, `{"error":"No flights found"}`, string(cs.body(0)))
}
