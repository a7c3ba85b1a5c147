package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestContext creates an echo context backed by a recorder.
func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/flights", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// decodeError unmarshals an ErrorDetail body.
func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorDetail {
	t.Helper()
	var detail ErrorDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &detail))
	return detail
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		write       func(echo.Context) error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "unparseable prompt",
			write:       UnparseablePrompt,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeUnparseablePrompt,
			wantMessage: "Could not parse flight details from prompt",
		},
		{
			name:        "no flights found",
			write:       NoFlightsFound,
			wantStatus:  http.StatusNotFound,
			wantCode:    CodeNotFound,
			wantMessage: "No flights found",
		},
		{
			name:        "no valid prices",
			write:       NoValidPrices,
			wantStatus:  http.StatusNotFound,
			wantCode:    CodeNotFound,
			wantMessage: "No flights with valid prices found",
		},
		{
			name:        "assembly failure",
			write:       AssemblyFailure,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    CodeInternalError,
			wantMessage: "Could not parse cheapest flight details",
		},
		{
			name:       "invalid request body",
			write:      InvalidRequestBody,
			wantStatus: http.StatusBadRequest,
			wantCode:   CodeInvalidRequest,
		},
		{
			name:       "internal server error",
			write:      InternalServerError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   CodeInternalError,
		},
		{
			name:       "gateway timeout",
			write:      GatewayTimeout,
			wantStatus: http.StatusGatewayTimeout,
			wantCode:   CodeTimeout,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newTestContext()

			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			detail := decodeError(t, rec)
			assert.Equal(t, tt.wantCode, detail.Code)
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, detail.Message)
			}
		})
	}
}

func TestSearchAccepted(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, SearchAccepted(c))

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var body AcceptedResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, MsgSearchAccepted, body.Message)
}

func TestValidationError_IncludesDetails(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, ValidationError(c, map[string]string{"prompt": "prompt is required"}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, CodeValidationError, detail.Code)
	assert.Equal(t, "prompt is required", detail.Details["prompt"])
}
