package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/promptflight/prompt-flight-search/internal/browser"
	"github.com/promptflight/prompt-flight-search/internal/domain"
	"github.com/promptflight/prompt-flight-search/internal/infrastructure/logger"
	"github.com/promptflight/prompt-flight-search/internal/webhook"
)

// testTrip is the trip used across pipeline tests.
var testTrip = domain.TripRequest{
	Origin:        "SIN",
	Destination:   "NRT",
	DepartureDate: "2026-09-11",
}

// offersJSON builds the browser agent's structured output for the given offers.
func offersJSON(t *testing.T, offers []domain.FlightOffer) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]any{"flights": offers})
	require.NoError(t, err)
	return raw
}

// capturingDeliverer records delivered payloads.
type capturingDeliverer struct {
	calls    atomic.Int32
	payloads chan any
}

func newCapturingDeliverer() *capturingDeliverer {
	return &capturingDeliverer{payloads: make(chan any, 4)}
}

func (d *capturingDeliverer) Deliver(_ context.Context, _ string, payload any) error {
	d.calls.Add(1)
	d.payloads <- payload
	return nil
}

func newTestUseCase(t *testing.T, agent browser.Agent, deliverer webhook.Deliverer) FlightSearchUseCase {
	t.Helper()
	return NewFlightSearchUseCase(nil, agent, deliverer, NewDispatcher(logger.Nop().Logger), logger.Nop().Logger)
}

func TestSearch_SelectsCheapestAcrossNullPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	offers := []domain.FlightOffer{
		{Price: "SGD 500", Airlines: "Scoot", Stops: "Nonstop"},
		{Price: "SGD null", Airlines: "Jetstar", Stops: "1 stop"},
		{Price: "SGD 300", Airlines: "Singapore Airlines", Stops: "1 stop"},
	}

	agent := browser.NewMockAgent(ctrl)
	agent.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(offersJSON(t, offers), nil)

	uc := newTestUseCase(t, agent, nil)

	result, err := uc.Search(context.Background(), testTrip)

	require.NoError(t, err)
	assert.Equal(t, "SGD 300", result.Price)
	assert.Equal(t, "Singapore Airlines", result.Airline)
	assert.Equal(t, 1, result.NumberOfStops)
}

func TestSearch_TaskEncodesTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var gotTask string
	agent := browser.NewMockAgent(ctrl)
	agent.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, task string, schema json.RawMessage) (json.RawMessage, error) {
			gotTask = task
			assert.JSONEq(t, string(browser.OffersSchema), string(schema))
			return offersJSON(t, []domain.FlightOffer{{Price: "SGD 100"}}), nil
		})

	uc := newTestUseCase(t, agent, nil)

	_, err := uc.Search(context.Background(), testTrip)

	require.NoError(t, err)
	assert.Contains(t, gotTask, "SIN")
	assert.Contains(t, gotTask, "NRT")
	assert.Contains(t, gotTask, "2026-09-11")
}

func TestSearch_AgentFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agent := browser.NewMockAgent(ctrl)
	agent.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("agent timeout"))

	uc := newTestUseCase(t, agent, nil)

	_, err := uc.Search(context.Background(), testTrip)

	assert.ErrorIs(t, err, domain.ErrNoFlightsFound)
}

func TestSearch_MalformedAgentOutput(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agent := browser.NewMockAgent(ctrl)
	agent.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(json.RawMessage(`the page would not load`), nil)

	uc := newTestUseCase(t, agent, nil)

	_, err := uc.Search(context.Background(), testTrip)

	assert.ErrorIs(t, err, domain.ErrNoFlightsFound)
}

func TestSearch_EmptyOffers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agent := browser.NewMockAgent(ctrl)
	agent.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(offersJSON(t, []domain.FlightOffer{}), nil)

	uc := newTestUseCase(t, agent, nil)

	_, err := uc.Search(context.Background(), testTrip)

	assert.ErrorIs(t, err, domain.ErrNoFlightsFound)
}

func TestSearch_BareArrayOutputAccepted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agent := browser.NewMockAgent(ctrl)
	agent.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(json.RawMessage(`[{"price":"SGD 250","airlines":"Scoot","stops":"Nonstop"}]`), nil)

	uc := newTestUseCase(t, agent, nil)

	result, err := uc.Search(context.Background(), testTrip)

	require.NoError(t, err)
	assert.Equal(t, "SGD 250", result.Price)
	assert.Equal(t, 0, result.NumberOfStops)
}

func TestSearch_NoValidPrices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agent := browser.NewMockAgent(ctrl)
	agent.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(offersJSON(t, []domain.FlightOffer{{Price: "null"}, {Price: ""}}), nil)

	uc := newTestUseCase(t, agent, nil)

	_, err := uc.Search(context.Background(), testTrip)

	assert.ErrorIs(t, err, domain.ErrNoValidPrices)
}

func TestSearchAndDeliver_DeliversResultOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agent := browser.NewMockAgent(ctrl)
	agent.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(offersJSON(t, []domain.FlightOffer{{Price: "SGD 300", Airlines: "SQ", Stops: "Nonstop"}}), nil)

	deliverer := newCapturingDeliverer()
	dispatcher := NewDispatcher(logger.Nop().Logger)
	uc := NewFlightSearchUseCase(nil, agent, deliverer, dispatcher, logger.Nop().Logger)

	uc.SearchAndDeliver(testTrip, "http://example.com/hook")

	require.True(t, dispatcher.Wait(2*time.Second), "background task must finish")
	require.Equal(t, int32(1), deliverer.calls.Load())

	payload := <-deliverer.payloads
	result, ok := payload.(*domain.FlightResult)
	require.True(t, ok, "successful search delivers the flight result")
	assert.Equal(t, "SGD 300", result.Price)
}

func TestSearchAndDeliver_FailureDeliversErrorPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agent := browser.NewMockAgent(ctrl)
	agent.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("browser crashed"))

	deliverer := newCapturingDeliverer()
	dispatcher := NewDispatcher(logger.Nop().Logger)
	uc := NewFlightSearchUseCase(nil, agent, deliverer, dispatcher, logger.Nop().Logger)

	uc.SearchAndDeliver(testTrip, "http://example.com/hook")

	require.True(t, dispatcher.Wait(2*time.Second))

	payload := <-deliverer.payloads
	errPayload, ok := payload.(webhook.ErrorPayload)
	require.True(t, ok)
	assert.Equal(t, "No flights found", errPayload.Error)
}

func TestSearchAndDeliver_NoValidPricesErrorMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agent := browser.NewMockAgent(ctrl)
	agent.EXPECT().
		Run(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(offersJSON(t, []domain.FlightOffer{{Price: "null"}}), nil)

	deliverer := newCapturingDeliverer()
	dispatcher := NewDispatcher(logger.Nop().Logger)
	uc := NewFlightSearchUseCase(nil, agent, deliverer, dispatcher, logger.Nop().Logger)

	uc.SearchAndDeliver(testTrip, "http://example.com/hook")

	require.True(t, dispatcher.Wait(2*time.Second))

	payload := <-deliverer.payloads
	errPayload, ok := payload.(webhook.ErrorPayload)
	require.True(t, ok)
	assert.Equal(t, "No flights with valid prices found", errPayload.Error)
}

func TestExtractTrip_DelegatesToExtractor(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	extractor := NewMockIntentExtractor(ctrl)
	extractor.EXPECT().
		Extract(gomock.Any(), "fly me to Tokyo").
		Return(&testTrip, nil)

	uc := NewFlightSearchUseCase(extractor, nil, nil, NewDispatcher(logger.Nop().Logger), logger.Nop().Logger)

	trip, err := uc.ExtractTrip(context.Background(), "fly me to Tokyo")

	require.NoError(t, err)
	assert.Equal(t, testTrip, *trip)
}
