package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTripRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		trip    TripRequest
		wantErr bool
	}{
		{
			name: "valid one-way trip",
			trip: TripRequest{
				Origin:        "SIN",
				Destination:   "NRT",
				DepartureDate: "2026-09-11",
			},
			wantErr: false,
		},
		{
			name: "valid round trip",
			trip: TripRequest{
				Origin:        "SIN",
				Destination:   "NRT",
				DepartureDate: "2026-09-11",
				ReturnDate:    "2026-09-18",
			},
			wantErr: false,
		},
		{
			name: "missing origin",
			trip: TripRequest{
				Destination:   "NRT",
				DepartureDate: "2026-09-11",
			},
			wantErr: true,
		},
		{
			name: "lowercase origin",
			trip: TripRequest{
				Origin:        "sin",
				Destination:   "NRT",
				DepartureDate: "2026-09-11",
			},
			wantErr: true,
		},
		{
			name: "origin equals destination",
			trip: TripRequest{
				Origin:        "SIN",
				Destination:   "SIN",
				DepartureDate: "2026-09-11",
			},
			wantErr: true,
		},
		{
			name: "missing departure date",
			trip: TripRequest{
				Origin:      "SIN",
				Destination: "NRT",
			},
			wantErr: true,
		},
		{
			name: "malformed departure date",
			trip: TripRequest{
				Origin:        "SIN",
				Destination:   "NRT",
				DepartureDate: "11/09/2026",
			},
			wantErr: true,
		},
		{
			name: "impossible calendar date",
			trip: TripRequest{
				Origin:        "SIN",
				Destination:   "NRT",
				DepartureDate: "2026-02-30",
			},
			wantErr: true,
		},
		{
			name: "malformed return date",
			trip: TripRequest{
				Origin:        "SIN",
				Destination:   "NRT",
				DepartureDate: "2026-09-11",
				ReturnDate:    "next week",
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.trip.Validate()

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTripRequest_IsRoundTrip(t *testing.T) {
	oneWay := TripRequest{Origin: "SIN", Destination: "NRT", DepartureDate: "2026-09-11"}
	assert.False(t, oneWay.IsRoundTrip())

	round := oneWay
	round.ReturnDate = "2026-09-18"
	assert.True(t, round.IsRoundTrip())
}
