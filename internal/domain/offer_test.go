package domain

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlightOffer_StopCount(t *testing.T) {
	tests := []struct {
		name  string
		stops string
		want  int
	}{
		{
			name:  "nonstop lowercase",
			stops: "nonstop",
			want:  0,
		},
		{
			name:  "nonstop mixed case",
			stops: "NonStop",
			want:  0,
		},
		{
			name:  "nonstop with surrounding spaces",
			stops: "  Nonstop ",
			want:  0,
		},
		{
			name:  "single stop",
			stops: "1 stop",
			want:  1,
		},
		{
			name:  "two stops",
			stops: "2 stops",
			want:  2,
		},
		{
			name:  "integer embedded in text",
			stops: "via 3 cities",
			want:  3,
		},
		{
			name:  "no digits defaults to zero",
			stops: "Direct",
			want:  0,
		},
		{
			name:  "empty string defaults to zero",
			stops: "",
			want:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := FlightOffer{Stops: tt.stops}
			assert.Equal(t, tt.want, offer.StopCount())
		})
	}
}

func TestFlightOffer_PriceAmount(t *testing.T) {
	tests := []struct {
		name       string
		price      string
		wantAmount float64
		wantOK     bool
	}{
		{
			name:       "currency prefix with thousands separator",
			price:      "SGD 1,234",
			wantAmount: 1234.0,
			wantOK:     true,
		},
		{
			name:       "plain digits",
			price:      "500",
			wantAmount: 500.0,
			wantOK:     true,
		},
		{
			name:       "currency prefix without separator",
			price:      "USD 780",
			wantAmount: 780.0,
			wantOK:     true,
		},
		{
			name:       "large amount with multiple separators",
			price:      "IDR 1,500,000",
			wantAmount: 1500000.0,
			wantOK:     true,
		},
		{
			name:       "symbol prefix",
			price:      "$1,080",
			wantAmount: 1080.0,
			wantOK:     true,
		},
		{
			name:   "no digits",
			price:  "unavailable",
			wantOK: false,
		},
		{
			name:   "empty string",
			price:  "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := FlightOffer{Price: tt.price}
			amount, ok := offer.PriceAmount()

			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantAmount, amount)
			} else {
				assert.True(t, math.IsInf(amount, 1), "unparseable price should sort last")
			}
		})
	}
}

func TestFlightOffer_HasValidPrice(t *testing.T) {
	tests := []struct {
		name  string
		price string
		want  bool
	}{
		{name: "valid price", price: "SGD 300", want: true},
		{name: "empty price", price: "", want: false},
		{name: "literal null lowercase", price: "null", want: false},
		{name: "literal null uppercase", price: "NULL", want: false},
		{name: "literal null mixed case", price: "Null", want: false},
		{name: "price containing null word is valid", price: "SGD null", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer := FlightOffer{Price: tt.price}
			assert.Equal(t, tt.want, offer.HasValidPrice())
		})
	}
}

func TestFlightOffer_ToResult(t *testing.T) {
	offer := FlightOffer{
		Price:          "SGD 450",
		FlightDuration: "7h 10m",
		Stops:          "2 stops",
		Airlines:       "Singapore Airlines, SilkAir",
		DepartureTime:  "10:00 AM",
		ArrivalTime:    "5:30 PM",
		FlightNumber:   "SQ123 / MI456",
		LayoverDetails: "Hong Kong (HKG), 2h 00m",
	}

	result := offer.ToResult()

	assert.Equal(t, "Singapore Airlines, SilkAir", result.Airline)
	assert.Equal(t, "10:00 AM", result.DepartureTime)
	assert.Equal(t, "5:30 PM", result.ArrivalTime)
	assert.Equal(t, "7h 10m", result.FlightDuration)
	assert.Equal(t, 2, result.NumberOfStops)
	assert.Equal(t, "SGD 450", result.Price)
}
