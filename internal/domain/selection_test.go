package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheapestOffer(t *testing.T) {
	tests := []struct {
		name      string
		offers    []FlightOffer
		wantPrice string
		wantErr   error
	}{
		{
			name: "picks minimum parsed price",
			offers: []FlightOffer{
				{Price: "SGD 500", Airlines: "A"},
				{Price: "SGD 300", Airlines: "B"},
				{Price: "SGD 450", Airlines: "C"},
			},
			wantPrice: "SGD 300",
		},
		{
			name: "skips literal null prices",
			offers: []FlightOffer{
				{Price: "SGD 500"},
				{Price: "null"},
				{Price: "SGD 300"},
			},
			wantPrice: "SGD 300",
		},
		{
			name: "unparseable price sorts last",
			offers: []FlightOffer{
				{Price: "SGD null"},
				{Price: "SGD 300"},
			},
			wantPrice: "SGD 300",
		},
		{
			name: "tie broken by input order",
			offers: []FlightOffer{
				{Price: "SGD 300", Airlines: "first"},
				{Price: "SGD 300", Airlines: "second"},
			},
			wantPrice: "SGD 300",
		},
		{
			name:    "empty input",
			offers:  nil,
			wantErr: ErrNoValidPrices,
		},
		{
			name: "all prices null or empty",
			offers: []FlightOffer{
				{Price: "null"},
				{Price: ""},
				{Price: "NULL"},
			},
			wantErr: ErrNoValidPrices,
		},
		{
			name: "no candidate contains digits",
			offers: []FlightOffer{
				{Price: "unavailable"},
				{Price: "SGD null"},
			},
			wantErr: ErrNoParseablePrices,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offer, err := CheapestOffer(tt.offers)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantPrice, offer.Price)
		})
	}
}

func TestCheapestOffer_TieReturnsFirstOccurrence(t *testing.T) {
	offers := []FlightOffer{
		{Price: "USD 200", Airlines: "first"},
		{Price: "USD 200", Airlines: "second"},
		{Price: "USD 200", Airlines: "third"},
	}

	offer, err := CheapestOffer(offers)

	require.NoError(t, err)
	assert.Equal(t, "first", offer.Airlines)
}
