package domain

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// FlightOffer is one scraped flight itinerary. All fields are strings in
// whatever shape the results page rendered them; parsing into comparable
// values happens here, not in the scraper.
type FlightOffer struct {
	// Price is the currency-tagged price string (e.g., "SGD 1,234")
	Price string `json:"price"`

	// FlightDuration is the total duration string (e.g., "7h 30m")
	FlightDuration string `json:"flight_duration"`

	// Stops is the stop-count string (e.g., "Nonstop", "1 stop", "2 stops")
	Stops string `json:"stops"`

	// Airlines is the operating airline(s) (e.g., "Singapore Airlines, SilkAir")
	Airlines string `json:"airlines"`

	// DepartureTime is the scheduled departure time (e.g., "10:00 AM")
	DepartureTime string `json:"departure_time"`

	// ArrivalTime is the scheduled arrival time (e.g., "5:30 PM")
	ArrivalTime string `json:"arrival_time"`

	// FlightNumber is the flight number(s), if shown (e.g., "SQ123 / MI456")
	FlightNumber string `json:"flight_number"`

	// LayoverDetails describes layover location and duration for multi-stop
	// itineraries (e.g., "Hong Kong (HKG), 2h 00m")
	LayoverDetails string `json:"layover_details"`
}

// FlightResult is the response payload derived from the cheapest valid offer.
type FlightResult struct {
	Airline        string `json:"airline"`
	DepartureTime  string `json:"departure_time"`
	ArrivalTime    string `json:"arrival_time"`
	FlightDuration string `json:"flight_duration"`
	NumberOfStops  int    `json:"number_of_stops"`
	Price          string `json:"price"`
}

// priceAmountRegex matches the first run of digits with optional thousands
// separators (e.g., "1,234" in "SGD 1,234").
var priceAmountRegex = regexp.MustCompile(`\d[\d,]*`)

// stopCountRegex matches the first integer substring in a stops string.
var stopCountRegex = regexp.MustCompile(`\d+`)

// nullPrice is the literal placeholder some result pages render for
// unavailable prices.
const nullPrice = "null"

// HasValidPrice reports whether the offer carries a usable price string:
// non-empty and not the literal "null" (case-insensitive).
func (o *FlightOffer) HasValidPrice() bool {
	return o.Price != "" && !strings.EqualFold(o.Price, nullPrice)
}

// PriceAmount extracts a comparable numeric amount from the price string.
// The first digit run (with optional comma separators) is taken, separators
// stripped, and the remainder parsed as a decimal number. Offers with no
// extractable digits return (+Inf, false) so they sort last and are never
// chosen over a parseable offer.
func (o *FlightOffer) PriceAmount() (float64, bool) {
	match := priceAmountRegex.FindString(o.Price)
	if match == "" {
		return math.Inf(1), false
	}
	amount, err := strconv.ParseFloat(strings.ReplaceAll(match, ",", ""), 64)
	if err != nil {
		return math.Inf(1), false
	}
	return amount, true
}

// StopCount derives the number of stops from the scraped stops string.
// "Nonstop" (any case) maps to 0; otherwise the first integer substring is
// used; if none is found the count defaults to 0.
func (o *FlightOffer) StopCount() int {
	if strings.EqualFold(strings.TrimSpace(o.Stops), "nonstop") {
		return 0
	}
	match := stopCountRegex.FindString(o.Stops)
	if match == "" {
		return 0
	}
	count, err := strconv.Atoi(match)
	if err != nil {
		return 0
	}
	return count
}

// ToResult derives the response payload from the offer.
func (o *FlightOffer) ToResult() FlightResult {
	return FlightResult{
		Airline:        o.Airlines,
		DepartureTime:  o.DepartureTime,
		ArrivalTime:    o.ArrivalTime,
		FlightDuration: o.FlightDuration,
		NumberOfStops:  o.StopCount(),
		Price:          o.Price,
	}
}
