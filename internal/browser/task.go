package browser

import (
	"encoding/json"
	"fmt"

	"github.com/promptflight/prompt-flight-search/internal/domain"
)

// flightsSearchURL is the results page the agent is pointed at.
const flightsSearchURL = "https://www.google.com/travel/flights/search"

// OffersSchema is the output schema the automation service enforces on the
// agent's final result: an object with a "flights" array of offers carrying
// the eight extraction fields.
var OffersSchema = json.RawMessage(`{
	"type": "object",
	"properties": {
		"flights": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"price": {"type": "string"},
					"flight_duration": {"type": "string"},
					"stops": {"type": "string"},
					"airlines": {"type": "string"},
					"departure_time": {"type": "string"},
					"arrival_time": {"type": "string"},
					"flight_number": {"type": "string"},
					"layover_details": {"type": "string"}
				},
				"required": ["price", "flight_duration", "stops", "airlines", "departure_time", "arrival_time", "flight_number", "layover_details"]
			}
		}
	},
	"required": ["flights"]
}`)

// BuildTask renders the multi-step task description for one trip. One-way vs
// round-trip is encoded entirely in the instruction text: when no return date
// is present the agent is told to flip the trip-type control and skip the
// return-date field.
func BuildTask(trip domain.TripRequest) string {
	var returnInstruction string
	if trip.IsRoundTrip() {
		returnInstruction = fmt.Sprintf(
			"then enter the return date `%s` into its corresponding field and confirm the selection in the calendar",
			trip.ReturnDate,
		)
	} else {
		returnInstruction = "this is a one-way search: locate and select the 'One-way' radio button or dropdown option and omit the return date entirely"
	}

	return fmt.Sprintf(
		"First, navigate to the URL: `%s`. Upon loading, locate the 'Where from' field, input %s, "+
			"and select the suggested origin from the autocomplete list. Next, locate the 'Where to' field, input %s, "+
			"and select the suggested destination. Choose the departure date `%s` in the calendar and confirm the selection; %s. "+
			"After all fields are populated, locate and click the primary 'Search' or 'Find flights' button. "+
			"Once the results page has fully loaded and all loading spinners have settled, iterate through each individual flight listing. "+
			"For each listing, extract: the price including currency (e.g., 'SGD 500'), the total flight duration (e.g., '7h 30m'), "+
			"the number of stops (e.g., 'Nonstop', '1 stop', '2 stops'), the operating airline(s) (e.g., 'Singapore Airlines, SilkAir'), "+
			"the scheduled departure time (e.g., '10:00 AM'), the scheduled arrival time (e.g., '5:30 PM'), "+
			"the flight number(s) if available (e.g., 'SQ123 / MI456'), and for flights with stops the layover location and duration "+
			"for each segment (e.g., 'Hong Kong (HKG), 2h 00m'). "+
			"Finally, compile all extracted flights into a JSON object with a \"flights\" array where each element uses the keys "+
			"price, flight_duration, stops, airlines, departure_time, arrival_time, flight_number, layover_details.",
		flightsSearchURL, trip.Origin, trip.Destination, trip.DepartureDate, returnInstruction,
	)
}
