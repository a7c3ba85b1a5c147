package http

import (
	"github.com/promptflight/prompt-flight-search/internal/domain"
)

// FlightResultDTO is the data transfer object for the cheapest-flight
// response, with snake_case fields per the API contract.
type FlightResultDTO struct {
	Airline        string `json:"airline"`
	DepartureTime  string `json:"departure_time"`
	ArrivalTime    string `json:"arrival_time"`
	FlightDuration string `json:"flight_duration"`
	NumberOfStops  int    `json:"number_of_stops"`
	Price          string `json:"price"`
}

// ToFlightResultDTO converts a domain FlightResult to its DTO.
func ToFlightResultDTO(result *domain.FlightResult) *FlightResultDTO {
	if result == nil {
		return nil
	}
	return &FlightResultDTO{
		Airline:        result.Airline,
		DepartureTime:  result.DepartureTime,
		ArrivalTime:    result.ArrivalTime,
		FlightDuration: result.FlightDuration,
		NumberOfStops:  result.NumberOfStops,
		Price:          result.Price,
	}
}
