// Package domain contains the core business entities and rules for the
// prompt-driven flight search service. These entities are independent of the
// LLM and browser-automation backends layered around them.
package domain

import (
	"fmt"
	"regexp"
	"time"
)

// TripRequest holds the structured trip parameters extracted from a
// free-text prompt. An empty ReturnDate means a one-way trip.
type TripRequest struct {
	// Origin is the IATA code of the departure airport (e.g., "SIN")
	Origin string `json:"origin"`

	// Destination is the IATA code of the arrival airport (e.g., "NRT")
	Destination string `json:"destination"`

	// DepartureDate is the departure date in YYYY-MM-DD format
	DepartureDate string `json:"departureDate"`

	// ReturnDate is the return date in YYYY-MM-DD format, empty for one-way
	ReturnDate string `json:"returnDate,omitempty"`
}

// airportCodeRegex matches valid IATA airport codes (3 uppercase letters).
var airportCodeRegex = regexp.MustCompile(`^[A-Z]{3}$`)

// dateRegex matches dates in YYYY-MM-DD format.
var dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsRoundTrip reports whether the trip has a return leg.
func (t *TripRequest) IsRoundTrip() bool {
	return t.ReturnDate != ""
}

// Validate checks that the extracted trip parameters are usable.
// Returns a wrapped ErrInvalidRequest error if validation fails.
func (t *TripRequest) Validate() error {
	if t.Origin == "" {
		return fmt.Errorf("%w: origin is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(t.Origin) {
		return fmt.Errorf("%w: origin must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, t.Origin)
	}

	if t.Destination == "" {
		return fmt.Errorf("%w: destination is required", ErrInvalidRequest)
	}
	if !airportCodeRegex.MatchString(t.Destination) {
		return fmt.Errorf("%w: destination must be a valid 3-letter IATA code, got %q", ErrInvalidRequest, t.Destination)
	}

	if t.Origin == t.Destination {
		return fmt.Errorf("%w: origin and destination must be different", ErrInvalidRequest)
	}

	if err := validateDate("departureDate", t.DepartureDate, true); err != nil {
		return err
	}
	if err := validateDate("returnDate", t.ReturnDate, false); err != nil {
		return err
	}

	return nil
}

// validateDate checks a date field is present (when required) and parseable.
func validateDate(field, value string, required bool) error {
	if value == "" {
		if required {
			return fmt.Errorf("%w: %s is required", ErrInvalidRequest, field)
		}
		return nil
	}
	if !dateRegex.MatchString(value) {
		return fmt.Errorf("%w: %s must be in YYYY-MM-DD format, got %q", ErrInvalidRequest, field, value)
	}
	if _, err := time.Parse("2006-01-02", value); err != nil {
		return fmt.Errorf("%w: %s is not a valid date: %s", ErrInvalidRequest, field, value)
	}
	return nil
}
