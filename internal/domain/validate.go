package domain

import "strings"

// Client-facing validation messages.
const (
	MsgCityInvalid    = "Could not register the city, it exists or mandatory attributes are missing"
	MsgAirportInvalid = "Airport could not be created due to missing data or city the airport is registered in is not registered in the system"
	MsgFlightInvalid  = "Flight could not be created due to missing data"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// Validate checks that both key fields are present.
func (c City) Validate() error {
	if blank(c.Name) || blank(c.Country) {
		return NewValidationError(MsgCityInvalid)
	}
	return nil
}

// Validate checks that every airport field is present. A zero terminal count
// counts as missing.
func (a Airport) Validate() error {
	if blank(a.Code) || blank(a.Name) || blank(a.Address) || a.NumberOfTerminals <= 0 {
		return NewValidationError(MsgAirportInvalid)
	}
	return nil
}

// Validate checks that every flight field is present. Zero price and zero
// flight time count as missing.
func (f Flight) Validate() error {
	if blank(f.Number) || blank(f.FromAirport) || blank(f.ToAirport) || blank(f.Operator) ||
		f.Price <= 0 || f.FlightTimeInMinutes <= 0 {
		return NewValidationError(MsgFlightInvalid)
	}
	return nil
}
