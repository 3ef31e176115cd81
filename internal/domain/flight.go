package domain

// Flight is a graph node keyed by its number, linked to a departure and an
// arrival Airport.
type Flight struct {
	// Number is the flight number (e.g., "AF100")
	Number string `json:"number"`

	// FromAirport is the departure airport code
	FromAirport string `json:"fromAirport"`

	// ToAirport is the arrival airport code
	ToAirport string `json:"toAirport"`

	// Price is the ticket price
	Price float64 `json:"price"`

	// FlightTimeInMinutes is the scheduled flight time
	FlightTimeInMinutes int `json:"flightTimeInMinutes"`

	// Operator is the operating airline
	Operator string `json:"operator"`
}

// FlightDetails is a Flight resolved together with the cities of both
// endpoint airports.
type FlightDetails struct {
	Flight

	// FromCity is the city containing the departure airport
	FromCity string `json:"fromCity"`

	// ToCity is the city containing the arrival airport
	ToCity string `json:"toCity"`
}
