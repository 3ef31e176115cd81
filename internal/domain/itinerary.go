package domain

// RoutePath is one matched City→Airport→Flight→Airport→City chain as returned
// by the store, before aggregation.
type RoutePath struct {
	// FromAirport is the code of the first airport on the path
	FromAirport string

	// ToAirport is the code of the last airport on the path
	ToAirport string

	// Flights are the flights along the path, in traversal order
	Flights []Flight
}

// Itinerary is an aggregated search result for one path.
type Itinerary struct {
	// FromAirport is the departure airport code
	FromAirport string `json:"fromAirport"`

	// ToAirport is the arrival airport code
	ToAirport string `json:"toAirport"`

	// Flights lists the flight numbers along the route
	Flights []string `json:"flights"`

	// Price is the sum of the flight prices
	Price float64 `json:"price"`

	// FlightTimeInMinutes is the sum of the flight times
	FlightTimeInMinutes int `json:"flightTimeInMinutes"`
}

// NewItinerary aggregates a RoutePath into an Itinerary by summing price and
// flight time over every flight on the path.
func NewItinerary(p RoutePath) Itinerary {
	it := Itinerary{
		FromAirport: p.FromAirport,
		ToAirport:   p.ToAirport,
		Flights:     make([]string, 0, len(p.Flights)),
	}
	for _, f := range p.Flights {
		it.Flights = append(it.Flights, f.Number)
		it.Price += f.Price
		it.FlightTimeInMinutes += f.FlightTimeInMinutes
	}
	return it
}
