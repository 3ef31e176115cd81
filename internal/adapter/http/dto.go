package http

// CityDTO is a city in API responses.
type CityDTO struct {
	Name    string `json:"name" example:"Paris"`
	Country string `json:"country" example:"France"`
}

// AirportDTO is an airport in API responses.
type AirportDTO struct {
	Code              string `json:"code" example:"CDG"`
	City              string `json:"city,omitempty" example:"Paris"`
	Name              string `json:"name" example:"Paris Charles de Gaulle"`
	NumberOfTerminals int    `json:"numberOfTerminals" example:"3"`
	Address           string `json:"address" example:"95700 Roissy-en-France, Paris"`
}

// FlightDTO is a flight with the cities of both endpoints.
type FlightDTO struct {
	Number              string  `json:"number" example:"AF100"`
	FromAirport         string  `json:"fromAirport" example:"CDG"`
	FromCity            string  `json:"fromCity" example:"Paris"`
	ToAirport           string  `json:"toAirport" example:"LHR"`
	ToCity              string  `json:"toCity" example:"London"`
	Price               float64 `json:"price" example:"100"`
	FlightTimeInMinutes int     `json:"flightTimeInMinutes" example:"80"`
	Operator            string  `json:"operator" example:"Air France"`
}

// ItineraryDTO is one row of a flight search result.
type ItineraryDTO struct {
	FromAirport         string   `json:"fromAirport" example:"CDG"`
	ToAirport           string   `json:"toAirport" example:"LHR"`
	Flights             []string `json:"flights" example:"AF100"`
	Price               float64  `json:"price" example:"100"`
	FlightTimeInMinutes int      `json:"flightTimeInMinutes" example:"80"`
}
