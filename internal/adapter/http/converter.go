package http

import (
	"github.com/flight-search/city-flight-graph/internal/domain"
)

// ToDomainCity converts a CityRequest to domain.City.
func ToDomainCity(req *CityRequest) domain.City {
	return domain.City{
		Name:    req.Name,
		Country: req.Country,
	}
}

// ToDomainAirport converts an AirportRequest to domain.Airport.
func ToDomainAirport(req *AirportRequest) domain.Airport {
	return domain.Airport{
		Code:              req.Code,
		Name:              req.Name,
		NumberOfTerminals: req.NumberOfTerminals,
		Address:           req.Address,
	}
}

// ToDomainFlight converts a FlightRequest to domain.Flight.
func ToDomainFlight(req *FlightRequest) domain.Flight {
	return domain.Flight{
		Number:              req.Number,
		FromAirport:         req.FromAirport,
		ToAirport:           req.ToAirport,
		Price:               req.Price,
		FlightTimeInMinutes: req.FlightTimeInMinutes,
		Operator:            req.Operator,
	}
}

// ToCityDTO converts a domain.City to its response form.
func ToCityDTO(c domain.City) CityDTO {
	return CityDTO{Name: c.Name, Country: c.Country}
}

// ToCityDTOs converts cities, returning an empty slice for no input.
func ToCityDTOs(cities []domain.City) []CityDTO {
	out := make([]CityDTO, 0, len(cities))
	for _, c := range cities {
		out = append(out, ToCityDTO(c))
	}
	return out
}

// ToAirportDTO converts a domain.Airport to its response form.
func ToAirportDTO(a domain.Airport) AirportDTO {
	return AirportDTO{
		Code:              a.Code,
		City:              a.City,
		Name:              a.Name,
		NumberOfTerminals: a.NumberOfTerminals,
		Address:           a.Address,
	}
}

// ToAirportDTOs converts airports, returning an empty slice for no input.
func ToAirportDTOs(airports []domain.Airport) []AirportDTO {
	out := make([]AirportDTO, 0, len(airports))
	for _, a := range airports {
		out = append(out, ToAirportDTO(a))
	}
	return out
}

// ToFlightDTO converts resolved flight details to their response form.
func ToFlightDTO(f domain.FlightDetails) FlightDTO {
	return FlightDTO{
		Number:              f.Number,
		FromAirport:         f.FromAirport,
		FromCity:            f.FromCity,
		ToAirport:           f.ToAirport,
		ToCity:              f.ToCity,
		Price:               f.Price,
		FlightTimeInMinutes: f.FlightTimeInMinutes,
		Operator:            f.Operator,
	}
}

// ToItineraryDTOs converts search results, preserving their order.
func ToItineraryDTOs(its []domain.Itinerary) []ItineraryDTO {
	out := make([]ItineraryDTO, 0, len(its))
	for _, it := range its {
		flights := it.Flights
		if flights == nil {
			flights = []string{}
		}
		out = append(out, ItineraryDTO{
			FromAirport:         it.FromAirport,
			ToAirport:           it.ToAirport,
			Flights:             flights,
			Price:               it.Price,
			FlightTimeInMinutes: it.FlightTimeInMinutes,
		})
	}
	return out
}
