package neo4jstore

import (
	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/flight-search/city-flight-graph/internal/domain"
)

func value(rec *neo4j.Record, key string) any {
	v, _ := rec.Get(key)
	return v
}

func toString(v any) string {
	s, _ := v.(string)
	return s
}

// toInt accepts the integer and float encodings Bolt may return.
func toInt(v any) int {
	switch n := v.(type) {
	case int64:
		return int(n)
	case float64:
		return int(n)
	}
	return 0
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	}
	return 0
}

func cityFromRecord(rec *neo4j.Record) domain.City {
	return domain.City{
		Name:    toString(value(rec, "name")),
		Country: toString(value(rec, "country")),
	}
}

func airportFromRecord(rec *neo4j.Record) domain.Airport {
	return domain.Airport{
		Code:              toString(value(rec, "code")),
		City:              toString(value(rec, "city")),
		Name:              toString(value(rec, "name")),
		NumberOfTerminals: toInt(value(rec, "numberOfTerminals")),
		Address:           toString(value(rec, "address")),
	}
}

func flightFromMap(m map[string]any) domain.Flight {
	return domain.Flight{
		Number:              toString(m["number"]),
		Price:               toFloat(m["price"]),
		FlightTimeInMinutes: toInt(m["flightTimeInMinutes"]),
		Operator:            toString(m["operator"]),
	}
}

func routeFromRecord(rec *neo4j.Record) domain.RoutePath {
	path := domain.RoutePath{
		FromAirport: toString(value(rec, "fromAirport")),
		ToAirport:   toString(value(rec, "toAirport")),
	}
	raw, _ := value(rec, "flights").([]any)
	path.Flights = make([]domain.Flight, 0, len(raw))
	for _, item := range raw {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		f := flightFromMap(m)
		f.FromAirport = path.FromAirport
		f.ToAirport = path.ToAirport
		path.Flights = append(path.Flights, f)
	}
	return path
}
