package domain

//go:generate mockgen -source=store.go -destination=mock_store.go -package=domain

import "context"

// Relationship types used in the graph.
const (
	RelHasAirport      = "HAS_AIRPORT"
	RelLocatedIn       = "LOCATED_IN"
	RelDepartsFrom     = "DEPARTS_FROM"
	RelArrivesAt       = "ARRIVES_AT"
	RelDepartsFromCity = "DEPARTS_FROM_CITY"
	RelArrivesInCity   = "ARRIVES_IN_CITY"
)

// GraphStore is the port to the property-graph database holding City,
// Airport and Flight nodes.
//
// Lookups return ErrNotFound when nothing matches. Every method is atomic with
// respect to the store; implementations must be safe for concurrent use.
type GraphStore interface {
	// UpsertCity merges a City by (name, country) and returns the stored values.
	UpsertCity(ctx context.Context, city City) (City, error)

	// ListCities returns every city, or only those in country if it is non-empty.
	ListCities(ctx context.Context, country string) ([]City, error)

	// GetCity returns the first city with the given name.
	GetCity(ctx context.Context, name string) (City, error)

	// UpsertAirport merges an Airport by code and links it to the named city
	// with HAS_AIRPORT and LOCATED_IN. The city must exist.
	UpsertAirport(ctx context.Context, cityName string, airport Airport) error

	// ListAirports returns the airports reachable from the city over one
	// HAS_AIRPORT hop.
	ListAirports(ctx context.Context, cityName string) ([]Airport, error)

	// GetAirport returns the airport with its containing city.
	GetAirport(ctx context.Context, code string) (Airport, error)

	// FlightExists reports whether a flight with the given number exists.
	FlightExists(ctx context.Context, number string) (bool, error)

	// CreateFlight merges a Flight by number, setting its properties only on
	// creation, and links DEPARTS_FROM and ARRIVES_AT to the airports.
	CreateFlight(ctx context.Context, flight Flight) error

	// GetFlight resolves the flight, both airports and both cities in one
	// traversal.
	GetFlight(ctx context.Context, number string) (FlightDetails, error)

	// CountDepartures counts flights departing from airports located in the city.
	CountDepartures(ctx context.Context, cityName string) (int, error)

	// CountArrivals counts flights arriving at airports located in the city.
	CountArrivals(ctx context.Context, cityName string) (int, error)

	// FindRoutes returns every direct path from an airport located in
	// fromCity to an airport located in toCity.
	FindRoutes(ctx context.Context, fromCity, toCity string) ([]RoutePath, error)

	// DeriveRelationships recomputes the derived LOCATED_IN,
	// DEPARTS_FROM_CITY and ARRIVES_IN_CITY edges. Edges are never removed.
	DeriveRelationships(ctx context.Context) error

	// WipeAll deletes every node and relationship.
	WipeAll(ctx context.Context) error

	// Ping verifies the store is reachable.
	Ping(ctx context.Context) error

	// Close releases the store's resources.
	Close(ctx context.Context) error
}
