package usecase

import (
	"context"
	"fmt"

	"github.com/flight-search/city-flight-graph/internal/domain"
)

// RouteFinder searches direct flights between cities.
type RouteFinder interface {
	// FindFlights returns every single-flight itinerary from an airport in
	// fromCity to an airport in toCity, cheapest first.
	//
	// It fails with a not-found error if no flight departs from fromCity or
	// none arrives at toCity; these checks run in that order.
	FindFlights(ctx context.Context, fromCity, toCity string) ([]domain.Itinerary, error)
}

type routeFinder struct {
	store domain.GraphStore
	cfg   Config
}

// NewRouteFinder creates a RouteFinder backed by store.
// If config is nil, default values are used.
func NewRouteFinder(store domain.GraphStore, config *Config) RouteFinder {
	return &routeFinder{
		store: store,
		cfg:   resolveConfig(config),
	}
}

func (rf *routeFinder) FindFlights(ctx context.Context, fromCity, toCity string) ([]domain.Itinerary, error) {
	if fromCity == "" || toCity == "" {
		return nil, domain.NewValidationError("both departure and arrival city are required")
	}

	ctx, cancel := rf.cfg.withTimeout(ctx)
	defer cancel()

	departures, err := rf.store.CountDepartures(ctx, fromCity)
	if err != nil {
		return nil, fmt.Errorf("count departures from %q: %w", fromCity, err)
	}
	if departures == 0 {
		return nil, domain.NewNotFoundError(fmt.Sprintf("No flights found departing from %s.", fromCity))
	}

	arrivals, err := rf.store.CountArrivals(ctx, toCity)
	if err != nil {
		return nil, fmt.Errorf("count arrivals at %q: %w", toCity, err)
	}
	if arrivals == 0 {
		return nil, domain.NewNotFoundError(fmt.Sprintf("No flights arriving at %s.", toCity))
	}

	paths, err := rf.store.FindRoutes(ctx, fromCity, toCity)
	if err != nil {
		return nil, fmt.Errorf("find routes %q -> %q: %w", fromCity, toCity, err)
	}

	return BuildItineraries(paths), nil
}

var _ RouteFinder = (*routeFinder)(nil)
