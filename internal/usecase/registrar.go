package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/flight-search/city-flight-graph/internal/domain"
	"github.com/flight-search/city-flight-graph/internal/infrastructure/logger"
)

// Client-facing messages for registrar failures.
const (
	MsgCityNotFound        = "City not found"
	MsgAirportNotFound     = "Airport not found"
	MsgNoAirportsInCity    = "No airports found in the specified city"
	MsgFlightNotFound      = "Flight not found."
	MsgFlightAirportsUnset = "Flight could not be created because one or both airports do not exist."
	MsgFlightExists        = "Flight with the given number already exists."
)

// Registrar creates and looks up cities, airports and flights.
type Registrar interface {
	// UpsertCity merges the city by (name, country) and re-derives relationships.
	UpsertCity(ctx context.Context, city domain.City) (domain.City, error)

	// ListCities returns all cities, optionally filtered by exact country.
	ListCities(ctx context.Context, country string) ([]domain.City, error)

	// GetCity returns the city with the given name.
	GetCity(ctx context.Context, name string) (domain.City, error)

	// CreateAirport registers an airport in an existing city, merging by code.
	CreateAirport(ctx context.Context, cityName string, airport domain.Airport) (domain.Airport, error)

	// ListAirports returns the airports of a city.
	ListAirports(ctx context.Context, cityName string) ([]domain.Airport, error)

	// GetAirport returns an airport and its containing city.
	GetAirport(ctx context.Context, code string) (domain.Airport, error)

	// CreateFlight registers a flight between two existing airports.
	CreateFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error)

	// GetFlight returns a flight with its endpoint airports and cities.
	GetFlight(ctx context.Context, number string) (domain.FlightDetails, error)

	// DeriveRelationships recomputes derived edges on demand.
	DeriveRelationships(ctx context.Context) error

	// WipeAll deletes every entity.
	WipeAll(ctx context.Context) error
}

type registrar struct {
	store domain.GraphStore
	cfg   Config
}

// NewRegistrar creates a Registrar backed by store.
// If config is nil, default values are used.
func NewRegistrar(store domain.GraphStore, config *Config) Registrar {
	return &registrar{
		store: store,
		cfg:   resolveConfig(config),
	}
}

// derive refreshes the derived edges after a primary write. A failure does not
// undo the write; the next write or an explicit derivation catches up.
func (r *registrar) derive(ctx context.Context, trigger string) {
	if err := r.store.DeriveRelationships(ctx); err != nil {
		logger.Warn().
			Err(err).
			Str("trigger", trigger).
			Msg("Relationship derivation failed")
	}
}

func (r *registrar) UpsertCity(ctx context.Context, city domain.City) (domain.City, error) {
	if err := city.Validate(); err != nil {
		return domain.City{}, err
	}

	ctx, cancel := r.cfg.withTimeout(ctx)
	defer cancel()

	stored, err := r.store.UpsertCity(ctx, city)
	if err != nil {
		return domain.City{}, fmt.Errorf("upsert city %q: %w", city.Name, err)
	}

	r.derive(ctx, "city")
	return stored, nil
}

func (r *registrar) ListCities(ctx context.Context, country string) ([]domain.City, error) {
	ctx, cancel := r.cfg.withTimeout(ctx)
	defer cancel()

	cities, err := r.store.ListCities(ctx, country)
	if err != nil {
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return cities, nil
}

func (r *registrar) GetCity(ctx context.Context, name string) (domain.City, error) {
	ctx, cancel := r.cfg.withTimeout(ctx)
	defer cancel()

	city, err := r.store.GetCity(ctx, name)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.City{}, domain.NewNotFoundError(MsgCityNotFound)
	}
	if err != nil {
		return domain.City{}, fmt.Errorf("get city %q: %w", name, err)
	}
	return city, nil
}

func (r *registrar) CreateAirport(ctx context.Context, cityName string, airport domain.Airport) (domain.Airport, error) {
	if err := airport.Validate(); err != nil {
		return domain.Airport{}, err
	}

	ctx, cancel := r.cfg.withTimeout(ctx)
	defer cancel()

	if _, err := r.store.GetCity(ctx, cityName); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.Airport{}, domain.NewNotFoundError(MsgCityNotFound)
		}
		return domain.Airport{}, fmt.Errorf("get city %q: %w", cityName, err)
	}

	err := r.store.UpsertAirport(ctx, cityName, airport)
	if errors.Is(err, domain.ErrNotFound) {
		// The city vanished between the check and the write.
		return domain.Airport{}, domain.NewNotFoundError(MsgCityNotFound)
	}
	if err != nil {
		return domain.Airport{}, fmt.Errorf("upsert airport %q: %w", airport.Code, err)
	}

	r.derive(ctx, "airport")
	airport.City = cityName
	return airport, nil
}

func (r *registrar) ListAirports(ctx context.Context, cityName string) ([]domain.Airport, error) {
	ctx, cancel := r.cfg.withTimeout(ctx)
	defer cancel()

	if _, err := r.store.GetCity(ctx, cityName); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewNotFoundError(MsgCityNotFound)
		}
		return nil, fmt.Errorf("get city %q: %w", cityName, err)
	}

	airports, err := r.store.ListAirports(ctx, cityName)
	if err != nil {
		return nil, fmt.Errorf("list airports of %q: %w", cityName, err)
	}
	if len(airports) == 0 {
		return nil, domain.NewNotFoundError(MsgNoAirportsInCity)
	}

	for i := range airports {
		airports[i].Name = strings.TrimSpace(airports[i].Name)
	}
	return airports, nil
}

func (r *registrar) GetAirport(ctx context.Context, code string) (domain.Airport, error) {
	ctx, cancel := r.cfg.withTimeout(ctx)
	defer cancel()

	airport, err := r.store.GetAirport(ctx, code)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.Airport{}, domain.NewNotFoundError(MsgAirportNotFound)
	}
	if err != nil {
		return domain.Airport{}, fmt.Errorf("get airport %q: %w", code, err)
	}

	airport.Name = strings.TrimSpace(airport.Name)
	return airport, nil
}

func (r *registrar) CreateFlight(ctx context.Context, flight domain.Flight) (domain.Flight, error) {
	if err := flight.Validate(); err != nil {
		return domain.Flight{}, err
	}

	ctx, cancel := r.cfg.withTimeout(ctx)
	defer cancel()

	for _, code := range []string{flight.FromAirport, flight.ToAirport} {
		if _, err := r.store.GetAirport(ctx, code); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return domain.Flight{}, domain.NewValidationError(MsgFlightAirportsUnset)
			}
			return domain.Flight{}, fmt.Errorf("get airport %q: %w", code, err)
		}
	}

	exists, err := r.store.FlightExists(ctx, flight.Number)
	if err != nil {
		return domain.Flight{}, fmt.Errorf("check flight %q: %w", flight.Number, err)
	}
	if exists {
		return domain.Flight{}, domain.NewConflictError(MsgFlightExists)
	}

	if err := r.store.CreateFlight(ctx, flight); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.Flight{}, domain.NewConflictError(MsgFlightExists)
		}
		return domain.Flight{}, fmt.Errorf("create flight %q: %w", flight.Number, err)
	}

	r.derive(ctx, "flight")
	return flight, nil
}

func (r *registrar) GetFlight(ctx context.Context, number string) (domain.FlightDetails, error) {
	ctx, cancel := r.cfg.withTimeout(ctx)
	defer cancel()

	details, err := r.store.GetFlight(ctx, number)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.FlightDetails{}, domain.NewNotFoundError(MsgFlightNotFound)
	}
	if err != nil {
		return domain.FlightDetails{}, fmt.Errorf("get flight %q: %w", number, err)
	}
	return details, nil
}

func (r *registrar) DeriveRelationships(ctx context.Context) error {
	ctx, cancel := r.cfg.withTimeout(ctx)
	defer cancel()

	if err := r.store.DeriveRelationships(ctx); err != nil {
		return fmt.Errorf("derive relationships: %w", err)
	}
	return nil
}

func (r *registrar) WipeAll(ctx context.Context) error {
	ctx, cancel := r.cfg.withTimeout(ctx)
	defer cancel()

	if err := r.store.WipeAll(ctx); err != nil {
		return fmt.Errorf("wipe graph: %w", err)
	}
	return nil
}

var _ Registrar = (*registrar)(nil)
