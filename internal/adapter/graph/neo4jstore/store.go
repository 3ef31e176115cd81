// Package neo4jstore implements domain.GraphStore on top of Neo4j using the
// official Bolt driver. Every operation runs in its own session and managed
// transaction, so the driver's connection pool is the only shared state.
package neo4jstore

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/flight-search/city-flight-graph/internal/domain"
)

// Config holds the connection settings for a Neo4j store.
type Config struct {
	// URI is the Bolt URI (e.g., "bolt://localhost:7687")
	URI string

	// Username and Password are used for basic auth; an empty username
	// disables authentication.
	Username string
	Password string

	// Database selects the target database; empty uses the server default.
	Database string

	// MaxConnectionPoolSize caps open connections; zero keeps the driver default.
	MaxConnectionPoolSize int
}

// Store is a Neo4j-backed domain.GraphStore.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
}

// New creates a driver for the configured server. It does not connect;
// call Ping to verify connectivity.
func New(cfg Config) (*Store, error) {
	auth := neo4j.NoAuth()
	if cfg.Username != "" {
		auth = neo4j.BasicAuth(cfg.Username, cfg.Password, "")
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, auth, func(c *neo4j.Config) {
		if cfg.MaxConnectionPoolSize > 0 {
			c.MaxConnectionPoolSize = cfg.MaxConnectionPoolSize
		}
	})
	if err != nil {
		return nil, fmt.Errorf("create neo4j driver: %w", err)
	}

	return &Store{driver: driver, database: cfg.Database}, nil
}

// work is a unit of work run inside a managed transaction.
type work[T any] func(ctx context.Context, tx neo4j.ManagedTransaction) (T, error)

func execute[T any](ctx context.Context, s *Store, op string, mode neo4j.AccessMode, fn work[T]) (T, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{
		DatabaseName: s.database,
		AccessMode:   mode,
	})
	defer session.Close(ctx)

	txFn := func(tx neo4j.ManagedTransaction) (any, error) {
		return fn(ctx, tx)
	}

	var (
		out any
		err error
	)
	if mode == neo4j.AccessModeRead {
		out, err = session.ExecuteRead(ctx, txFn)
	} else {
		out, err = session.ExecuteWrite(ctx, txFn)
	}

	var zero T
	if err != nil {
		return zero, domain.NewStoreError(op, err)
	}
	result, ok := out.(T)
	if !ok {
		return zero, nil
	}
	return result, nil
}

func read[T any](ctx context.Context, s *Store, op string, fn work[T]) (T, error) {
	return execute(ctx, s, op, neo4j.AccessModeRead, fn)
}

func write[T any](ctx context.Context, s *Store, op string, fn work[T]) (T, error) {
	return execute(ctx, s, op, neo4j.AccessModeWrite, fn)
}

// collect runs a statement and returns all records.
func collect(ctx context.Context, tx neo4j.ManagedTransaction, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	res, err := tx.Run(ctx, cypher, params)
	if err != nil {
		return nil, err
	}
	return res.Collect(ctx)
}

// first runs a statement and returns its first record, or ErrNotFound.
func first(ctx context.Context, tx neo4j.ManagedTransaction, cypher string, params map[string]any) (*neo4j.Record, error) {
	records, err := collect(ctx, tx, cypher, params)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, domain.ErrNotFound
	}
	return records[0], nil
}

// exec runs a statement and discards its records.
func exec(ctx context.Context, tx neo4j.ManagedTransaction, cypher string, params map[string]any) error {
	res, err := tx.Run(ctx, cypher, params)
	if err != nil {
		return err
	}
	_, err = res.Consume(ctx)
	return err
}

// UpsertCity implements domain.GraphStore.
func (s *Store) UpsertCity(ctx context.Context, city domain.City) (domain.City, error) {
	return write(ctx, s, "UpsertCity", func(ctx context.Context, tx neo4j.ManagedTransaction) (domain.City, error) {
		rec, err := first(ctx, tx, cypherUpsertCity, map[string]any{
			"name":    city.Name,
			"country": city.Country,
		})
		if err != nil {
			return domain.City{}, err
		}
		return cityFromRecord(rec), nil
	})
}

// ListCities implements domain.GraphStore.
func (s *Store) ListCities(ctx context.Context, country string) ([]domain.City, error) {
	var filter any
	if country != "" {
		filter = country
	}
	return read(ctx, s, "ListCities", func(ctx context.Context, tx neo4j.ManagedTransaction) ([]domain.City, error) {
		records, err := collect(ctx, tx, cypherListCities, map[string]any{"country": filter})
		if err != nil {
			return nil, err
		}
		cities := make([]domain.City, 0, len(records))
		for _, rec := range records {
			cities = append(cities, cityFromRecord(rec))
		}
		return cities, nil
	})
}

// GetCity implements domain.GraphStore.
func (s *Store) GetCity(ctx context.Context, name string) (domain.City, error) {
	return read(ctx, s, "GetCity", func(ctx context.Context, tx neo4j.ManagedTransaction) (domain.City, error) {
		rec, err := first(ctx, tx, cypherGetCity, map[string]any{"name": name})
		if err != nil {
			return domain.City{}, err
		}
		return cityFromRecord(rec), nil
	})
}

// UpsertAirport implements domain.GraphStore.
func (s *Store) UpsertAirport(ctx context.Context, cityName string, airport domain.Airport) error {
	_, err := write(ctx, s, "UpsertAirport", func(ctx context.Context, tx neo4j.ManagedTransaction) (struct{}, error) {
		rec, err := first(ctx, tx, cypherUpsertAirport, map[string]any{
			"city":              cityName,
			"code":              airport.Code,
			"name":              airport.Name,
			"numberOfTerminals": airport.NumberOfTerminals,
			"address":           airport.Address,
		})
		if err != nil {
			return struct{}{}, err
		}
		if toInt(value(rec, "linked")) == 0 {
			return struct{}{}, domain.ErrNotFound
		}
		return struct{}{}, nil
	})
	return err
}

// ListAirports implements domain.GraphStore.
func (s *Store) ListAirports(ctx context.Context, cityName string) ([]domain.Airport, error) {
	return read(ctx, s, "ListAirports", func(ctx context.Context, tx neo4j.ManagedTransaction) ([]domain.Airport, error) {
		records, err := collect(ctx, tx, cypherListAirports, map[string]any{"city": cityName})
		if err != nil {
			return nil, err
		}
		airports := make([]domain.Airport, 0, len(records))
		for _, rec := range records {
			airports = append(airports, airportFromRecord(rec))
		}
		return airports, nil
	})
}

// GetAirport implements domain.GraphStore.
func (s *Store) GetAirport(ctx context.Context, code string) (domain.Airport, error) {
	return read(ctx, s, "GetAirport", func(ctx context.Context, tx neo4j.ManagedTransaction) (domain.Airport, error) {
		rec, err := first(ctx, tx, cypherGetAirport, map[string]any{"code": code})
		if err != nil {
			return domain.Airport{}, err
		}
		return airportFromRecord(rec), nil
	})
}

// FlightExists implements domain.GraphStore.
func (s *Store) FlightExists(ctx context.Context, number string) (bool, error) {
	return read(ctx, s, "FlightExists", func(ctx context.Context, tx neo4j.ManagedTransaction) (bool, error) {
		rec, err := first(ctx, tx, cypherFlightExists, map[string]any{"number": number})
		if err != nil {
			return false, err
		}
		found, _ := value(rec, "found").(bool)
		return found, nil
	})
}

// CreateFlight implements domain.GraphStore.
func (s *Store) CreateFlight(ctx context.Context, flight domain.Flight) error {
	_, err := write(ctx, s, "CreateFlight", func(ctx context.Context, tx neo4j.ManagedTransaction) (struct{}, error) {
		records, err := collect(ctx, tx, cypherCreateFlight, map[string]any{
			"number":              flight.Number,
			"price":               flight.Price,
			"flightTimeInMinutes": flight.FlightTimeInMinutes,
			"operator":            flight.Operator,
			"fromCode":            flight.FromAirport,
			"toCode":              flight.ToAirport,
		})
		if err != nil {
			return struct{}{}, err
		}
		if len(records) == 0 {
			return struct{}{}, domain.ErrConflict
		}
		return struct{}{}, nil
	})
	return err
}

// GetFlight implements domain.GraphStore.
func (s *Store) GetFlight(ctx context.Context, number string) (domain.FlightDetails, error) {
	return read(ctx, s, "GetFlight", func(ctx context.Context, tx neo4j.ManagedTransaction) (domain.FlightDetails, error) {
		rec, err := first(ctx, tx, cypherGetFlight, map[string]any{"number": number})
		if err != nil {
			return domain.FlightDetails{}, err
		}
		return domain.FlightDetails{
			Flight: domain.Flight{
				Number:              toString(value(rec, "number")),
				FromAirport:         toString(value(rec, "fromAirport")),
				ToAirport:           toString(value(rec, "toAirport")),
				Price:               toFloat(value(rec, "price")),
				FlightTimeInMinutes: toInt(value(rec, "flightTimeInMinutes")),
				Operator:            toString(value(rec, "operator")),
			},
			FromCity: toString(value(rec, "fromCity")),
			ToCity:   toString(value(rec, "toCity")),
		}, nil
	})
}

func (s *Store) count(ctx context.Context, op, cypher, cityName string) (int, error) {
	return read(ctx, s, op, func(ctx context.Context, tx neo4j.ManagedTransaction) (int, error) {
		rec, err := first(ctx, tx, cypher, map[string]any{"city": cityName})
		if err != nil {
			return 0, err
		}
		return toInt(value(rec, "flights")), nil
	})
}

// CountDepartures implements domain.GraphStore.
func (s *Store) CountDepartures(ctx context.Context, cityName string) (int, error) {
	return s.count(ctx, "CountDepartures", cypherCountDepartures, cityName)
}

// CountArrivals implements domain.GraphStore.
func (s *Store) CountArrivals(ctx context.Context, cityName string) (int, error) {
	return s.count(ctx, "CountArrivals", cypherCountArrivals, cityName)
}

// FindRoutes implements domain.GraphStore.
func (s *Store) FindRoutes(ctx context.Context, fromCity, toCity string) ([]domain.RoutePath, error) {
	return read(ctx, s, "FindRoutes", func(ctx context.Context, tx neo4j.ManagedTransaction) ([]domain.RoutePath, error) {
		records, err := collect(ctx, tx, cypherFindRoutes, map[string]any{
			"fromCity": fromCity,
			"toCity":   toCity,
		})
		if err != nil {
			return nil, err
		}
		paths := make([]domain.RoutePath, 0, len(records))
		for _, rec := range records {
			paths = append(paths, routeFromRecord(rec))
		}
		return paths, nil
	})
}

// DeriveRelationships implements domain.GraphStore.
func (s *Store) DeriveRelationships(ctx context.Context) error {
	_, err := write(ctx, s, "DeriveRelationships", func(ctx context.Context, tx neo4j.ManagedTransaction) (struct{}, error) {
		for _, cypher := range []string{
			cypherDeriveLocatedIn,
			cypherDeriveDepartsFromCity,
			cypherDeriveArrivesInCity,
		} {
			if err := exec(ctx, tx, cypher, nil); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	return err
}

// WipeAll implements domain.GraphStore.
func (s *Store) WipeAll(ctx context.Context) error {
	_, err := write(ctx, s, "WipeAll", func(ctx context.Context, tx neo4j.ManagedTransaction) (struct{}, error) {
		return struct{}{}, exec(ctx, tx, cypherWipeAll, nil)
	})
	return err
}

// Ping implements domain.GraphStore.
func (s *Store) Ping(ctx context.Context) error {
	return domain.NewStoreError("Ping", s.driver.VerifyConnectivity(ctx))
}

// Close implements domain.GraphStore.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

var _ domain.GraphStore = (*Store)(nil)
