// Package graph wires graph store adapters: it selects a driver, verifies the
// connection at startup and guards every call with a circuit breaker and
// Prometheus metrics.
package graph

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/flight-search/city-flight-graph/internal/domain"
)

// BreakerConfig configures the circuit breaker in front of the store.
type BreakerConfig struct {
	// Enabled turns the breaker on; when false calls go straight through
	Enabled bool

	// MaxRequests is the number of trial calls allowed while half-open
	MaxRequests uint32

	// Interval is the cyclic period after which closed-state counts reset
	Interval time.Duration

	// Timeout is how long the breaker stays open before going half-open
	Timeout time.Duration

	// FailureRatio trips the breaker once reached, given MinRequests calls
	FailureRatio float64

	// MinRequests is the minimum number of calls before FailureRatio applies
	MinRequests uint32
}

// DefaultBreakerConfig returns the breaker settings used when none are configured.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		Enabled:      true,
		MaxRequests:  5,
		Interval:     30 * time.Second,
		Timeout:      60 * time.Second,
		FailureRatio: 0.8,
		MinRequests:  5,
	}
}

// GuardedStore decorates a domain.GraphStore with a circuit breaker and metrics.
type GuardedStore struct {
	next    domain.GraphStore
	cb      *gobreaker.CircuitBreaker
	metrics *Metrics
}

// Guard wraps next. metrics may be nil.
func Guard(next domain.GraphStore, cfg BreakerConfig, metrics *Metrics, log zerolog.Logger) *GuardedStore {
	g := &GuardedStore{next: next, metrics: metrics}
	if !cfg.Enabled {
		return g
	}

	g.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "graph-store",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			return ratio >= cfg.FailureRatio
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("Circuit breaker state changed")
		},
		IsSuccessful: isSuccessful,
	})
	return g
}

// isSuccessful decides which errors count against the breaker. Lookups that
// match nothing and callers giving up are not store failures.
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrNotFound) ||
		errors.Is(err, domain.ErrConflict) ||
		errors.Is(err, context.Canceled)
}

func outcomeOf(err error) string {
	switch {
	case err == nil:
		return outcomeSuccess
	case errors.Is(err, domain.ErrNotFound):
		return outcomeNotFound
	case errors.Is(err, domain.ErrConflict):
		return outcomeConflict
	case errors.Is(err, domain.ErrStoreUnavailable):
		return outcomeRejected
	default:
		return outcomeError
	}
}

func call[T any](g *GuardedStore, op string, fn func() (T, error)) (T, error) {
	start := time.Now()

	var (
		out T
		err error
	)
	if g.cb == nil {
		out, err = fn()
	} else {
		var v any
		v, err = g.cb.Execute(func() (any, error) {
			return fn()
		})
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%w: %v", domain.ErrStoreUnavailable, err)
		}
		if typed, ok := v.(T); ok {
			out = typed
		}
	}

	g.metrics.observe(op, outcomeOf(err), time.Since(start))
	return out, err
}

func callErr(g *GuardedStore, op string, fn func() error) error {
	_, err := call(g, op, func() (struct{}, error) {
		return struct{}{}, fn()
	})
	return err
}

// UpsertCity implements domain.GraphStore.
func (g *GuardedStore) UpsertCity(ctx context.Context, city domain.City) (domain.City, error) {
	return call(g, "UpsertCity", func() (domain.City, error) {
		return g.next.UpsertCity(ctx, city)
	})
}

// ListCities implements domain.GraphStore.
func (g *GuardedStore) ListCities(ctx context.Context, country string) ([]domain.City, error) {
	return call(g, "ListCities", func() ([]domain.City, error) {
		return g.next.ListCities(ctx, country)
	})
}

// GetCity implements domain.GraphStore.
func (g *GuardedStore) GetCity(ctx context.Context, name string) (domain.City, error) {
	return call(g, "GetCity", func() (domain.City, error) {
		return g.next.GetCity(ctx, name)
	})
}

// UpsertAirport implements domain.GraphStore.
func (g *GuardedStore) UpsertAirport(ctx context.Context, cityName string, airport domain.Airport) error {
	return callErr(g, "UpsertAirport", func() error {
		return g.next.UpsertAirport(ctx, cityName, airport)
	})
}

// ListAirports implements domain.GraphStore.
func (g *GuardedStore) ListAirports(ctx context.Context, cityName string) ([]domain.Airport, error) {
	return call(g, "ListAirports", func() ([]domain.Airport, error) {
		return g.next.ListAirports(ctx, cityName)
	})
}

// GetAirport implements domain.GraphStore.
func (g *GuardedStore) GetAirport(ctx context.Context, code string) (domain.Airport, error) {
	return call(g, "GetAirport", func() (domain.Airport, error) {
		return g.next.GetAirport(ctx, code)
	})
}

// FlightExists implements domain.GraphStore.
func (g *GuardedStore) FlightExists(ctx context.Context, number string) (bool, error) {
	return call(g, "FlightExists", func() (bool, error) {
		return g.next.FlightExists(ctx, number)
	})
}

// CreateFlight implements domain.GraphStore.
func (g *GuardedStore) CreateFlight(ctx context.Context, flight domain.Flight) error {
	return callErr(g, "CreateFlight", func() error {
		return g.next.CreateFlight(ctx, flight)
	})
}

// GetFlight implements domain.GraphStore.
func (g *GuardedStore) GetFlight(ctx context.Context, number string) (domain.FlightDetails, error) {
	return call(g, "GetFlight", func() (domain.FlightDetails, error) {
		return g.next.GetFlight(ctx, number)
	})
}

// CountDepartures implements domain.GraphStore.
func (g *GuardedStore) CountDepartures(ctx context.Context, cityName string) (int, error) {
	return call(g, "CountDepartures", func() (int, error) {
		return g.next.CountDepartures(ctx, cityName)
	})
}

// CountArrivals implements domain.GraphStore.
func (g *GuardedStore) CountArrivals(ctx context.Context, cityName string) (int, error) {
	return call(g, "CountArrivals", func() (int, error) {
		return g.next.CountArrivals(ctx, cityName)
	})
}

// FindRoutes implements domain.GraphStore.
func (g *GuardedStore) FindRoutes(ctx context.Context, fromCity, toCity string) ([]domain.RoutePath, error) {
	return call(g, "FindRoutes", func() ([]domain.RoutePath, error) {
		return g.next.FindRoutes(ctx, fromCity, toCity)
	})
}

// DeriveRelationships implements domain.GraphStore.
func (g *GuardedStore) DeriveRelationships(ctx context.Context) error {
	return callErr(g, "DeriveRelationships", func() error {
		return g.next.DeriveRelationships(ctx)
	})
}

// WipeAll implements domain.GraphStore.
func (g *GuardedStore) WipeAll(ctx context.Context) error {
	return callErr(g, "WipeAll", func() error {
		return g.next.WipeAll(ctx)
	})
}

// Ping implements domain.GraphStore.
func (g *GuardedStore) Ping(ctx context.Context) error {
	return callErr(g, "Ping", func() error {
		return g.next.Ping(ctx)
	})
}

// Close implements domain.GraphStore. It bypasses the breaker.
func (g *GuardedStore) Close(ctx context.Context) error {
	return g.next.Close(ctx)
}

var _ domain.GraphStore = (*GuardedStore)(nil)
