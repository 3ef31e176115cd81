// Package mock provides test doubles for the city flight graph.
// Store wraps a real domain.GraphStore and lets integration tests inject
// errors and delays into individual operations.
package mock

import (
	"context"
	"sync"
	"time"

	"github.com/flight-search/city-flight-graph/internal/domain"
)

// AllOps matches every store operation in WithError and WithDelay.
const AllOps = "*"

// Store is a fault-injecting decorator over a domain.GraphStore.
// Operations are named after the GraphStore methods (e.g. "FindRoutes").
type Store struct {
	next domain.GraphStore

	mu     sync.Mutex
	errs   map[string]error
	delays map[string]time.Duration
	calls  map[string]int
}

// NewStore wraps next. With nothing configured every call goes straight through.
func NewStore(next domain.GraphStore) *Store {
	return &Store{
		next:   next,
		errs:   make(map[string]error),
		delays: make(map[string]time.Duration),
		calls:  make(map[string]int),
	}
}

// WithError makes op fail with err. Use AllOps to fail every operation.
func (s *Store) WithError(op string, err error) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs[op] = err
	return s
}

// WithDelay makes op wait d before running, or until its context is done.
func (s *Store) WithDelay(op string, d time.Duration) *Store {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.delays[op] = d
	return s
}

// CallCount returns how many times op was called, failed calls included.
func (s *Store) CallCount(op string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls[op]
}

// Reset clears injected faults and call counts.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.errs = make(map[string]error)
	s.delays = make(map[string]time.Duration)
	s.calls = make(map[string]int)
}

func (s *Store) lookup(op string) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls[op]++

	err, ok := s.errs[op]
	if !ok {
		err = s.errs[AllOps]
	}
	delay, ok := s.delays[op]
	if !ok {
		delay = s.delays[AllOps]
	}
	return delay, err
}

// before applies the faults configured for op. A non-nil result is returned
// to the caller instead of calling the wrapped store.
func (s *Store) before(ctx context.Context, op string) error {
	delay, err := s.lookup(op)

	if delay > 0 {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	return err
}

func (s *Store) UpsertCity(ctx context.Context, city domain.City) (domain.City, error) {
	if err := s.before(ctx, "UpsertCity"); err != nil {
		return domain.City{}, err
	}
	return s.next.UpsertCity(ctx, city)
}

func (s *Store) ListCities(ctx context.Context, country string) ([]domain.City, error) {
	if err := s.before(ctx, "ListCities"); err != nil {
		return nil, err
	}
	return s.next.ListCities(ctx, country)
}

func (s *Store) GetCity(ctx context.Context, name string) (domain.City, error) {
	if err := s.before(ctx, "GetCity"); err != nil {
		return domain.City{}, err
	}
	return s.next.GetCity(ctx, name)
}

func (s *Store) UpsertAirport(ctx context.Context, cityName string, airport domain.Airport) error {
	if err := s.before(ctx, "UpsertAirport"); err != nil {
		return err
	}
	return s.next.UpsertAirport(ctx, cityName, airport)
}

func (s *Store) ListAirports(ctx context.Context, cityName string) ([]domain.Airport, error) {
	if err := s.before(ctx, "ListAirports"); err != nil {
		return nil, err
	}
	return s.next.ListAirports(ctx, cityName)
}

func (s *Store) GetAirport(ctx context.Context, code string) (domain.Airport, error) {
	if err := s.before(ctx, "GetAirport"); err != nil {
		return domain.Airport{}, err
	}
	return s.next.GetAirport(ctx, code)
}

func (s *Store) FlightExists(ctx context.Context, number string) (bool, error) {
	if err := s.before(ctx, "FlightExists"); err != nil {
		return false, err
	}
	return s.next.FlightExists(ctx, number)
}

func (s *Store) CreateFlight(ctx context.Context, flight domain.Flight) error {
	if err := s.before(ctx, "CreateFlight"); err != nil {
		return err
	}
	return s.next.CreateFlight(ctx, flight)
}

func (s *Store) GetFlight(ctx context.Context, number string) (domain.FlightDetails, error) {
	if err := s.before(ctx, "GetFlight"); err != nil {
		return domain.FlightDetails{}, err
	}
	return s.next.GetFlight(ctx, number)
}

func (s *Store) CountDepartures(ctx context.Context, cityName string) (int, error) {
	if err := s.before(ctx, "CountDepartures"); err != nil {
		return 0, err
	}
	return s.next.CountDepartures(ctx, cityName)
}

func (s *Store) CountArrivals(ctx context.Context, cityName string) (int, error) {
	if err := s.before(ctx, "CountArrivals"); err != nil {
		return 0, err
	}
	return s.next.CountArrivals(ctx, cityName)
}

func (s *Store) FindRoutes(ctx context.Context, fromCity, toCity string) ([]domain.RoutePath, error) {
	if err := s.before(ctx, "FindRoutes"); err != nil {
		return nil, err
	}
	return s.next.FindRoutes(ctx, fromCity, toCity)
}

func (s *Store) DeriveRelationships(ctx context.Context) error {
	if err := s.before(ctx, "DeriveRelationships"); err != nil {
		return err
	}
	return s.next.DeriveRelationships(ctx)
}

func (s *Store) WipeAll(ctx context.Context) error {
	if err := s.before(ctx, "WipeAll"); err != nil {
		return err
	}
	return s.next.WipeAll(ctx)
}

func (s *Store) Ping(ctx context.Context) error {
	if err := s.before(ctx, "Ping"); err != nil {
		return err
	}
	return s.next.Ping(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	return s.next.Close(ctx)
}

// Ensure Store implements domain.GraphStore at compile time.
var _ domain.GraphStore = (*Store)(nil)
