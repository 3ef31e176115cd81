package integration

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flight-search/city-flight-graph/internal/adapter/graph"
	"github.com/flight-search/city-flight-graph/internal/adapter/graph/memory"
	"github.com/flight-search/city-flight-graph/internal/domain"
	"github.com/flight-search/city-flight-graph/internal/usecase"
	"github.com/flight-search/city-flight-graph/test/mock"
	"github.com/flight-search/city-flight-graph/test/testutil"
)

// newUseCases builds the use cases over a guarded, fault-injecting memory store.
func newUseCases(config *usecase.Config, breaker graph.BreakerConfig) (usecase.Registrar, usecase.RouteFinder, *mock.Store) {
	faults := mock.NewStore(memory.New())
	store := graph.Guard(faults, breaker, nil, zerolog.Nop())
	return usecase.NewRegistrar(store, config), usecase.NewRouteFinder(store, config), faults
}

func TestUseCase_RegisterAndSearch(t *testing.T) {
	reg, finder, _ := newUseCases(nil, graph.BreakerConfig{})
	ctx := context.Background()

	_, err := reg.UpsertCity(ctx, testutil.Paris)
	require.NoError(t, err)
	_, err = reg.UpsertCity(ctx, testutil.London)
	require.NoError(t, err)

	airport, err := reg.CreateAirport(ctx, "Paris", testutil.CDG)
	require.NoError(t, err)
	assert.Equal(t, "Paris", airport.City)
	_, err = reg.CreateAirport(ctx, "London", testutil.LHR)
	require.NoError(t, err)

	_, err = reg.CreateFlight(ctx, testutil.AF100)
	require.NoError(t, err)

	itineraries, err := finder.FindFlights(ctx, "Paris", "London")
	require.NoError(t, err)
	assert.Equal(t, []domain.Itinerary{{
		FromAirport:         "CDG",
		ToAirport:           "LHR",
		Flights:             []string{"AF100"},
		Price:               100,
		FlightTimeInMinutes: 80,
	}}, itineraries)

	details, err := reg.GetFlight(ctx, "AF100")
	require.NoError(t, err)
	assert.Equal(t, "Paris", details.FromCity)
	assert.Equal(t, "London", details.ToCity)
}

func TestUseCase_DuplicateFlightKeepsOriginal(t *testing.T) {
	reg, _, _ := newUseCases(nil, graph.BreakerConfig{})
	ctx := context.Background()

	for _, c := range []domain.City{testutil.Paris, testutil.London} {
		_, err := reg.UpsertCity(ctx, c)
		require.NoError(t, err)
	}
	_, err := reg.CreateAirport(ctx, "Paris", testutil.CDG)
	require.NoError(t, err)
	_, err = reg.CreateAirport(ctx, "London", testutil.LHR)
	require.NoError(t, err)
	_, err = reg.CreateFlight(ctx, testutil.AF100)
	require.NoError(t, err)

	changed := testutil.AF100
	changed.Price = 1
	_, err = reg.CreateFlight(ctx, changed)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrConflict)

	details, err := reg.GetFlight(ctx, "AF100")
	require.NoError(t, err)
	assert.Equal(t, 100.0, details.Price)
}

func TestUseCase_DeriveRunsAfterEveryWrite(t *testing.T) {
	reg, _, faults := newUseCases(nil, graph.BreakerConfig{})
	ctx := context.Background()

	_, err := reg.UpsertCity(ctx, testutil.Paris)
	require.NoError(t, err)
	assert.Equal(t, 1, faults.CallCount("DeriveRelationships"))

	_, err = reg.CreateAirport(ctx, "Paris", testutil.CDG)
	require.NoError(t, err)
	assert.Equal(t, 2, faults.CallCount("DeriveRelationships"))

	_, err = reg.UpsertCity(ctx, testutil.London)
	require.NoError(t, err)
	_, err = reg.CreateAirport(ctx, "London", testutil.LHR)
	require.NoError(t, err)
	_, err = reg.CreateFlight(ctx, testutil.AF100)
	require.NoError(t, err)
	assert.Equal(t, 5, faults.CallCount("DeriveRelationships"))

	// Rejected writes do not derive.
	_, err = reg.CreateFlight(ctx, testutil.AF100)
	require.Error(t, err)
	_, err = reg.UpsertCity(ctx, domain.City{Name: "Rome"})
	require.Error(t, err)
	assert.Equal(t, 5, faults.CallCount("DeriveRelationships"))
}

func TestUseCase_Timeout(t *testing.T) {
	reg, finder, faults := newUseCases(&usecase.Config{OperationTimeout: 30 * time.Millisecond}, graph.BreakerConfig{})
	faults.WithDelay("CountDepartures", time.Second)

	_, err := finder.FindFlights(context.Background(), "Paris", "London")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// Other operations are unaffected.
	_, err = reg.UpsertCity(context.Background(), testutil.Paris)
	assert.NoError(t, err)
}

func TestUseCase_CallerCancellation(t *testing.T) {
	_, finder, faults := newUseCases(nil, graph.BreakerConfig{})
	faults.WithDelay(mock.AllOps, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(20 * time.Millisecond)
		cancel()
	}()

	_, err := finder.FindFlights(ctx, "Paris", "London")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestUseCase_BreakerRejectsAfterFailures(t *testing.T) {
	reg, finder, faults := newUseCases(nil, FastBreaker())
	faults.WithError(mock.AllOps, errors.New("service unavailable"))
	ctx := context.Background()

	_, err := reg.ListCities(ctx, "")
	require.Error(t, err)
	_, err = reg.ListCities(ctx, "")
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = finder.FindFlights(ctx, "Paris", "London")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	assert.Equal(t, 0, faults.CallCount("CountDepartures"))
}

func TestUseCase_WipeAll(t *testing.T) {
	reg, finder, _ := newUseCases(nil, graph.BreakerConfig{})
	ctx := context.Background()

	for _, c := range []domain.City{testutil.Paris, testutil.London} {
		_, err := reg.UpsertCity(ctx, c)
		require.NoError(t, err)
	}
	_, err := reg.CreateAirport(ctx, "Paris", testutil.CDG)
	require.NoError(t, err)
	_, err = reg.CreateAirport(ctx, "London", testutil.LHR)
	require.NoError(t, err)
	_, err = reg.CreateFlight(ctx, testutil.AF100)
	require.NoError(t, err)

	require.NoError(t, reg.WipeAll(ctx))

	cities, err := reg.ListCities(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, cities)

	_, err = finder.FindFlights(ctx, "Paris", "London")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
