package integration

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	graphhttp "github.com/flight-search/city-flight-graph/internal/adapter/http"
	"github.com/flight-search/city-flight-graph/test/testutil"
)

// TestConcurrent_SearchRequests fires concurrent searches at the same data
// and checks that every request sees the same answer.
func TestConcurrent_SearchRequests(t *testing.T) {
	ts := NewTestServer(t, nil)
	ts.SeedOverHTTP(t)

	numRequests := 20
	var wg sync.WaitGroup
	results := make([]Response, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = ts.Get("/search/flights/Paris/London")
		}(i)
	}
	wg.Wait()

	for i, resp := range results {
		require.Equal(t, http.StatusOK, resp.Code, "request %d should succeed", i)
		got := testutil.DecodeJSON[[]graphhttp.ItineraryDTO](t, resp.Body)
		require.Len(t, got, 1, "request %d", i)
		assert.Equal(t, []string{"AF100"}, got[0].Flights)
	}

	assert.Equal(t, numRequests, ts.Faults.CallCount("FindRoutes"))
}

// TestConcurrent_Writes registers one airport and one outbound flight per
// goroutine and checks nothing is lost or duplicated.
func TestConcurrent_Writes(t *testing.T) {
	ts := NewTestServer(t, nil)
	ts.SeedOverHTTP(t)

	numWriters := 10
	var wg sync.WaitGroup
	codes := make([]int, numWriters)

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			airport := fmt.Sprintf("P%02d", idx)
			resp := ts.Put("/cities/Paris/airports", AirportBody{
				Code: airport, Name: "Paris Field " + airport, NumberOfTerminals: 1, Address: "Ile-de-France",
			})
			if resp.Code != http.StatusNoContent {
				codes[idx] = resp.Code
				return
			}
			resp = ts.Put("/flights", FlightBody{
				Number:              fmt.Sprintf("PX%02d", idx),
				FromAirport:         airport,
				ToAirport:           "LHR",
				Price:               float64(200 - idx),
				FlightTimeInMinutes: 60,
				Operator:            "Paris Express",
			})
			codes[idx] = resp.Code
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		assert.Equal(t, http.StatusNoContent, code, "writer %d", i)
	}

	resp := ts.Get("/cities/Paris/airports")
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Len(t, testutil.DecodeJSON[[]graphhttp.AirportDTO](t, resp.Body), numWriters+1)

	resp = ts.Get("/search/flights/Paris/London")
	require.Equal(t, http.StatusOK, resp.Code)
	got := testutil.DecodeJSON[[]graphhttp.ItineraryDTO](t, resp.Body)
	require.Len(t, got, numWriters+1)

	for i := 1; i < len(got); i++ {
		assert.LessOrEqual(t, got[i-1].Price, got[i].Price, "results must be sorted by price")
	}
	assert.Equal(t, []string{"AF100"}, got[0].Flights)
}

// TestConcurrent_DuplicateFlight races writers on the same flight number
// with different arrival airports. Exactly one wins and the flight keeps a
// single arrival afterwards.
func TestConcurrent_DuplicateFlight(t *testing.T) {
	ts := NewTestServer(t, nil)
	ts.SeedOverHTTP(t)
	require.Equal(t, http.StatusNoContent, ts.Put("/cities/London/airports", AirportBody{
		Code: "LCY", Name: "City", NumberOfTerminals: 1, Address: "Docklands",
	}).Code)

	arrivals := []string{"LHR", "LCY"}
	numWriters := 8
	var wg sync.WaitGroup
	codes := make([]int, numWriters)

	for i := 0; i < numWriters; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			codes[idx] = ts.Put("/flights", FlightBody{
				Number: "RACE1", FromAirport: "CDG", ToAirport: arrivals[idx%2],
				Price: float64(50 + idx), FlightTimeInMinutes: 75, Operator: "Racer",
			}).Code
		}(i)
	}
	wg.Wait()

	created := 0
	for _, code := range codes {
		switch code {
		case http.StatusNoContent:
			created++
		default:
			assert.Equal(t, http.StatusBadRequest, code)
		}
	}
	assert.Equal(t, 1, created)

	resp := ts.Get("/search/flights/Paris/London")
	require.Equal(t, http.StatusOK, resp.Code)
	got := testutil.DecodeJSON[[]graphhttp.ItineraryDTO](t, resp.Body)

	race := 0
	for _, it := range got {
		if it.Flights[0] == "RACE1" {
			race++
		}
	}
	assert.Equal(t, 1, race)
}

// TestConcurrent_SearchDuringCleanup runs searches while the graph is wiped.
// Every search either sees the data or a clean 404.
func TestConcurrent_SearchDuringCleanup(t *testing.T) {
	ts := NewTestServer(t, nil)
	ts.SeedOverHTTP(t)

	numRequests := 10
	var wg sync.WaitGroup
	codes := make([]int, numRequests)

	for i := 0; i < numRequests; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			codes[idx] = ts.Get("/search/flights/Paris/London").Code
		}(i)
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		ts.Post("/cleanup")
	}()
	wg.Wait()

	for i, code := range codes {
		assert.Contains(t, []int{http.StatusOK, http.StatusNotFound}, code, "request %d", i)
	}

	resp := ts.Get("/search/flights/Paris/London")
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
