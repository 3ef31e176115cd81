// Package testutil provides test helper functions for unit and integration tests.
package testutil

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/flight-search/city-flight-graph/internal/domain"
)

// Reference data shared by tests: Paris and London with one airport each and
// a single flight between them.
var (
	Paris  = domain.City{Name: "Paris", Country: "France"}
	London = domain.City{Name: "London", Country: "UK"}

	CDG = domain.Airport{
		Code:              "CDG",
		Name:              "Charles de Gaulle",
		NumberOfTerminals: 3,
		Address:           "95700 Roissy-en-France",
	}
	LHR = domain.Airport{
		Code:              "LHR",
		Name:              "Heathrow",
		NumberOfTerminals: 4,
		Address:           "Hounslow TW6",
	}

	AF100 = domain.Flight{
		Number:              "AF100",
		FromAirport:         "CDG",
		ToAirport:           "LHR",
		Price:               100,
		FlightTimeInMinutes: 80,
		Operator:            "Air France",
	}
)

// SeedParisLondon writes the reference data into store.
// It fails the test on any store error.
func SeedParisLondon(t *testing.T, store domain.GraphStore) {
	t.Helper()
	ctx := context.Background()

	for _, c := range []domain.City{Paris, London} {
		if _, err := store.UpsertCity(ctx, c); err != nil {
			t.Fatalf("Failed to seed city %s: %v", c.Name, err)
		}
	}
	if err := store.UpsertAirport(ctx, Paris.Name, CDG); err != nil {
		t.Fatalf("Failed to seed airport %s: %v", CDG.Code, err)
	}
	if err := store.UpsertAirport(ctx, London.Name, LHR); err != nil {
		t.Fatalf("Failed to seed airport %s: %v", LHR.Code, err)
	}
	if err := store.CreateFlight(ctx, AF100); err != nil {
		t.Fatalf("Failed to seed flight %s: %v", AF100.Number, err)
	}
	if err := store.DeriveRelationships(ctx); err != nil {
		t.Fatalf("Failed to derive relationships: %v", err)
	}
}

// DecodeJSON unmarshals body into a T. It fails the test if decoding fails.
func DecodeJSON[T any](t *testing.T, body []byte) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(body, &v); err != nil {
		t.Fatalf("Failed to decode %q: %v", body, err)
	}
	return v
}

// Ptr returns a pointer to the given value.
// Useful for creating pointers to literals in tests.
func Ptr[T any](v T) *T {
	return &v
}
