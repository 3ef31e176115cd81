// Package domain contains the core entities of the city/airport/flight graph
// and the port through which they are persisted.
// Entities here are storage-agnostic; adapters translate them to graph nodes.
package domain

// City is a graph node keyed by name and country.
type City struct {
	// Name is the city name (e.g., "Paris")
	Name string `json:"name"`

	// Country is the country the city belongs to (e.g., "France")
	Country string `json:"country"`
}

// Airport is a graph node keyed by its code and contained in exactly one City.
type Airport struct {
	// Code is the airport code (e.g., "CDG")
	Code string `json:"code"`

	// City is the name of the containing city. Populated on reads only.
	City string `json:"city,omitempty"`

	// Name is the airport's display name
	Name string `json:"name"`

	// NumberOfTerminals is the number of passenger terminals
	NumberOfTerminals int `json:"numberOfTerminals"`

	// Address is the postal address of the airport
	Address string `json:"address"`
}
