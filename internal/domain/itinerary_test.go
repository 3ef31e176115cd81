package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewItinerary(t *testing.T) {
	tests := []struct {
		name      string
		path      RoutePath
		wantNums  []string
		wantPrice float64
		wantTime  int
	}{
		{
			name: "single flight",
			path: RoutePath{
				FromAirport: "CDG",
				ToAirport:   "LHR",
				Flights:     []Flight{{Number: "AF100", Price: 100, FlightTimeInMinutes: 80}},
			},
			wantNums:  []string{"AF100"},
			wantPrice: 100,
			wantTime:  80,
		},
		{
			name: "sums over flights",
			path: RoutePath{
				FromAirport: "CDG",
				ToAirport:   "JFK",
				Flights: []Flight{
					{Number: "AF100", Price: 100.5, FlightTimeInMinutes: 80},
					{Number: "BA117", Price: 420.25, FlightTimeInMinutes: 460},
				},
			},
			wantNums:  []string{"AF100", "BA117"},
			wantPrice: 520.75,
			wantTime:  540,
		},
		{
			name:      "no flights",
			path:      RoutePath{FromAirport: "CDG", ToAirport: "LHR"},
			wantNums:  []string{},
			wantPrice: 0,
			wantTime:  0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			it := NewItinerary(tt.path)
			assert.Equal(t, tt.path.FromAirport, it.FromAirport)
			assert.Equal(t, tt.path.ToAirport, it.ToAirport)
			assert.Equal(t, tt.wantNums, it.Flights)
			assert.InDelta(t, tt.wantPrice, it.Price, 1e-9)
			assert.Equal(t, tt.wantTime, it.FlightTimeInMinutes)
		})
	}
}
