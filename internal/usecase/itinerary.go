package usecase

import (
	"sort"

	"github.com/flight-search/city-flight-graph/internal/domain"
)

// BuildItineraries aggregates every path into an itinerary and orders the
// result by ascending price. Paths with equal price keep the order the store
// returned them in. The input is not modified.
func BuildItineraries(paths []domain.RoutePath) []domain.Itinerary {
	itineraries := make([]domain.Itinerary, 0, len(paths))
	for _, p := range paths {
		itineraries = append(itineraries, domain.NewItinerary(p))
	}

	sort.SliceStable(itineraries, func(i, j int) bool {
		return itineraries[i].Price < itineraries[j].Price
	})
	return itineraries
}
