// Package memory implements domain.GraphStore as an in-process adjacency
// graph. It follows the same match/merge semantics as the Neo4j adapter and
// is used for tests and single-node deployments without a database.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/flight-search/city-flight-graph/internal/domain"
)

const (
	labelCity    = "City"
	labelAirport = "Airport"
	labelFlight  = "Flight"
)

type node struct {
	id      int64
	label   string
	city    domain.City
	airport domain.Airport
	flight  domain.Flight
}

type edgeKey struct {
	rel  string
	from int64
	to   int64
}

// adjacency maps node id -> relationship type -> neighbour ids in insertion order.
type adjacency map[int64]map[string][]int64

func (a adjacency) add(from int64, rel string, to int64) {
	byRel, ok := a[from]
	if !ok {
		byRel = make(map[string][]int64)
		a[from] = byRel
	}
	byRel[rel] = append(byRel[rel], to)
}

func (a adjacency) get(id int64, rel string) []int64 {
	return a[id][rel]
}

func (a adjacency) remove(from int64, rel string, to int64) {
	ids := a[from][rel]
	for i, id := range ids {
		if id == to {
			a[from][rel] = append(ids[:i:i], ids[i+1:]...)
			return
		}
	}
}

// Store is an in-memory domain.GraphStore.
type Store struct {
	mu     sync.RWMutex
	nextID int64
	nodes  map[int64]*node
	order  []int64
	edges  map[edgeKey]struct{}
	out    adjacency
	in     adjacency
}

// New creates an empty in-memory graph.
func New() *Store {
	s := &Store{}
	s.reset()
	return s
}

func (s *Store) reset() {
	s.nextID = 0
	s.nodes = make(map[int64]*node)
	s.order = nil
	s.edges = make(map[edgeKey]struct{})
	s.out = make(adjacency)
	s.in = make(adjacency)
}

func (s *Store) create(n *node) *node {
	s.nextID++
	n.id = s.nextID
	s.nodes[n.id] = n
	s.order = append(s.order, n.id)
	return n
}

// merge adds the relationship unless it already exists.
func (s *Store) merge(from int64, rel string, to int64) {
	k := edgeKey{rel: rel, from: from, to: to}
	if _, ok := s.edges[k]; ok {
		return
	}
	s.edges[k] = struct{}{}
	s.out.add(from, rel, to)
	s.in.add(to, rel, from)
}

// unlink deletes the relationship if it exists.
func (s *Store) unlink(from int64, rel string, to int64) {
	k := edgeKey{rel: rel, from: from, to: to}
	if _, ok := s.edges[k]; !ok {
		return
	}
	delete(s.edges, k)
	s.out.remove(from, rel, to)
	s.in.remove(to, rel, from)
}

// each calls fn for every node with the label, in creation order, until fn
// returns false.
func (s *Store) each(label string, fn func(*node) bool) {
	for _, id := range s.order {
		n := s.nodes[id]
		if n.label != label {
			continue
		}
		if !fn(n) {
			return
		}
	}
}

func (s *Store) citiesNamed(name string) []*node {
	var out []*node
	s.each(labelCity, func(n *node) bool {
		if n.city.Name == name {
			out = append(out, n)
		}
		return true
	})
	return out
}

func (s *Store) firstAirport(code string) *node {
	var found *node
	s.each(labelAirport, func(n *node) bool {
		if n.airport.Code == code {
			found = n
			return false
		}
		return true
	})
	return found
}

func (s *Store) firstFlight(number string) *node {
	var found *node
	s.each(labelFlight, func(n *node) bool {
		if n.flight.Number == number {
			found = n
			return false
		}
		return true
	})
	return found
}

// UpsertCity implements domain.GraphStore.
func (s *Store) UpsertCity(ctx context.Context, city domain.City) (domain.City, error) {
	if err := ctx.Err(); err != nil {
		return domain.City{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	var existing *node
	s.each(labelCity, func(n *node) bool {
		if n.city == city {
			existing = n
			return false
		}
		return true
	})
	if existing == nil {
		existing = s.create(&node{label: labelCity, city: city})
	}
	return existing.city, nil
}

// ListCities implements domain.GraphStore.
func (s *Store) ListCities(ctx context.Context, country string) ([]domain.City, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	cities := make([]domain.City, 0)
	s.each(labelCity, func(n *node) bool {
		if country == "" || n.city.Country == country {
			cities = append(cities, n.city)
		}
		return true
	})
	return cities, nil
}

// GetCity implements domain.GraphStore.
func (s *Store) GetCity(ctx context.Context, name string) (domain.City, error) {
	if err := ctx.Err(); err != nil {
		return domain.City{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	cities := s.citiesNamed(name)
	if len(cities) == 0 {
		return domain.City{}, domain.ErrNotFound
	}
	return cities[0].city, nil
}

// UpsertAirport implements domain.GraphStore.
func (s *Store) UpsertAirport(ctx context.Context, cityName string, airport domain.Airport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	cities := s.citiesNamed(cityName)
	if len(cities) == 0 {
		return domain.ErrNotFound
	}

	airport.City = ""
	a := s.firstAirport(airport.Code)
	if a == nil {
		a = s.create(&node{label: labelAirport, airport: airport})
	} else {
		a.airport = airport
	}

	// An airport belongs to one city: moving it drops the old ownership.
	target := make(map[int64]bool, len(cities))
	for _, c := range cities {
		target[c.id] = true
	}
	for _, owner := range append([]int64(nil), s.in.get(a.id, domain.RelHasAirport)...) {
		if !target[owner] {
			s.unlink(owner, domain.RelHasAirport, a.id)
			s.unlink(a.id, domain.RelLocatedIn, owner)
		}
	}

	for _, c := range cities {
		s.merge(c.id, domain.RelHasAirport, a.id)
		s.merge(a.id, domain.RelLocatedIn, c.id)
	}
	return nil
}

// ListAirports implements domain.GraphStore.
func (s *Store) ListAirports(ctx context.Context, cityName string) ([]domain.Airport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	airports := make([]domain.Airport, 0)
	for _, c := range s.citiesNamed(cityName) {
		for _, id := range s.out.get(c.id, domain.RelHasAirport) {
			a := s.nodes[id].airport
			a.City = c.city.Name
			airports = append(airports, a)
		}
	}
	return airports, nil
}

// GetAirport implements domain.GraphStore.
func (s *Store) GetAirport(ctx context.Context, code string) (domain.Airport, error) {
	if err := ctx.Err(); err != nil {
		return domain.Airport{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result *domain.Airport
	s.each(labelAirport, func(n *node) bool {
		if n.airport.Code != code {
			return true
		}
		owners := s.in.get(n.id, domain.RelHasAirport)
		if len(owners) == 0 {
			return true
		}
		a := n.airport
		a.City = s.nodes[owners[0]].city.Name
		result = &a
		return false
	})
	if result == nil {
		return domain.Airport{}, domain.ErrNotFound
	}
	return *result, nil
}

// FlightExists implements domain.GraphStore.
func (s *Store) FlightExists(ctx context.Context, number string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.firstFlight(number) != nil, nil
}

// CreateFlight implements domain.GraphStore. It returns domain.ErrConflict if
// the number is taken. Like a Cypher MERGE, missing airports are created with
// only their code set.
func (s *Store) CreateFlight(ctx context.Context, flight domain.Flight) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.firstFlight(flight.Number) != nil {
		return domain.ErrConflict
	}
	props := flight
	props.FromAirport, props.ToAirport = "", ""
	f := s.create(&node{label: labelFlight, flight: props})

	from := s.mergeAirport(flight.FromAirport)
	to := s.mergeAirport(flight.ToAirport)
	s.merge(f.id, domain.RelDepartsFrom, from.id)
	s.merge(f.id, domain.RelArrivesAt, to.id)
	return nil
}

func (s *Store) mergeAirport(code string) *node {
	if a := s.firstAirport(code); a != nil {
		return a
	}
	return s.create(&node{label: labelAirport, airport: domain.Airport{Code: code}})
}

// endpoints returns (airport, city) pairs reachable from the flight over rel
// followed by LOCATED_IN.
func (s *Store) endpoints(flightID int64, rel string) [][2]*node {
	var pairs [][2]*node
	for _, aid := range s.out.get(flightID, rel) {
		for _, cid := range s.out.get(aid, domain.RelLocatedIn) {
			pairs = append(pairs, [2]*node{s.nodes[aid], s.nodes[cid]})
		}
	}
	return pairs
}

// GetFlight implements domain.GraphStore.
func (s *Store) GetFlight(ctx context.Context, number string) (domain.FlightDetails, error) {
	if err := ctx.Err(); err != nil {
		return domain.FlightDetails{}, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	var result *domain.FlightDetails
	s.each(labelFlight, func(n *node) bool {
		if n.flight.Number != number {
			return true
		}
		deps := s.endpoints(n.id, domain.RelDepartsFrom)
		arrs := s.endpoints(n.id, domain.RelArrivesAt)
		if len(deps) == 0 || len(arrs) == 0 {
			return true
		}
		d := domain.FlightDetails{Flight: n.flight}
		d.FromAirport = deps[0][0].airport.Code
		d.FromCity = deps[0][1].city.Name
		d.ToAirport = arrs[0][0].airport.Code
		d.ToCity = arrs[0][1].city.Name
		result = &d
		return false
	})
	if result == nil {
		return domain.FlightDetails{}, domain.ErrNotFound
	}
	return *result, nil
}

// countFlights counts (city, airport, flight) paths for cities with the name
// where the flight points at the airport over rel.
func (s *Store) countFlights(cityName, rel string) int {
	count := 0
	for _, c := range s.citiesNamed(cityName) {
		for _, aid := range s.in.get(c.id, domain.RelLocatedIn) {
			count += len(s.in.get(aid, rel))
		}
	}
	return count
}

// CountDepartures implements domain.GraphStore.
func (s *Store) CountDepartures(ctx context.Context, cityName string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.countFlights(cityName, domain.RelDepartsFrom), nil
}

// CountArrivals implements domain.GraphStore.
func (s *Store) CountArrivals(ctx context.Context, cityName string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.countFlights(cityName, domain.RelArrivesAt), nil
}

// FindRoutes implements domain.GraphStore.
//
// A path may not use the same LOCATED_IN relationship twice, so a flight
// between an airport and itself only matches when the two ends resolve to
// different cities.
func (s *Store) FindRoutes(ctx context.Context, fromCity, toCity string) ([]domain.RoutePath, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	paths := make([]domain.RoutePath, 0)
	for _, from := range s.citiesNamed(fromCity) {
		for _, depID := range s.in.get(from.id, domain.RelLocatedIn) {
			for _, fid := range s.in.get(depID, domain.RelDepartsFrom) {
				for _, arrID := range s.out.get(fid, domain.RelArrivesAt) {
					for _, toID := range s.out.get(arrID, domain.RelLocatedIn) {
						if s.nodes[toID].city.Name != toCity {
							continue
						}
						if depID == arrID && from.id == toID {
							continue
						}
						f := s.nodes[fid].flight
						f.FromAirport = s.nodes[depID].airport.Code
						f.ToAirport = s.nodes[arrID].airport.Code
						paths = append(paths, domain.RoutePath{
							FromAirport: f.FromAirport,
							ToAirport:   f.ToAirport,
							Flights:     []domain.Flight{f},
						})
					}
				}
			}
		}
	}
	return paths, nil
}

// DeriveRelationships implements domain.GraphStore.
func (s *Store) DeriveRelationships(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.each(labelAirport, func(a *node) bool {
		s.each(labelCity, func(c *node) bool {
			if containsName(a.airport.Name, c.city.Name) || containsName(a.airport.Address, c.city.Name) {
				s.merge(a.id, domain.RelLocatedIn, c.id)
			}
			return true
		})
		return true
	})

	s.each(labelFlight, func(f *node) bool {
		for _, p := range s.endpoints(f.id, domain.RelDepartsFrom) {
			s.merge(f.id, domain.RelDepartsFromCity, p[1].id)
		}
		for _, p := range s.endpoints(f.id, domain.RelArrivesAt) {
			s.merge(f.id, domain.RelArrivesInCity, p[1].id)
		}
		return true
	})
	return nil
}

// containsName mirrors Cypher's CONTAINS, where a missing property never matches.
func containsName(field, name string) bool {
	return field != "" && strings.Contains(field, name)
}

// WipeAll implements domain.GraphStore.
func (s *Store) WipeAll(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.reset()
	return nil
}

// Ping implements domain.GraphStore.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close implements domain.GraphStore.
func (s *Store) Close(context.Context) error {
	return nil
}

var _ domain.GraphStore = (*Store)(nil)
