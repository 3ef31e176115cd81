package graph

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/flight-search/city-flight-graph/internal/adapter/graph/memory"
	"github.com/flight-search/city-flight-graph/internal/adapter/graph/neo4jstore"
	"github.com/flight-search/city-flight-graph/internal/domain"
	"github.com/flight-search/city-flight-graph/internal/infrastructure/retry"
)

// Supported store drivers.
const (
	DriverNeo4j  = "neo4j"
	DriverMemory = "memory"
)

// Config selects and configures a store driver.
type Config struct {
	// Driver is DriverNeo4j or DriverMemory
	Driver string

	// Neo4j holds the connection settings used by DriverNeo4j
	Neo4j neo4jstore.Config

	// ConnectAttempts bounds the startup connectivity check
	ConnectAttempts int
}

// Open creates the configured store and verifies it is reachable.
// The caller owns the returned store and must Close it.
func Open(ctx context.Context, cfg Config, log zerolog.Logger) (domain.GraphStore, error) {
	switch cfg.Driver {
	case DriverMemory:
		log.Info().Str("driver", DriverMemory).Msg("Using in-memory graph store")
		return memory.New(), nil

	case DriverNeo4j:
		store, err := neo4jstore.New(cfg.Neo4j)
		if err != nil {
			return nil, err
		}

		attempt := 0
		err = retry.Do(ctx, func() error {
			attempt++
			pingErr := store.Ping(ctx)
			if pingErr != nil {
				log.Warn().
					Err(pingErr).
					Int("attempt", attempt).
					Str("uri", cfg.Neo4j.URI).
					Msg("Graph store not reachable")
			}
			if neo4jstore.IsAuthError(pingErr) {
				return retry.NewPermanent(pingErr)
			}
			return pingErr
		}, retry.ConnectConfig.WithMaxAttempts(cfg.ConnectAttempts))
		if err != nil {
			_ = store.Close(ctx)
			return nil, fmt.Errorf("connect to neo4j at %s: %w", cfg.Neo4j.URI, err)
		}

		log.Info().
			Str("driver", DriverNeo4j).
			Str("uri", cfg.Neo4j.URI).
			Str("database", cfg.Neo4j.Database).
			Msg("Connected to graph store")
		return store, nil

	default:
		return nil, fmt.Errorf("unknown graph driver %q", cfg.Driver)
	}
}
