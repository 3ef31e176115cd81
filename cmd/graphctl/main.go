// Command graphctl runs administrative operations against the graph store
// configured for the server.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/flight-search/city-flight-graph/internal/adapter/graph"
	"github.com/flight-search/city-flight-graph/internal/config"
	"github.com/flight-search/city-flight-graph/internal/domain"
	"github.com/flight-search/city-flight-graph/internal/infrastructure/logger"
)

func main() {
	a := &app{
		out: os.Stdout,
		open: func(ctx context.Context) (domain.GraphStore, *config.Config, error) {
			cfg, err := config.Load()
			if err != nil {
				return nil, nil, err
			}
			l := logger.New(cfg.Logging)
			logger.SetGlobal(l)
			log.Logger = l.Logger

			storeLog := l.WithComponent("graph-store").Logger
			store, err := graph.Open(ctx, cfg.StoreConfig(), storeLog)
			if err != nil {
				return nil, nil, err
			}
			return graph.Guard(store, cfg.BreakerSettings(), nil, storeLog), cfg, nil
		},
	}

	if err := newRootCmd(a).Execute(); err != nil {
		os.Exit(1)
	}
}
