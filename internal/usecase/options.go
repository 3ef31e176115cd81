// Package usecase contains the application logic of the city/airport/flight
// graph: entity registration, relationship derivation and route search.
package usecase

import (
	"context"
	"time"
)

// DefaultOperationTimeout bounds a single use case call, store round trips included.
const DefaultOperationTimeout = 5 * time.Second

// Config contains configuration options for the use cases.
type Config struct {
	// OperationTimeout bounds each call; zero uses DefaultOperationTimeout
	OperationTimeout time.Duration
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		OperationTimeout: DefaultOperationTimeout,
	}
}

func resolveConfig(config *Config) Config {
	cfg := DefaultConfig()
	if config != nil && config.OperationTimeout > 0 {
		cfg.OperationTimeout = config.OperationTimeout
	}
	return cfg
}

// withTimeout derives the per-operation context.
func (c Config) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, c.OperationTimeout)
}
