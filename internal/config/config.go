// Package config provides application configuration management.
// It loads configuration from environment variables with support for .env files.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/flight-search/city-flight-graph/internal/adapter/graph"
	"github.com/flight-search/city-flight-graph/internal/adapter/graph/neo4jstore"
	"github.com/flight-search/city-flight-graph/internal/infrastructure/logger"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Timeouts TimeoutConfig
	Graph    GraphConfig
	Breaker  BreakerConfig
	Metrics  MetricsConfig
	Logging  logger.Config
	App      AppConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
}

// TimeoutConfig holds timeout settings for use case operations.
type TimeoutConfig struct {
	Operation time.Duration `env:"TIMEOUT_OPERATION" envDefault:"5s"`
}

// GraphConfig selects and configures the graph store.
type GraphConfig struct {
	Driver          string `env:"GRAPH_DRIVER" envDefault:"neo4j"`
	URI             string `env:"NEO4J_URI" envDefault:"bolt://localhost:7687"`
	Username        string `env:"NEO4J_USERNAME" envDefault:"neo4j"`
	Password        string `env:"NEO4J_PASSWORD"`
	Database        string `env:"NEO4J_DATABASE"`
	MaxPoolSize     int    `env:"NEO4J_MAX_POOL_SIZE" envDefault:"50"`
	ConnectAttempts int    `env:"NEO4J_CONNECT_ATTEMPTS" envDefault:"5"`
}

// BreakerConfig holds circuit breaker settings for graph store calls.
type BreakerConfig struct {
	Enabled      bool          `env:"BREAKER_ENABLED" envDefault:"true"`
	MaxRequests  uint32        `env:"BREAKER_MAX_REQUESTS" envDefault:"5"`
	Interval     time.Duration `env:"BREAKER_INTERVAL" envDefault:"30s"`
	Timeout      time.Duration `env:"BREAKER_TIMEOUT" envDefault:"60s"`
	FailureRatio float64       `env:"BREAKER_FAILURE_RATIO" envDefault:"0.8"`
	MinRequests  uint32        `env:"BREAKER_MIN_REQUESTS" envDefault:"5"`
}

// MetricsConfig holds Prometheus settings.
type MetricsConfig struct {
	Enabled bool   `env:"METRICS_ENABLED" envDefault:"true"`
	Path    string `env:"METRICS_PATH" envDefault:"/metrics"`
}

// AppConfig holds general application settings.
type AppConfig struct {
	Env string `env:"APP_ENV" envDefault:"development"`
}

// Load reads configuration from environment variables.
// It attempts to load a .env file first (optional - won't fail if missing).
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads configuration or panics on error.
// Use this in main() where configuration is required to start.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}
	return cfg
}

// validate checks configuration values for correctness.
func validate(cfg *Config) error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("SERVER_PORT must be between 1 and 65535, got %d", cfg.Server.Port)
	}

	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be positive")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be positive")
	}
	if cfg.Timeouts.Operation <= 0 {
		return fmt.Errorf("TIMEOUT_OPERATION must be positive")
	}

	switch cfg.Graph.Driver {
	case graph.DriverNeo4j:
		if cfg.Graph.URI == "" {
			return fmt.Errorf("NEO4J_URI is required when GRAPH_DRIVER is %q", graph.DriverNeo4j)
		}
		if cfg.Graph.ConnectAttempts < 1 {
			return fmt.Errorf("NEO4J_CONNECT_ATTEMPTS must be at least 1")
		}
	case graph.DriverMemory:
	default:
		return fmt.Errorf("GRAPH_DRIVER must be one of: neo4j, memory; got %q", cfg.Graph.Driver)
	}

	if cfg.Breaker.Enabled {
		if cfg.Breaker.FailureRatio <= 0 || cfg.Breaker.FailureRatio > 1 {
			return fmt.Errorf("BREAKER_FAILURE_RATIO must be in (0, 1], got %v", cfg.Breaker.FailureRatio)
		}
		if cfg.Breaker.Timeout <= 0 {
			return fmt.Errorf("BREAKER_TIMEOUT must be positive")
		}
	}

	if cfg.Metrics.Enabled && (cfg.Metrics.Path == "" || cfg.Metrics.Path[0] != '/') {
		return fmt.Errorf("METRICS_PATH must start with '/', got %q", cfg.Metrics.Path)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: debug, info, warn, error; got %q", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"json": true, "console": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console; got %q", cfg.Logging.Format)
	}

	validEnvs := map[string]bool{"development": true, "staging": true, "production": true}
	if !validEnvs[cfg.App.Env] {
		return fmt.Errorf("APP_ENV must be one of: development, staging, production; got %q", cfg.App.Env)
	}

	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

// IsProduction returns true if running in production mode.
func (c *Config) IsProduction() bool {
	return c.App.Env == "production"
}

// StoreConfig returns the graph store settings.
func (c *Config) StoreConfig() graph.Config {
	return graph.Config{
		Driver: c.Graph.Driver,
		Neo4j: neo4jstore.Config{
			URI:                   c.Graph.URI,
			Username:              c.Graph.Username,
			Password:              c.Graph.Password,
			Database:              c.Graph.Database,
			MaxConnectionPoolSize: c.Graph.MaxPoolSize,
		},
		ConnectAttempts: c.Graph.ConnectAttempts,
	}
}

// BreakerSettings returns the circuit breaker settings for the store guard.
func (c *Config) BreakerSettings() graph.BreakerConfig {
	return graph.BreakerConfig{
		Enabled:      c.Breaker.Enabled,
		MaxRequests:  c.Breaker.MaxRequests,
		Interval:     c.Breaker.Interval,
		Timeout:      c.Breaker.Timeout,
		FailureRatio: c.Breaker.FailureRatio,
		MinRequests:  c.Breaker.MinRequests,
	}
}
