// Package main is the entry point for the city flight graph service.
//
//	@title			City Flight Graph API
//	@version		1.0.0
//	@description	REST API over a graph of cities, airports and flights with direct flight search between cities.
//
//	@contact.name	API Support
//	@contact.url	https://github.com/flight-search/city-flight-graph/issues
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
//
//	@schemes		http https
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"

	// Import generated docs for swagger
	_ "github.com/flight-search/city-flight-graph/docs"

	"github.com/flight-search/city-flight-graph/internal/adapter/graph"
	graphhttp "github.com/flight-search/city-flight-graph/internal/adapter/http"
	"github.com/flight-search/city-flight-graph/internal/adapter/http/middleware"
	"github.com/flight-search/city-flight-graph/internal/config"
	"github.com/flight-search/city-flight-graph/internal/domain"
	"github.com/flight-search/city-flight-graph/internal/infrastructure/logger"
	"github.com/flight-search/city-flight-graph/internal/usecase"
)

const (
	shutdownTimeout = 10 * time.Second
	startupTimeout  = 60 * time.Second
)

func main() {
	cfg := config.MustLoad()

	appLog := logger.New(cfg.Logging)
	logger.SetGlobal(appLog)
	log.Logger = appLog.Logger

	appLog.Info().
		Str("env", cfg.App.Env).
		Int("port", cfg.Server.Port).
		Str("graph_driver", cfg.Graph.Driver).
		Msg("Configuration loaded")

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	store, err := openStore(cfg, appLog, reg)
	if err != nil {
		appLog.Fatal().Err(err).Msg("Failed to open graph store")
	}

	e := newServer(cfg, appLog, store, reg)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	go func() {
		appLog.Info().Str("address", addr).Msg("Starting server")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLog.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	gracefulShutdown(e, store, appLog)
}

// openStore opens the configured graph store behind the breaker and metrics guard.
func openStore(cfg *config.Config, appLog *logger.Logger, reg prometheus.Registerer) (domain.GraphStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()

	storeLog := appLog.WithComponent("graph-store").Logger
	store, err := graph.Open(ctx, cfg.StoreConfig(), storeLog)
	if err != nil {
		return nil, err
	}

	var metrics *graph.Metrics
	if cfg.Metrics.Enabled {
		metrics = graph.NewMetrics(reg)
	}
	return graph.Guard(store, cfg.BreakerSettings(), metrics, storeLog), nil
}

// newServer wires use cases, handlers and middleware into an Echo instance.
func newServer(cfg *config.Config, appLog *logger.Logger, store domain.GraphStore, reg *prometheus.Registry) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	var httpMetrics *middleware.HTTPMetrics
	var metricsHandler http.Handler
	if cfg.Metrics.Enabled {
		httpMetrics = middleware.NewHTTPMetrics(reg)
		metricsHandler = promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})
	}
	middleware.Setup(e, appLog.WithComponent("http").Logger, httpMetrics)

	ucConfig := &usecase.Config{OperationTimeout: cfg.Timeouts.Operation}
	handler := graphhttp.NewHandler(
		usecase.NewRegistrar(store, ucConfig),
		usecase.NewRouteFinder(store, ucConfig),
		store,
	)
	graphhttp.RegisterRoutes(e, handler, metricsHandler, cfg.Metrics.Path)
	return e
}

// gracefulShutdown stops the server on interrupt and then closes the store.
func gracefulShutdown(e *echo.Echo, store domain.GraphStore, appLog *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	appLog.Info().Msg("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error during server shutdown")
	}
	if err := store.Close(ctx); err != nil {
		appLog.Error().Err(err).Msg("Error closing graph store")
	}

	appLog.Info().Msg("Server stopped")
}
