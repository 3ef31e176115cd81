// Package http provides the HTTP handler layer for the city flight graph API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"
	"net/url"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flight-search/city-flight-graph/internal/adapter/http/response"
	"github.com/flight-search/city-flight-graph/internal/domain"
	"github.com/flight-search/city-flight-graph/internal/usecase"
)

// MsgCleanupSuccessful is the body message of POST /cleanup.
const MsgCleanupSuccessful = "Cleanup Successful"

const healthTimeout = 2 * time.Second

// HealthChecker reports whether the backing store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// Handler serves the city, airport, flight and search endpoints.
type Handler struct {
	registrar usecase.Registrar
	finder    usecase.RouteFinder
	health    HealthChecker
}

// NewHandler creates a Handler. health may be nil, in which case /health
// always reports ok.
func NewHandler(registrar usecase.Registrar, finder usecase.RouteFinder, health HealthChecker) *Handler {
	return &Handler{
		registrar: registrar,
		finder:    finder,
		health:    health,
	}
}

// Health handles GET /health
//
// @Summary Health check
// @Description Reports whether the graph store answers a ping
// @Tags ops
// @Produce json
// @Success 200 {object} response.HealthResponse
// @Failure 503 {object} response.HealthResponse
// @Router /health [get]
func (h *Handler) Health(c echo.Context) error {
	if h.health == nil {
		return response.Health(c, nil)
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthTimeout)
	defer cancel()
	return response.Health(c, h.health.Ping(ctx))
}

// Cleanup handles POST /cleanup
//
// @Summary Delete all data
// @Description Removes every city, airport and flight together with their relationships
// @Tags ops
// @Produce json
// @Success 200 {object} response.MessageResponse
// @Failure 500 {object} response.ErrorDetail
// @Router /cleanup [post]
func (h *Handler) Cleanup(c echo.Context) error {
	if err := h.registrar.WipeAll(c.Request().Context()); err != nil {
		return h.handleError(c, err)
	}
	return response.Message(c, MsgCleanupSuccessful)
}

// handleValidationError renders request validation failures with the
// entity-specific message and per-field details.
func (h *Handler) handleValidationError(c echo.Context, message string, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, message, validationErrs.ToMap())
	}
	return response.ValidationErrorWithMessage(c, message)
}

// handleError maps domain errors to HTTP responses.
func (h *Handler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return response.ValidationErrorWithMessage(c, domain.Message(err))
	case errors.Is(err, domain.ErrConflict):
		return response.Conflict(c, domain.Message(err))
	case errors.Is(err, domain.ErrNotFound):
		return response.NotFound(c, domain.Message(err))
	case errors.Is(err, domain.ErrStoreUnavailable):
		return response.ServiceUnavailable(c)
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	}
	return response.InternalServerError(c, err.Error())
}

// pathParam returns a path parameter with percent-encoding removed. Echo
// routes on URL.RawPath when it is set and on the already decoded URL.Path
// otherwise, so only the former needs unescaping.
func pathParam(c echo.Context, name string) string {
	raw := c.Param(name)
	if c.Request().URL.RawPath == "" {
		return raw
	}
	if v, err := url.PathUnescape(raw); err == nil {
		return v
	}
	return raw
}
