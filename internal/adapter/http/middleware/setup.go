package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Setup registers all middleware on the Echo instance in the correct order:
//  1. RequestID, so every later log line carries the ID
//  2. RequestLogger, one line per request
//  3. Metrics, when metrics is non-nil
//  4. Recover, innermost, turns handler panics into 500s
//
// Call it before registering routes.
func Setup(e *echo.Echo, log zerolog.Logger, metrics *HTTPMetrics) {
	SetupWithConfig(e, log, metrics, DefaultRecoveryConfig())
}

// SetupWithConfig registers middleware with custom recovery configuration.
func SetupWithConfig(e *echo.Echo, log zerolog.Logger, metrics *HTTPMetrics, recoveryConfig RecoveryConfig) {
	e.Use(RequestID())
	e.Use(RequestLogger(log))
	if metrics != nil {
		e.Use(Metrics(metrics))
	}
	e.Use(RecoverWithConfig(log, recoveryConfig))
}
