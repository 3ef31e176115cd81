package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes registers the API routes. metrics, when non-nil, is served
// at metricsPath.
func RegisterRoutes(e *echo.Echo, h *Handler, metrics http.Handler, metricsPath string) {
	e.GET("/health", h.Health)
	if metrics != nil {
		e.GET(metricsPath, echo.WrapHandler(metrics))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	cities := e.Group("/cities")
	cities.PUT("", h.UpsertCity)
	cities.GET("", h.ListCities)
	cities.GET("/:name", h.GetCity)
	cities.PUT("/:name/airports", h.CreateAirport)
	cities.GET("/:name/airports", h.ListAirports)

	e.GET("/airports/:code", h.GetAirport)

	flights := e.Group("/flights")
	flights.PUT("", h.CreateFlight)
	flights.GET("/:number", h.GetFlight)

	e.GET("/search/flights/:from/:to", h.SearchFlights)
	e.POST("/cleanup", h.Cleanup)
}
