package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/city-flight-graph/internal/adapter/http/response"
	"github.com/flight-search/city-flight-graph/internal/domain"
)

// CreateFlight handles PUT /flights
//
// @Summary Register a flight
// @Description Creates a flight between two registered airports
// @Tags flights
// @Accept json
// @Param request body FlightRequest true "Flight"
// @Success 204
// @Failure 400 {object} response.ErrorDetail "Missing attributes, unknown airports or duplicate number"
// @Router /flights [put]
func (h *Handler) CreateFlight(c echo.Context) error {
	var req FlightRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, domain.MsgFlightInvalid, err)
	}

	if _, err := h.registrar.CreateFlight(c.Request().Context(), ToDomainFlight(&req)); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// GetFlight handles GET /flights/{number}
//
// @Summary Get a flight by number
// @Tags flights
// @Produce json
// @Param number path string true "Flight number"
// @Success 200 {object} FlightDTO
// @Failure 404 {object} response.ErrorDetail
// @Router /flights/{number} [get]
func (h *Handler) GetFlight(c echo.Context) error {
	details, err := h.registrar.GetFlight(c.Request().Context(), pathParam(c, "number"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToFlightDTO(details))
}

// SearchFlights handles GET /search/flights/{from}/{to}
//
// @Summary Search direct flights between two cities
// @Description Returns every flight from an airport in the from city to an airport in the to city, cheapest first
// @Tags search
// @Produce json
// @Param from path string true "Departure city"
// @Param to path string true "Arrival city"
// @Success 200 {array} ItineraryDTO
// @Failure 404 {object} response.ErrorDetail "No departures or no arrivals"
// @Failure 500 {object} response.ErrorDetail
// @Failure 503 {object} response.ErrorDetail
// @Failure 504 {object} response.ErrorDetail
// @Router /search/flights/{from}/{to} [get]
func (h *Handler) SearchFlights(c echo.Context) error {
	itineraries, err := h.finder.FindFlights(c.Request().Context(), pathParam(c, "from"), pathParam(c, "to"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToItineraryDTOs(itineraries))
}
