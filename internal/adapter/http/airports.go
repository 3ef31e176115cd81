package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/city-flight-graph/internal/adapter/http/response"
	"github.com/flight-search/city-flight-graph/internal/domain"
)

// CreateAirport handles PUT /cities/{name}/airports
//
// @Summary Register an airport in a city
// @Description Merges the airport by code and links it to the city
// @Tags airports
// @Accept json
// @Param name path string true "City name"
// @Param request body AirportRequest true "Airport"
// @Success 204
// @Failure 400 {object} response.ErrorDetail "Missing attributes"
// @Failure 404 {object} response.ErrorDetail "City not found"
// @Router /cities/{name}/airports [put]
func (h *Handler) CreateAirport(c echo.Context) error {
	var req AirportRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, domain.MsgAirportInvalid, err)
	}

	if _, err := h.registrar.CreateAirport(c.Request().Context(), pathParam(c, "name"), ToDomainAirport(&req)); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// ListAirports handles GET /cities/{name}/airports
//
// @Summary List the airports of a city
// @Tags airports
// @Produce json
// @Param name path string true "City name"
// @Success 200 {array} AirportDTO
// @Failure 404 {object} response.ErrorDetail "City not found or no airports"
// @Router /cities/{name}/airports [get]
func (h *Handler) ListAirports(c echo.Context) error {
	airports, err := h.registrar.ListAirports(c.Request().Context(), pathParam(c, "name"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToAirportDTOs(airports))
}

// GetAirport handles GET /airports/{code}
//
// @Summary Get an airport by code
// @Tags airports
// @Produce json
// @Param code path string true "Airport code"
// @Success 200 {object} AirportDTO
// @Failure 404 {object} response.ErrorDetail
// @Router /airports/{code} [get]
func (h *Handler) GetAirport(c echo.Context) error {
	airport, err := h.registrar.GetAirport(c.Request().Context(), pathParam(c, "code"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToAirportDTO(airport))
}
