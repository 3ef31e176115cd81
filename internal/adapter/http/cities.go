package http

import (
	"github.com/labstack/echo/v4"

	"github.com/flight-search/city-flight-graph/internal/adapter/http/response"
	"github.com/flight-search/city-flight-graph/internal/domain"
)

// UpsertCity handles PUT /cities
//
// @Summary Register a city
// @Description Creates the city or leaves an identical one untouched, then refreshes derived relationships
// @Tags cities
// @Accept json
// @Param request body CityRequest true "City"
// @Success 204
// @Failure 400 {object} response.ErrorDetail "Missing attributes"
// @Router /cities [put]
func (h *Handler) UpsertCity(c echo.Context) error {
	var req CityRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, domain.MsgCityInvalid, err)
	}

	if _, err := h.registrar.UpsertCity(c.Request().Context(), ToDomainCity(&req)); err != nil {
		return h.handleError(c, err)
	}
	return response.NoContent(c)
}

// ListCities handles GET /cities
//
// @Summary List cities
// @Tags cities
// @Produce json
// @Param country query string false "Exact country filter"
// @Success 200 {array} CityDTO
// @Router /cities [get]
func (h *Handler) ListCities(c echo.Context) error {
	cities, err := h.registrar.ListCities(c.Request().Context(), c.QueryParam("country"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToCityDTOs(cities))
}

// GetCity handles GET /cities/{name}
//
// @Summary Get a city by name
// @Tags cities
// @Produce json
// @Param name path string true "City name"
// @Success 200 {object} CityDTO
// @Failure 404 {object} response.ErrorDetail
// @Router /cities/{name} [get]
func (h *Handler) GetCity(c echo.Context) error {
	city, err := h.registrar.GetCity(c.Request().Context(), pathParam(c, "name"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToCityDTO(city))
}
