package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health statuses.
const (
	StatusOK       = "ok"
	StatusDegraded = "unavailable"
)

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}

// Health writes a health check response. A failed store ping yields 503.
func Health(c echo.Context, storeErr error) error {
	if storeErr != nil {
		return c.JSON(http.StatusServiceUnavailable, &HealthResponse{
			Status: StatusDegraded,
			Store:  storeErr.Error(),
		})
	}
	return c.JSON(http.StatusOK, &HealthResponse{
		Status: StatusOK,
		Store:  StatusOK,
	})
}
