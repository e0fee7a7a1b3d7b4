// handlers_health.go - Health check handlers
package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type healthResponse struct {
	Status string `json:"status"`
}

// HealthHandlerImpl implements the HealthHandler interface
type HealthHandlerImpl struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() HealthHandler {
	return &HealthHandlerImpl{}
}

// HandleHealth returns server health status
func (h *HealthHandlerImpl) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{Status: "Server is running"})
}
