package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"meetline/internal/services"
)

// HealthHandler serves the health check endpoint.
type HealthHandler struct {
	service *services.HealthService
}

// NewHealthHandler creates a HealthHandler.
func NewHealthHandler(service *services.HealthService) *HealthHandler {
	return &HealthHandler{service: service}
}

// Register registers the health route.
func (h *HealthHandler) Register(e *echo.Echo) {
	e.GET("/health", h.Check)
}

// Check handles GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, h.service.Check())
}
