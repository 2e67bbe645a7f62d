package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"meetline/internal/services"
)

// ReferenceHandler serves the read-only reference data endpoints.
type ReferenceHandler struct {
	service *services.ReferenceService
}

// NewReferenceHandler creates a ReferenceHandler.
func NewReferenceHandler(service *services.ReferenceService) *ReferenceHandler {
	return &ReferenceHandler{service: service}
}

// Register registers the reference data routes.
func (h *ReferenceHandler) Register(e *echo.Echo) {
	e.GET("/contact-methods", h.ContactMethods)
	e.GET("/schedule-times", h.ScheduleTimes)
}

// ContactMethods handles GET /contact-methods.
func (h *ReferenceHandler) ContactMethods(c echo.Context) error {
	return c.JSON(http.StatusOK, DataResponse{Data: h.service.ContactMethods()})
}

// ScheduleTimes handles GET /schedule-times.
func (h *ReferenceHandler) ScheduleTimes(c echo.Context) error {
	return c.JSON(http.StatusOK, DataResponse{Data: h.service.ScheduleTimes()})
}
