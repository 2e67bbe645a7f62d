package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"meetline/internal/meeting"
	"meetline/internal/services"
	apperrors "meetline/pkg/errors"
)

// ErrorResponse is the message-only API error body.
type ErrorResponse struct {
	Message string `json:"message"`
}

// ValidationErrorResponse carries the field failures alongside the joined
// message, matching the wire contract of the validation endpoints.
type ValidationErrorResponse struct {
	Error   meeting.ValidationErrors `json:"error"`
	Message string                   `json:"message"`
}

// DataResponse wraps every successful body in a data envelope.
type DataResponse struct {
	Data any `json:"data"`
}

// MeetingHandler exposes the meeting request CRUD endpoints.
type MeetingHandler struct {
	service *services.MeetingService
}

// NewMeetingHandler creates a MeetingHandler.
func NewMeetingHandler(service *services.MeetingService) *MeetingHandler {
	return &MeetingHandler{service: service}
}

// Register registers the meeting routes.
func (h *MeetingHandler) Register(e *echo.Echo) {
	e.POST("/meetings", h.Create)
	e.PUT("/meetings/:id", h.Update)
	e.GET("/meetings/:id", h.Get)
}

// Create handles POST /meetings.
func (h *MeetingHandler) Create(c echo.Context) error {
	var p meeting.Payload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
	}

	m, err := h.service.Create(c.Request().Context(), p)
	if err != nil {
		return writeServiceError(c, err, "Failed to create meeting")
	}
	return c.JSON(http.StatusOK, DataResponse{Data: m})
}

// Update handles PUT /meetings/:id.
func (h *MeetingHandler) Update(c echo.Context) error {
	id, ok := meetingID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid meeting ID"})
	}

	var p meeting.Payload
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid request body"})
	}

	m, err := h.service.Update(c.Request().Context(), id, p)
	if err != nil {
		return writeServiceError(c, err, "Failed to update meeting")
	}
	return c.JSON(http.StatusOK, DataResponse{Data: m})
}

// Get handles GET /meetings/:id. With ?view=form the stored record is mapped
// back to its editable form shape for populating an edit view.
func (h *MeetingHandler) Get(c echo.Context) error {
	id, ok := meetingID(c)
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: "Invalid meeting ID"})
	}

	m, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err, "Failed to retrieve meeting")
	}

	if c.QueryParam("view") == "form" {
		return c.JSON(http.StatusOK, DataResponse{Data: meeting.ToForm(services.PayloadFromModel(m))})
	}
	return c.JSON(http.StatusOK, DataResponse{Data: m})
}

func meetingID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

// writeServiceError maps the service error taxonomy to the HTTP contract:
// schema failures carry the field list, everything else is message-only.
func writeServiceError(c echo.Context, err error, internalMsg string) error {
	appErr, ok := apperrors.As(err)
	if !ok {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: internalMsg})
	}

	switch appErr.Code {
	case apperrors.ErrCodeValidation:
		return c.JSON(http.StatusBadRequest, ValidationErrorResponse{
			Error:   appErr.Fields,
			Message: appErr.Message,
		})
	case apperrors.ErrCodeBadRequest:
		return c.JSON(http.StatusBadRequest, ErrorResponse{Message: appErr.Message})
	case apperrors.ErrCodeNotFound:
		return c.JSON(http.StatusNotFound, ErrorResponse{Message: appErr.Message})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Message: internalMsg})
	}
}
