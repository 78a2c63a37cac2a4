package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/flownote/flownote/internal/application/services"
	"github.com/flownote/flownote/internal/domain/entities"
	"github.com/flownote/flownote/internal/infrastructure/logger"
	"github.com/flownote/flownote/internal/ports"
)

// EventHandler handles calendar event requests
type EventHandler struct {
	eventService *services.EventService
	logger       *logger.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *services.EventService, logger *logger.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		logger:       logger,
	}
}

// CreateEvent handles event creation
func (h *EventHandler) CreateEvent(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.CreateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.eventService.CreateEvent(c.Request().Context(), userID, req)
	if err != nil {
		var validationErr *entities.ValidationError
		if errors.As(err, &validationErr) {
			return echo.NewHTTPError(http.StatusBadRequest, validationErr.Reason)
		}
		h.logger.Error("Create event failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create event")
	}

	return c.JSON(http.StatusCreated, event)
}

// GetEvent handles getting an event by ID
func (h *EventHandler) GetEvent(c echo.Context) error {
	userID := getUserIDFromContext(c)

	event, err := h.eventService.GetEvent(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, entities.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Event not found")
		}
		h.logger.Error("Get event failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve event")
	}

	return c.JSON(http.StatusOK, event)
}

// UpdateEvent handles event updates
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	userID := getUserIDFromContext(c)

	var req ports.UpdateEventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.eventService.UpdateEvent(c.Request().Context(), userID, c.Param("id"), req)
	if err != nil {
		if errors.Is(err, entities.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Event not found")
		}
		var validationErr *entities.ValidationError
		if errors.As(err, &validationErr) {
			return echo.NewHTTPError(http.StatusBadRequest, validationErr.Reason)
		}
		h.logger.Error("Update event failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update event")
	}

	return c.JSON(http.StatusOK, event)
}

// DeleteEvent handles event deletion
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	userID := getUserIDFromContext(c)

	err := h.eventService.DeleteEvent(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		if errors.Is(err, entities.ErrEventNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Event not found")
		}
		h.logger.Error("Delete event failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete event")
	}

	return c.JSON(http.StatusOK, MessageResponse{Message: "Event deleted"})
}

// ListDay returns the events of one day. The day query parameter defaults to
// today in UTC.
func (h *EventHandler) ListDay(c echo.Context) error {
	userID := getUserIDFromContext(c)

	day := time.Now().UTC()
	if dayStr := c.QueryParam("day"); dayStr != "" {
		parsed, err := time.Parse("2006-01-02", dayStr)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid day parameter, expected YYYY-MM-DD")
		}
		day = parsed
	}

	events, err := h.eventService.ListDay(c.Request().Context(), userID, day)
	if err != nil {
		h.logger.Error("List events failed", "error", err, "user_id", userID)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to retrieve events")
	}

	return c.JSON(http.StatusOK, events)
}
